package prompt

import "fmt"

// Reason tells why an input could not be used.
type Reason int

const (
	// ReasonMissing means the path does not exist or is not a regular file.
	ReasonMissing Reason = iota
	// ReasonUnreadable means the path exists but its content could not be read as text.
	ReasonUnreadable
)

// ListFileError reports a list file (-l) that is missing or unreadable.
type ListFileError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *ListFileError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("List file '%s' does not exist or is not accessible.", e.Path)
	}
	return fmt.Sprintf("Could not read list file '%s'.", e.Path)
}

func (e *ListFileError) Unwrap() error { return e.Err }

// TemplateFileError reports a template file (-p) that is missing or unreadable.
type TemplateFileError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *TemplateFileError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("Prompt template file '%s' does not exist or is not accessible.", e.Path)
	}
	return fmt.Sprintf("Could not read prompt template file '%s'.", e.Path)
}

func (e *TemplateFileError) Unwrap() error { return e.Err }

// FileReadError reports an input file (-f or list-derived) that is missing or unreadable.
type FileReadError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *FileReadError) Error() string {
	if e.Reason == ReasonMissing {
		return fmt.Sprintf("File '%s' does not exist or is not accessible.", e.Path)
	}
	return fmt.Sprintf("Could not read file '%s'.", e.Path)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// WriteError reports an output destination (-o) that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Could not write to output file '%s'.", e.Path)
}

func (e *WriteError) Unwrap() error { return e.Err }
