// File: pkg/prompt/resolve.go
package prompt

import (
	"path/filepath"
	"strconv"

	"github.com/magnhaug/rp/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Resolve reads every input named by opts and returns the templates and files
// in output order. It stops at the first input that is missing or unreadable.
//
// File order is all -f paths in flag order followed by all list-file paths in
// list order; the two sequences are built separately and concatenated.
func Resolve(fsys afero.Fs, opts Options, logger *zap.Logger) (Inputs, error) {
	listFilePaths, err := resolveListFile(fsys, opts.ListPath, opts.Exclude, logger)
	if err != nil {
		return Inputs{}, err
	}

	templates, err := resolveTemplates(fsys, opts, logger)
	if err != nil {
		return Inputs{}, err
	}

	filePaths := make([]string, 0, len(opts.FilePaths)+len(listFilePaths))
	filePaths = append(filePaths, opts.FilePaths...)
	filePaths = append(filePaths, listFilePaths...)

	files, err := resolveFiles(fsys, filePaths, logger)
	if err != nil {
		return Inputs{}, err
	}

	return Inputs{Templates: templates, Files: files}, nil
}

// resolveListFile reads the list file, if any, and returns the paths it names.
func resolveListFile(fsys afero.Fs, listPath string, exclude []string, logger *zap.Logger) ([]string, error) {
	if listPath == "" {
		return nil, nil
	}

	content, reason, err := readText(fsys, listPath)
	if err != nil {
		logger.Debug("Failed to read list file", zap.String("path", listPath), zap.Error(err))
		return nil, &ListFileError{Path: listPath, Reason: reason, Err: err}
	}

	paths := splitLines(content)
	logger.Debug("Read list file", zap.String("path", listPath), zap.Int("entries", len(paths)))

	if len(exclude) == 0 {
		return paths, nil
	}

	matcher := ignore.Compile(logger, exclude...)
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if excluded, pattern := matcher.MatchesPathWithPattern(p); excluded {
			logger.Debug("Excluded list entry", zap.String("path", p), zap.String("pattern", pattern.Line))
			continue
		}
		kept = append(kept, p)
	}
	return kept, nil
}

// resolveTemplates reads template files, then appends inline prompts. When
// both are empty the default template is returned.
func resolveTemplates(fsys afero.Fs, opts Options, logger *zap.Logger) ([]Template, error) {
	templates := make([]Template, 0, len(opts.PromptPaths)+len(opts.InlinePrompts))

	for _, p := range opts.PromptPaths {
		text, reason, err := readText(fsys, p)
		if err != nil {
			logger.Debug("Failed to read template file", zap.String("path", p), zap.Error(err))
			return nil, &TemplateFileError{Path: p, Reason: reason, Err: err}
		}
		if looksBinary(text) {
			logger.Debug("Template content looks binary", zap.String("path", p))
		}
		templates = append(templates, Template{Name: filepath.Base(p), Text: text})
		logger.Debug("Read template file", zap.String("path", p), zap.Int("sizeBytes", len(text)))
	}

	for i, text := range opts.InlinePrompts {
		templates = append(templates, Template{
			Name: inlinePromptPrefix + strconv.Itoa(i+1),
			Text: text,
		})
	}

	if len(templates) == 0 {
		text := opts.DefaultTemplate
		if text == "" {
			text = DefaultTemplateText
		}
		logger.Debug("No templates supplied, using default template")
		templates = append(templates, Template{Name: DefaultTemplateName, Text: text})
	}

	return templates, nil
}

// resolveFiles reads each path in order. Duplicate paths yield duplicate entries.
func resolveFiles(fsys afero.Fs, paths []string, logger *zap.Logger) ([]FileEntry, error) {
	files := make([]FileEntry, 0, len(paths))
	for _, p := range paths {
		text, reason, err := readText(fsys, p)
		if err != nil {
			logger.Debug("Failed to read file", zap.String("path", p), zap.Error(err))
			return nil, &FileReadError{Path: p, Reason: reason, Err: err}
		}
		if looksBinary(text) {
			logger.Debug("File content looks binary", zap.String("path", p))
		}
		files = append(files, FileEntry{Path: p, Text: text})
		logger.Debug("Read file", zap.String("path", p), zap.Int("sizeBytes", len(text)))
	}
	return files, nil
}
