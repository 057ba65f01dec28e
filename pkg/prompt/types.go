package prompt

// DefaultTemplateName is the name given to the template substituted when no
// template files and no inline prompts were supplied.
const DefaultTemplateName = "default"

// DefaultTemplateText is the built-in text of the default template.
const DefaultTemplateText = "Please analyze the provided files and summarize their purpose and functionality."

// inlinePromptPrefix prefixes the 1-based index of a positional prompt.
const inlinePromptPrefix = "inline_prompt_"

// Options holds everything a single rp invocation needs.
type Options struct {
	PromptPaths     []string // Template files (-p), in flag order.
	FilePaths       []string // Files (-f), in flag order.
	ListPath        string   // Optional file listing more file paths, one per line (-l).
	InlinePrompts   []string // Positional arguments, each one inline template.
	OutputPath      string   // Destination file; empty means stdout (-o).
	DefaultTemplate string   // Overrides DefaultTemplateText when non-empty.
	Exclude         []string // Ignore patterns applied to list-file paths only.
}

// Template is a named block of prompt text.
type Template struct {
	Name string // Base name of the source file, inline_prompt_<i>, or "default".
	Text string
}

// FileEntry is the content of one input file.
type FileEntry struct {
	Path string // Path exactly as the caller supplied it.
	Text string
}

// Inputs is the outcome of resolving Options: the templates and files that
// make up the document, in output order.
type Inputs struct {
	Templates []Template
	Files     []FileEntry
}

// Result summarizes a successful run.
type Result struct {
	Document  string // Rendered XML document.
	Tokens    int    // Whitespace-delimited runs in Document.
	Templates int
	Files     int
}
