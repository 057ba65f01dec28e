package prompt

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the output document. Text is stored unescaped and is
// escaped only when rendered.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// BuildDocument builds the prompt tree:
//
//	prompt
//	├── templates
//	│   └── template name=NAME
//	└── files
//	    └── file path=PATH
//
// Both collections are always present, even when empty.
func BuildDocument(templates []Template, files []FileEntry) *Element {
	templatesEl := &Element{Tag: "templates", Children: make([]*Element, 0, len(templates))}
	for _, t := range templates {
		templatesEl.Children = append(templatesEl.Children, &Element{
			Tag:   "template",
			Attrs: []Attr{{Name: "name", Value: t.Name}},
			Text:  t.Text,
		})
	}

	filesEl := &Element{Tag: "files", Children: make([]*Element, 0, len(files))}
	for _, f := range files {
		filesEl.Children = append(filesEl.Children, &Element{
			Tag:   "file",
			Attrs: []Attr{{Name: "path", Value: f.Path}},
			Text:  f.Text,
		})
	}

	return &Element{Tag: "prompt", Children: []*Element{templatesEl, filesEl}}
}
