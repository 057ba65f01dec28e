package prompt

import (
	"strings"
	"unicode/utf8"
)

// Render serializes the tree without added whitespace. An element with
// neither text nor children is written self-closing as "<tag />".
func Render(root *Element) string {
	var b strings.Builder
	renderElement(&b, root)
	return b.String()
}

func renderElement(b *strings.Builder, el *Element) {
	b.WriteByte('<')
	b.WriteString(el.Tag)
	for _, attr := range el.Attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		escape(b, attr.Value, true)
		b.WriteByte('"')
	}

	if el.Text == "" && len(el.Children) == 0 {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	escape(b, el.Text, false)
	for _, child := range el.Children {
		renderElement(b, child)
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteByte('>')
}

// escape writes s as XML character data, or as a double-quoted attribute
// value when attr is set. Carriage returns are always written as a character
// reference so parsers do not fold them into newlines. Runes that XML 1.0
// cannot carry, including invalid UTF-8, become U+FFFD.
func escape(b *strings.Builder, s string, attr bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '\r':
			b.WriteString("&#13;")
		case attr && r == '"':
			b.WriteString("&quot;")
		case attr && r == '\n':
			b.WriteString("&#10;")
		case attr && r == '\t':
			b.WriteString("&#09;")
		case r == utf8.RuneError && size == 1, !isXMLChar(r):
			b.WriteRune(utf8.RuneError)
		default:
			b.WriteRune(r)
		}
	}
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
