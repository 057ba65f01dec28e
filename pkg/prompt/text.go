// File: pkg/prompt/text.go
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

var (
	errNotRegular = errors.New("not a regular file")
	errBinary     = errors.New("content looks binary")
	errNotUTF8    = errors.New("content is not valid UTF-8")
)

// newlineNormalizer folds CRLF and lone CR line endings into LF.
var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// readText reads a whole file as UTF-8 text with normalized line endings.
// On failure the Reason distinguishes a path that is not a regular file from
// one whose content could not be read; on success it is the zero Reason.
func readText(fsys afero.Fs, path string) (string, Reason, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", ReasonMissing, err
	}
	if !info.Mode().IsRegular() {
		return "", ReasonMissing, fmt.Errorf("%s: %w", path, errNotRegular)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", ReasonUnreadable, err
	}

	if err := checkText(data); err != nil {
		return "", ReasonUnreadable, fmt.Errorf("%s: %w", path, err)
	}
	return newlineNormalizer.Replace(string(data)), 0, nil
}

// checkText rejects content that cannot be decoded as UTF-8. Undecodable
// content holding NUL bytes is reported as binary.
func checkText(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return errBinary
	}
	return errNotUTF8
}

// looksBinary reports whether decoded text holds NUL bytes.
func looksBinary(text string) bool {
	return strings.IndexByte(text, 0) >= 0
}

// splitLines splits text on every line boundary, trims each line and drops
// the blank ones.
func splitLines(text string) []string {
	fields := strings.FieldsFunc(text, isLineBreak)
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		if line := strings.TrimSpace(field); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
