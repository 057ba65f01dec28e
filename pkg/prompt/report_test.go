package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestReporter_Success(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false).Success(42)

	if got, want := buf.String(), "Success: Prompt generated with 42 tokens.\n"; got != want {
		t.Errorf("Success() wrote %q, want %q", got, want)
	}
}

func TestReporter_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "file error",
			err:  &FileReadError{Path: "missingfile.txt", Reason: ReasonMissing},
			want: "Error: File 'missingfile.txt' does not exist or is not accessible.\n",
		},
		{
			name: "wrapped typed error keeps its message",
			err:  fmt.Errorf("resolve: %w", &TemplateFileError{Path: "p.md", Reason: ReasonUnreadable}),
			want: "Error: Could not read prompt template file 'p.md'.\n",
		},
		{
			name: "plain error",
			err:  errors.New("failed to write prompt to stdout: broken pipe"),
			want: "Error: failed to write prompt to stdout: broken pipe\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).Error(tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("Error() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter_Silent(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)

	r.Success(7)
	r.Error(&WriteError{Path: "out.xml"})

	if buf.Len() != 0 {
		t.Errorf("silent reporter wrote %q", buf.String())
	}
}
