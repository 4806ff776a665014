package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		interactive bool
		want        PromptResult
	}{
		{name: "non-interactive declines", input: "y\n", interactive: false, want: PromptResult{}},
		{name: "y accepts", input: "y\n", interactive: true, want: PromptResult{Accepted: true}},
		{name: "YES accepts", input: "YES\n", interactive: true, want: PromptResult{Accepted: true}},
		{name: "empty declines", input: "\n", interactive: true, want: PromptResult{}},
		{name: "eof declines", input: "", interactive: true, want: PromptResult{}},
		{name: "other declines", input: "maybe\n", interactive: true, want: PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(&out, strings.NewReader(tt.input), tt.interactive, "Overwrite?")
			assert.Equal(t, tt.want, got)
			if tt.interactive {
				assert.Equal(t, "? Overwrite? [y/N] ", out.String())
			} else {
				assert.Empty(t, out.String())
			}
		})
	}

	got := confirm(&bytes.Buffer{}, errReader{}, true, "Overwrite?")
	assert.True(t, got.Cancelled)
}
