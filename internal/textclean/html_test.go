package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "plain text passes through",
			input: "no markup here",
			want:  "no markup here",
		},
		{
			name:  "highlight span removed",
			input: `The <span class="highlight">Go</span> language`,
			want:  "The Go language",
		},
		{
			name:  "nested elements flattened",
			input: "<p>First <b>bold</b> and <i>italic</i></p>",
			want:  "First bold and italic",
		},
		{
			name:  "script content skipped",
			input: "<p>Visible</p><script>var hidden = 1;</script>",
			want:  "Visible",
		},
		{
			name:  "style content skipped",
			input: "<style>.x{color:red}</style>Shown",
			want:  "Shown",
		},
		{
			name:  "whitespace between elements normalized",
			input: "<div>\n  <p>one</p>\n  <p>two</p>\n</div>",
			want:  "one two",
		},
		{
			name:  "bare less-than survives",
			input: "1 < 2 holds",
			want:  "1 < 2 holds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}
