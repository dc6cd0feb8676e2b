package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiptrack/inputguard/pkg/sanitizer"
)

func TestStripScriptTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script block and its content",
			input:    `<script>alert("xss")</script>Hello`,
			expected: "Hello",
		},
		{
			name:     "matches case-insensitively",
			input:    "a<SCRIPT type=\"text/javascript\">x()</ScRiPt>b",
			expected: "ab",
		},
		{
			name:     "spans line breaks",
			input:    "before<script>\nline1\nline2\n</script>after",
			expected: "beforeafter",
		},
		{
			name:     "removes every block non-greedily",
			input:    "<script>1</script>keep<script>2</script>",
			expected: "keep",
		},
		{
			name:     "leaves unterminated script alone",
			input:    "<script>alert(1)",
			expected: "<script>alert(1)",
		},
		{
			name:     "handles plain text",
			input:    "normal text",
			expected: "normal text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripScriptTags(tt.input))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes simple tags keeping content",
			input:    "<b>bold</b> text",
			expected: "bold text",
		},
		{
			name:     "removes tags with attributes",
			input:    `<a href="x" onclick="y()">link</a>`,
			expected: "link",
		},
		{
			name:     "removes empty angle pair",
			input:    "Test<>",
			expected: "Test",
		},
		{
			name:     "keeps lone angle bracket",
			input:    "a < b",
			expected: "a < b",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestStripMarkupChars(t *testing.T) {
	assert.Equal(t, "HelloWorldTest", sanitizer.StripMarkupChars(`Hello"World&Test<>`))
	assert.Equal(t, "its fine", sanitizer.StripMarkupChars("it's fine"))
	assert.Equal(t, "", sanitizer.StripMarkupChars(`<>"'&`))
}

func TestFoldCompat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "folds full-width letters and brackets",
			input:    "＜ｓｃｒｉｐｔ＞",
			expected: "<script>",
		},
		{
			name:     "folds full-width colon",
			input:    "javascript：",
			expected: "javascript:",
		},
		{
			name:     "leaves ascii untouched",
			input:    "123 Main St",
			expected: "123 Main St",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.FoldCompat(tt.input))
		})
	}
}
