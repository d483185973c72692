package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ia4it/landing/pkg/sanitizer"
)

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps paragraph and line breaks",
			input:    "<p>Name: Ada<br>\nEmail: ada@example.com</p>",
			expected: "<p>Name: Ada<br>\nEmail: ada@example.com</p>",
		},
		{
			name:     "strips script injection",
			input:    `<p>Hi</p><script>alert('xss')</script>`,
			expected: "<p>Hi</p>",
		},
		{
			name:     "strips event handlers",
			input:    `<p onclick="steal()">x</p>`,
			expected: "<p>x</p>",
		},
		{
			name:     "drops javascript urls",
			input:    `<a href="javascript:alert(1)">click</a>`,
			expected: "click",
		},
		{
			name:     "keeps mailto links with nofollow",
			input:    `<a href="mailto:ada@example.com">ada</a>`,
			expected: `<a href="mailto:ada@example.com" rel="nofollow">ada</a>`,
		},
		{
			name:     "strips raw html from user input",
			input:    `<p>Referral: <img src=x onerror=alert(1)>Other</p>`,
			expected: "<p>Referral: Other</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeHTML(tt.input))
		})
	}
}
