package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/flashdeck/models"
)

func TestHTML(t *testing.T) {
	r := New()

	tests := []struct {
		name        string
		src         string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis",
			src:      "**What is the quadratic formula?**",
			contains: []string{"<strong>What is the quadratic formula?</strong>"},
		},
		{
			name:     "strikethrough",
			src:      "~~wrong~~ right",
			contains: []string{"<del>wrong</del>"},
		},
		{
			name:     "table",
			src:      "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "inline math kept verbatim",
			src:      `The answer is $\frac{1}{2}$ exactly`,
			contains: []string{`<span class="math inline">$\frac{1}{2}$</span>`},
		},
		{
			name:     "block math kept verbatim",
			src:      "$$\n\\int_0^1 x\\,dx\n$$",
			contains: []string{`<div class="math display">`, `\int_0^1 x\,dx`},
		},
		{
			name: "inline math inequalities escaped",
			src:  "$a<b$ and $b>c$",
			contains: []string{
				`<span class="math inline">$a&lt;b$</span>`,
				`<span class="math inline">$b&gt;c$</span>`,
			},
		},
		{
			name:     "paren math inequality escaped",
			src:      `\(x<y\)`,
			contains: []string{`<span class="math inline">\(x&lt;y\)</span>`},
		},
		{
			name:     "block math inequality escaped",
			src:      "$$\nx<1\n$$",
			contains: []string{`<div class="math display">`, "x&lt;1"},
		},
		{
			name:        "script stripped",
			src:         "hello <script>alert(1)</script>",
			contains:    []string{"hello"},
			notContains: []string{"<script", "alert(1)</script>"},
		},
		{
			name:        "javascript link stripped",
			src:         "[click](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.HTML(tt.src)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestFlashcard(t *testing.T) {
	rendered, err := New().Flashcard(models.Flashcard{ID: 7, Question: "*q*", Answer: "`a`"})
	require.NoError(t, err)

	assert.EqualValues(t, 7, rendered.ID)
	assert.Contains(t, rendered.Question, "<em>q</em>")
	assert.Contains(t, rendered.Answer, "<code>a</code>")
}
