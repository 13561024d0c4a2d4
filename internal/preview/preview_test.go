// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const converted = "# A **Study**\n\n" +
	"**Authors:** Ada, Alan\n\n" +
	"**Table:** Results\n\n" +
	"| A | B |\n| --- | --- |\n| 1 | 2 \\| 3 |\n\n" +
	"## Method\n\\label{sec:m}\n\n" +
	"Text with *emphasis* and <script>x</script>.\n"

func TestFragment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Fragment(&buf, converted))
	out := buf.String()

	assert.Contains(t, out, `<h1 id="a-study">A <strong>Study</strong></h1>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>A</th>")
	assert.Contains(t, out, "<td>2 | 3</td>")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.NotContains(t, out, "<script>")
}

func TestOutline(t *testing.T) {
	got := New().Outline(converted)
	require.Len(t, got, 2)
	assert.Equal(t, Heading{Level: 1, Text: "A Study", ID: "a-study"}, got[0])
	assert.Equal(t, 2, got[1].Level)
	assert.Equal(t, "Method", got[1].Text)
}

func TestPage(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantTitle string
	}{
		{name: "frontmatter title", in: "---\nid: p\ntitle: From Header\n---\n\n# Body\n", wantTitle: "<title>From Header</title>"},
		{name: "fallback title", in: "# Body\n", wantTitle: "<title>paper &lt;1&gt;</title>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, New().Page(&buf, tt.in, "paper <1>"))
			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
			assert.Contains(t, out, tt.wantTitle)
			assert.Contains(t, out, `<h1 id="body">Body</h1>`)
			assert.NotContains(t, out, "id: p")
		})
	}
}

func TestPageBadFrontmatter(t *testing.T) {
	var buf bytes.Buffer
	err := New().Page(&buf, "---\nid: x\n# never closed\n", "x")
	assert.Error(t, err)
}
