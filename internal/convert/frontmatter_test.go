// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/texclean/pkg/types"
)

func TestAddFrontmatter(t *testing.T) {
	doc := types.Document{
		ID:               "paper",
		SourcePath:       "papers/paper.tex",
		Title:            `Colons: "quoted"`,
		ConvertedAt:      fixedNow(),
		ConversionStatus: types.ConversionPartial,
		Warnings:         []types.Warning{{Kind: types.WarnNestedTable, Stage: "tables", Message: "nested"}},
	}

	got, err := AddFrontmatter(doc, "body\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "---\nid: paper\n"))
	assert.True(t, strings.HasSuffix(got, "---\n\nbody\n"))
	assert.NotContains(t, got, "authors:")

	fm, body, err := SplitFrontmatter(got)
	require.NoError(t, err)
	assert.Equal(t, `Colons: "quoted"`, fm.Title)
	assert.Equal(t, "partial", fm.Status)
	assert.Equal(t, []string{"tables: nested"}, fm.Warnings)
	assert.Equal(t, "body\n", body)
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantFM   bool
		wantBody string
		wantErr  bool
	}{
		{name: "no header", in: "# Title\n", wantBody: "# Title\n"},
		{name: "header", in: "---\nid: x\n---\n\n# T\n", wantFM: true, wantBody: "# T\n"},
		{name: "unterminated", in: "---\nid: x\n# T\n", wantBody: "---\nid: x\n# T\n", wantErr: true},
		{name: "bad yaml", in: "---\nid: [\n---\nbody", wantBody: "---\nid: [\n---\nbody", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := SplitFrontmatter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantFM, fm != nil)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
