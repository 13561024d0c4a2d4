// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTree(t *testing.T) {
	var names []string
	for _, c := range catalogCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "search", "show", "export", "remove"}, names)

	for _, flag := range []string{"stdout", "out-dir", "ext", "frontmatter", "force", "catalog"} {
		assert.NotNil(t, convertCmd.Flags().Lookup(flag), "convert --%s", flag)
	}
	assert.NotNil(t, previewCmd.Flags().ShorthandLookup("o"))
	assert.NotNil(t, previewCmd.Flags().Lookup("outline"))
	assert.NotNil(t, catalogCmd.PersistentFlags().Lookup("catalog-dir"))
}
