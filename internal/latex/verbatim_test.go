// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShelfRestore(t *testing.T) {
	var s shelf
	inner := s.put("```latex\nx\n```")
	outer := s.put("$$\na " + inner + "\n$$")

	assert.Equal(t, "$$\na ```latex\nx\n```\n$$ end", s.restore(outer+" end"))
	assert.Equal(t, "plain", s.restore("plain"))
	assert.Equal(t, shelfOpen+"7"+shelfClose, s.restore(shelfOpen+"7"+shelfClose), "unknown token kept")
}

func TestShelfPutLabels(t *testing.T) {
	var s shelf
	assert.Empty(t, s.putLabels(nil))
	assert.Empty(t, s.blocks)

	tok := s.putLabels([]string{"a", "b"})
	assert.Equal(t, `\label{a} \label{b}`, s.restore(tok))
}
