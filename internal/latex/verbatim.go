// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"regexp"
	"strconv"
	"strings"
)

// Shelf tokens are private-use runes; input is scrubbed of them before
// conversion so a token can only come from shelf.put.
const (
	shelfOpen  = "\uE000"
	shelfClose = "\uE001"
)

var (
	shelfToken    = regexp.MustCompile(shelfOpen + `([0-9]+)` + shelfClose)
	shelfScrubber = strings.NewReplacer(shelfOpen, "", shelfClose, "")
)

// shelf holds blocks that must reach the output byte for byte. Stages emit a
// token in place of the block and restore swaps the blocks back in after the
// last stage.
type shelf struct {
	blocks []string
}

func (s *shelf) put(block string) string {
	s.blocks = append(s.blocks, block)
	return shelfOpen + strconv.Itoa(len(s.blocks)-1) + shelfClose
}

// restore swaps tokens for their blocks until none remain. A block may hold
// tokens of blocks shelved before it, so each round only reaches lower
// indices and len(blocks) rounds always suffice.
func (s *shelf) restore(text string) string {
	for range len(s.blocks) {
		if !shelfToken.MatchString(text) {
			break
		}
		text = shelfToken.ReplaceAllStringFunc(text, func(tok string) string {
			i, err := strconv.Atoi(tok[len(shelfOpen) : len(tok)-len(shelfClose)])
			if err != nil || i >= len(s.blocks) {
				return tok
			}
			return s.blocks[i]
		})
	}
	return text
}

// putLabels shelves the label markers of a figure or table so a later
// stage cannot pick them up as its own. No labels yields "".
func (s *shelf) putLabels(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return s.put(labelMarkers(labels))
}

// fence wraps src in a ```latex fenced block.
func fence(src string) string {
	return "```latex\n" + strings.TrimSpace(src) + "\n```"
}
