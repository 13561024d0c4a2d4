// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBrace(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		want   int
		wantOK bool
	}{
		{name: "simple argument", text: "{abc}", start: 1, want: 5, wantOK: true},
		{name: "nested braces", text: "{a{b}c}d", start: 1, want: 7, wantOK: true},
		{name: "empty argument", text: "{}", start: 1, want: 2, wantOK: true},
		{name: "deeply nested", text: `\title{A {B {C}} D} rest`, start: 7, want: 19, wantOK: true},
		{name: "unbalanced", text: "{a{b", start: 1, want: 4, wantOK: false},
		{name: "start at end of text", text: "{", start: 1, want: 1, wantOK: false},
		{name: "negative start scans from zero", text: "a}", start: -3, want: 2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchBrace(tt.text, tt.start)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestMatchBraceTerminatesWithinInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("{}{}ab\\ ")
	for n := 0; n < 500; n++ {
		buf := make([]byte, rng.Intn(200))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		text := "{" + string(buf)

		end, ok := MatchBrace(text, 1)
		assert.GreaterOrEqual(t, end, 1)
		assert.LessOrEqual(t, end, len(text))
		if ok {
			assert.Equal(t, byte('}'), text[end-1])
			inner := text[1 : end-1]
			assert.Equal(t, strings.Count(inner, "{"), strings.Count(inner, "}"), "argument %q should be balanced", inner)
		} else {
			assert.Equal(t, len(text), end)
		}
	}
}

func TestBraceGroup(t *testing.T) {
	inner, end, ok := braceGroup("  {x{y}} rest", 0)
	assert.True(t, ok)
	assert.Equal(t, "x{y}", inner)
	assert.Equal(t, 8, end)

	inner, end, ok = braceGroup("  rest", 0)
	assert.False(t, ok)
	assert.Empty(t, inner)
	assert.Equal(t, 2, end)

	inner, end, ok = braceGroup("{open", 0)
	assert.False(t, ok)
	assert.Equal(t, "open", inner)
	assert.Equal(t, 5, end)
}

func TestRewriteCommandsLeavesUnbalancedInPlace(t *testing.T) {
	got := rewriteCommands(`\textbf{ok} \textbf{broken`, inlinePattern, func(name, arg string) string {
		return "<" + arg + ">"
	})
	assert.Equal(t, `<ok> \textbf{broken`, got)
}

func TestRewriteCommandsAfterUnbalanced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "balanced inside unbalanced", in: `\emph{a \textbf{b} c`, want: `\emph{a **b** c`},
		{name: "balanced after closed group", in: `\emph{x {y} \textbf{z}`, want: `\emph{x {y} **z**`},
		{name: "every argument open", in: `\emph{a \textbf{b \textsc{c`, want: `\emph{a \textbf{b \textsc{c`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInline(tt.in))
		})
	}
}

func TestFormatInlineManyUnbalanced(t *testing.T) {
	in := strings.Repeat(`\emph{x \textbf{y `, 20000)
	assert.Equal(t, in, FormatInline(in))
}

func TestBraceDepthsAgreesWithMatchBrace(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte("{}a ")
	for range 200 {
		buf := make([]byte, rng.Intn(40))
		for i := range buf {
			buf[i] = alphabet[rng.Intn(len(alphabet))]
		}
		text := string(buf)
		d := newBraceDepths(text)
		for start := 0; start <= len(text); start++ {
			_, ok := MatchBrace(text, start)
			assert.Equal(t, ok, d.closes(start), "text %q start %d", text, start)
		}
	}
}

func TestCollectLabels(t *testing.T) {
	text := `\caption{x \label{a}} \label{b}\label{c:d}`
	assert.Equal(t, []string{"a", "b", "c:d"}, collectLabels(text))
	assert.Equal(t, `\caption{x } `, stripLabels(text))
	assert.Equal(t, `\label{a} \label{b}`, labelMarkers([]string{"a", "b"}))
}
