// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/texclean/pkg/types"
)

func TestConvertFigures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "caption with embedded label",
			in:   `before \begin{figure}\centering\includegraphics{x.png}\caption{A \emph{nice} plot\label{fig:a}}\end{figure} after`,
			want: "before \n\n**Figure:** A *nice* plot \\label{fig:a}\n\n after",
		},
		{
			name: "several captions and labels",
			in:   `\begin{figure*}\caption{One}\caption{Two {braced}}\label{f1}\label{f2}\end{figure*}`,
			want: "\n\n**Figure:** One Two {braced} \\label{f1} \\label{f2}\n\n",
		},
		{
			name: "no caption",
			in:   `\begin{figure}\includegraphics{y}\label{fig:y}\end{figure}`,
			want: "\n\n**Figure:**  \\label{fig:y}\n\n",
		},
		{
			name: "two figures",
			in:   `\begin{figure}\caption{A}\end{figure}\begin{figure}\caption{B}\end{figure}`,
			want: "\n\n**Figure:** A\n\n\n\n**Figure:** B\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := runStage(t, "figures", tt.in)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, warnings)
		})
	}
}

func TestConvertFiguresUnbalancedCaption(t *testing.T) {
	got, warnings := runStage(t, "figures", `\begin{figure}\caption{Broken {x \label{fig:b}\end{figure}`)

	assert.Equal(t, "\n\n**Figure:** Broken {x \\label{fig:b}\n\n", got)
	require.Len(t, warnings, 1)
	assert.Equal(t, types.WarnUnbalancedCaption, warnings[0].Kind)
	assert.Equal(t, "figures", warnings[0].Stage)
}
