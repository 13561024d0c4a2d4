// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertHeadings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "section with label", in: `\section{Intro}\label{sec:intro}`, want: "# Intro\n\\label{sec:intro}\n"},
		{name: "label after blanks", in: `\section{Intro} \label{sec:intro} Text`, want: "# Intro\n\\label{sec:intro}\n\nText\n"},
		{name: "starred subsection", in: `\subsection*{Related Work}`, want: "## Related Work\n"},
		{name: "subsubsection with braces", in: `\subsubsection{A {nested} title}`, want: "### A {nested} title\n"},
		{name: "paragraph", in: `\paragraph{Note} body`, want: "#### Note\n\nbody\n"},
		{name: "running title", in: `\runningtitle{Short}`, want: "# Short\n"},
		{name: "optional short title", in: `\section[Short]{Long}`, want: "# Long\n"},
		{name: "label not adjacent stays inline", in: `\section{A} text \label{x}`, want: "# A\n\ntext \\label{x}\n"},
		{name: "unbalanced left verbatim", in: `\section{Open`, want: "\\section{Open\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runStage(t, "headings", tt.in)
			assert.Equal(t, tt.want, FinalCleanup(got))
		})
	}
}
