// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "itemize",
			in:   `\begin{itemize}\item A\item B\end{itemize}`,
			want: "- A\n- B\n",
		},
		{
			name: "enumerate with options and formatting",
			in:   `\begin{enumerate}[label=(\alph*)] \item One \item \textbf{Two}\end{enumerate}`,
			want: "1. One\n2. **Two**\n",
		},
		{
			name: "empty items dropped",
			in:   `\begin{itemize} \item \item A \item  \end{itemize}`,
			want: "- A\n",
		},
		{
			name: "nested lists are converted innermost first",
			in:   `\begin{itemize}\item Outer \begin{enumerate}\item In\end{enumerate}\item Next\end{itemize}`,
			want: "- Outer\n\n1. In\n- Next\n",
		},
		{
			name: "same-kind nesting",
			in:   `\begin{itemize}\item a \begin{itemize}\item b\end{itemize}\end{itemize}`,
			want: "- a\n\n- b\n",
		},
		{
			name: "description terms",
			in:   `\begin{description}\item[Go] A language\item[Rust] Another\end{description}`,
			want: "- **Go** A language\n- **Rust** Another\n",
		},
		{
			name: "stray items",
			in:   `text \item a \item b`,
			want: "text\n- a\n- b\n",
		},
		{
			name: "itemsep is not an item",
			in:   `\begin{itemize}\item x\itemsep\end{itemize}`,
			want: "- x\\itemsep\n",
		},
		{
			name: "unmatched end left alone",
			in:   `a \end{itemize} b`,
			want: "a \\end{itemize} b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runStage(t, "lists", tt.in)
			assert.Equal(t, tt.want, FinalCleanup(got))
		})
	}
}

func TestConvertListsEnumeratedBeforeUnordered(t *testing.T) {
	in := `\begin{enumerate}\item first\end{enumerate} \begin{itemize}\item second\end{itemize}`
	got, _ := runStage(t, "lists", in)
	assert.Equal(t, "1. first\n\n- second\n", FinalCleanup(got))
}
