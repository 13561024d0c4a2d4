// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex rewrites a LaTeX document into a simplified Markdown-like
// text and extracts its title and authors.
//
// The conversion is a fixed sequence of pure text passes (see Stages).
// Arguments that may hold nested braces are located with MatchBrace rather
// than regular expressions. Malformed or unsupported input never aborts a
// conversion: the affected construct is kept verbatim and a Warning is
// recorded.
package latex
