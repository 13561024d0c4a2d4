// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

var inlinePattern = commandPattern("emph", "textit", "textbf", "textsc")

// FormatInline rewrites \emph and \textit to *x*, \textbf to **x** and
// \textsc to `x`. Arguments are trimmed and formatted recursively; commands
// with unbalanced braces are left as they are.
func FormatInline(text string) string {
	return rewriteCommands(text, inlinePattern, func(name, arg string) string {
		arg = strings.TrimSpace(FormatInline(arg))
		switch name {
		case "textbf":
			return "**" + arg + "**"
		case "textsc":
			return "`" + arg + "`"
		default:
			return "*" + arg + "*"
		}
	})
}
