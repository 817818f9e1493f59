package mail

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// formatRichText prépare un texte rédigé dans l'éditeur de templates pour
// insertion HTML. L'ordre est important: échappement d'abord, puis conversion
// du gras markdown (**texte**) et des retours à la ligne.
func formatRichText(s string) template.HTML {
	if s == "" {
		return ""
	}
	out := html.EscapeString(s)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return template.HTML(out)
}
