// generateHTML.go
package main

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// indexPage is everything the display page shows for one stage.
type indexPage struct {
	Source     string
	Stage      Stage
	StageCount int
	Cyclic     bool
	Actions    []ToolbarAction
	Figures    []Figure
	Style      Style
}

// generateIndexHTML builds the display page: a toolbar, a legend and, per
// floor, the interactive chart next to its floor plan.
func generateIndexHTML(page indexPage) string {
	var htmlBuilder strings.Builder

	// --- Basic HTML Structure ---
	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	htmlBuilder.WriteString(fmt.Sprintf("<title>%s</title>\n", escapeHTML(page.Source)))
	htmlBuilder.WriteString("<style>\n")
	htmlBuilder.WriteString(`
        body { margin: 0; padding: 20px; font-family: sans-serif; font-size: 14px; }
        .toolbar { display: flex; gap: 8px; align-items: center; margin-bottom: 12px; }
        .toolbar form { margin: 0; }
        .legend { display: flex; gap: 16px; margin-bottom: 16px; }
        .swatch { display: inline-block; width: 12px; height: 12px; margin-right: 4px; vertical-align: middle; }
        .floor { display: flex; gap: 12px; margin-bottom: 24px; }
        .floor iframe { border: 1px solid #ddd; }
        .floor img { border: 1px solid #ddd; }
    `)
	htmlBuilder.WriteString("\n</style>\n</head>\n<body>\n")

	// --- Toolbar ---
	htmlBuilder.WriteString("<div class=\"toolbar\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("  <span class=\"stage\">Stage %d (%d of %d)%s</span>\n",
		page.Stage.Value, page.Stage.Index+1, page.StageCount, ternary(page.Cyclic, "", " [fixed]")))
	title := cases.Title(language.English)
	for _, action := range page.Actions {
		htmlBuilder.WriteString(fmt.Sprintf("  <form method=\"post\" action=\"/toolbar/%s\"><button type=\"submit\">%s</button></form>\n",
			escapeHTML(string(action)), escapeHTML(title.String(string(action)))))
	}
	htmlBuilder.WriteString("</div>\n")

	// --- Legend ---
	htmlBuilder.WriteString("<div class=\"legend\">\n")
	for _, t := range []EntityType{TypeElevator, TypeBin, TypeRobot} {
		ms := page.Style.MarkerStyle(t)
		htmlBuilder.WriteString(fmt.Sprintf("  <span><span class=\"swatch\" style=\"background-color:%s;\"></span>%s (%s)</span>\n",
			escapeCSS(ms.Color), t, escapeHTML(ms.Symbol)))
	}
	htmlBuilder.WriteString("</div>\n")

	// --- Floors ---
	if len(page.Figures) == 0 {
		htmlBuilder.WriteString("<p>No floors to display.</p>\n")
	}
	chart := page.Style.Chart
	for _, fig := range page.Figures {
		htmlBuilder.WriteString(fmt.Sprintf("<h2>%s <small>z=%s</small></h2>\n", escapeHTML(fig.Title), formatNumber(fig.Floor.Z)))
		htmlBuilder.WriteString("<div class=\"floor\">\n")
		htmlBuilder.WriteString(fmt.Sprintf("  <iframe src=\"/floors/%d\" style=\"width:%s; height:%s;\" title=\"%s\"></iframe>\n",
			fig.Floor.Index, escapeCSS(chart.Width), escapeCSS(chart.Height), escapeHTML(fig.Title)))
		htmlBuilder.WriteString(fmt.Sprintf("  <img src=\"/floors/%d/plan.png?stage=%d\" alt=\"%s floor plan\"/>\n",
			fig.Floor.Index, fig.Stage.Value, escapeHTML(fig.Title)))
		htmlBuilder.WriteString("</div>\n")
	}

	htmlBuilder.WriteString("</body>\n</html>")
	return htmlBuilder.String()
}

func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// Simple CSS Escaping (basic)
func escapeCSS(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `;`, ``)
	return s
}
