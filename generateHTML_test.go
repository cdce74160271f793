package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIndexHTML(t *testing.T) {
	t.Parallel()
	fig := sampleFigure(t)
	page := indexPage{
		Source:     "<robots>.csv",
		Stage:      fig.Stage,
		StageCount: 1,
		Cyclic:     true,
		Actions:    []ToolbarAction{ActionBack, ActionForward},
		Figures:    []Figure{fig},
		Style:      defaultStyle(),
	}

	out := generateIndexHTML(page)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>&lt;robots&gt;.csv</title>", "source names are escaped")
	assert.Contains(t, out, ">Back</button>")
	assert.Contains(t, out, ">Forward</button>")
	assert.Contains(t, out, "background-color:purple;")
	assert.Contains(t, out, "elevator (triangle)")
	assert.Contains(t, out, `<iframe src="/floors/0" style="width:900px; height:700px;"`)
	assert.NotContains(t, out, "No floors to display.")
}

func TestGenerateIndexHTML_NoFloors(t *testing.T) {
	t.Parallel()
	out := generateIndexHTML(indexPage{Source: "empty.csv", StageCount: 1, Style: defaultStyle()})
	assert.Contains(t, out, "No floors to display.")
	assert.Contains(t, out, "[fixed]")
	assert.NotContains(t, out, "<form")
}

func TestEscapeCSS(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `red\"`, escapeCSS(`red";`))
	assert.Equal(t, "#fff", escapeCSS("#fff"))
}
