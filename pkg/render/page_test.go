package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scalameta/docsite/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "Docs <preview>",
		Meta:        []MetaTag{{Name: "generator", Content: "docsite"}},
		StyleSheets: []string{"/css/main.css"},
		Styles:      []string{"body{margin:0}"},
		Scripts: []ScriptTag{
			{Src: "/js/app.js", Defer: true},
			{Inline: "window.x = 1 < 2;"},
		},
		Body: vdom.Footer(vdom.Text("footer")),
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()

	wants := []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		`<meta charset="utf-8">`,
		`<meta content="width=device-width, initial-scale=1" name="viewport">`,
		`<title>Docs &lt;preview&gt;</title>`,
		`<meta content="docsite" name="generator">`,
		`<link href="/css/main.css" rel="stylesheet">`,
		`<style>body{margin:0}</style>`,
		`<body><footer>footer</footer><script defer src="/js/app.js"></script><script>window.x = 1 < 2;</script></body>`,
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q\ngot %s", want, html)
		}
	}
	if !strings.HasSuffix(html, "</html>\n") {
		t.Errorf("page should end with </html>, got %q", html[len(html)-20:])
	}
}

func TestRenderPageLang(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Lang: "de"}); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(buf.String(), `<html lang="de">`) {
		t.Errorf("got %s", buf.String())
	}
	if strings.Contains(buf.String(), "<title>") {
		t.Error("empty title should not render a title element")
	}
}
