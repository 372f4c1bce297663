package render

import (
	"io"

	"github.com/scalameta/docsite/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Scripts are appended to the end of the body.
	Scripts []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content, written unescaped
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, pageTree(page)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// pageTree assembles the document around page.Body.
func pageTree(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []*vdom.VNode{
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	}
	if page.Title != "" {
		head = append(head, vdom.Title(vdom.Text(page.Title)))
	}
	for _, m := range page.Meta {
		head = append(head, vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content)))
	}
	for _, href := range page.StyleSheets {
		head = append(head, vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	for _, css := range page.Styles {
		head = append(head, vdom.Style(vdom.Raw(css)))
	}

	scripts := make([]*vdom.VNode, 0, len(page.Scripts))
	for _, s := range page.Scripts {
		scripts = append(scripts, vdom.Script(
			vdom.AttrIf(s.Src != "", vdom.Src(s.Src)),
			vdom.AttrIf(s.Defer, vdom.Defer_()),
			vdom.If(s.Inline != "", vdom.Raw(s.Inline)),
		))
	}

	return vdom.Html(vdom.Lang(lang),
		vdom.Head(head),
		vdom.Body(page.Body, scripts),
	)
}
