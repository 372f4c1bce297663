// Package footer renders the documentation site footer.
package footer

import (
	. "github.com/scalameta/docsite/el"
	"github.com/scalameta/docsite/internal/site"
)

// Logo dimensions in CSS pixels.
const (
	LogoWidth  = 66
	LogoHeight = 58
)

// DocLink is an internal documentation link of the sitemap.
type DocLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// docPaths are relative to the site's baseUrl.
var docPaths = []DocLink{
	{Label: "Trees Guide", Href: "docs/trees/guide.html"},
	{Label: "Quasiquotes", Href: "docs/trees/quasiquotes.html"},
	{Label: "SemanticDB", Href: "docs/semanticdb/specification.html"},
}

// DocLinks returns the Docs group links resolved against baseURL.
func DocLinks(baseURL string) []DocLink {
	links := make([]DocLink, len(docPaths))
	for i, l := range docPaths {
		links[i] = DocLink{Label: l.Label, Href: baseURL + l.Href}
	}
	return links
}

// Render builds the footer view tree. It reads cfg and links only and
// returns a fresh tree on every call.
func Render(cfg site.Config, links site.StaticLinks) *VNode {
	return Footer(Class("nav-footer"), ID("footer"),
		Styles(map[string]string{"background-color": cfg.Colors.SecondaryColor}),
		Section(Class("sitemap"),
			If(cfg.FooterIcon != "", logo(cfg)),
			Div(
				H5(Text("Docs")),
				Range(DocLinks(cfg.BaseURL), func(l DocLink, _ int) *VNode {
					return A(Href(l.Href), Text(l.Label))
				}),
			),
			Div(
				H5(Text("Community")),
				externalLink(links.GitterURL, "Chat on Gitter"),
			),
			Div(
				H5(Text("More")),
				externalLink(links.RepoURL, "GitHub"),
			),
		),
		Section(Class("copyright"), Text(cfg.Copyright)),
	)
}

// AsComponent wraps Render for embedding in a parent tree. The tree is
// built when the parent is rendered.
func AsComponent(cfg site.Config, links site.StaticLinks) Component {
	return Func(func() *VNode { return Render(cfg, links) })
}

func logo(cfg site.Config) *VNode {
	return A(Href(cfg.BaseURL), Class("nav-home"),
		Img(
			Src(cfg.BaseURL+cfg.FooterIcon),
			Alt(cfg.Title),
			Width(LogoWidth),
			Height(LogoHeight),
		),
	)
}

// externalLink opens in a new tab.
func externalLink(href, label string) *VNode {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), Text(label))
}
