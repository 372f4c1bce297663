// Package render converts view trees into HTML.
//
// The renderer handles the parts of producing valid, safe HTML output:
//
//   - Text and attribute escaping
//   - Void element handling (img, br, meta, etc.)
//   - Boolean attribute handling (defer, hidden, etc.)
//   - Deterministic attribute order
//   - Optional pretty printing
//   - Full page rendering with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Docs",
//	    Body:  node,
//	})
//
// # Security
//
// All text content is escaped. Raw nodes are written verbatim and must only
// carry trusted content.
package render
