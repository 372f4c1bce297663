// Package vdom provides the view tree used by docsite components.
//
// A view tree is a framework-neutral description of rendered output: a tree
// of elements with attributes and text or image content, prior to conversion
// into HTML by package render.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attr is used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Footer(Class("nav-footer"), ID("footer"),
//	    Section(Class("sitemap"),
//	        H5(Text("Docs")),
//	        A(Href("/docs/"), Text("Guide")),
//	    ),
//	)
//
// nil arguments are ignored, so optional children can be written inline
// with If and When.
//
// # Queries
//
// Walk, Find and FindAll inspect a built tree; TextContent collects the text
// below a node. They are what tests and tooling use instead of string
// matching on rendered HTML.
//
// # Diffing
//
// Diff compares two trees and returns path-addressed Patch operations. An
// empty result means the trees are structurally identical.
package vdom
