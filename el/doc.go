// Package el provides the view DSL for docsite.
//
// It re-exports HTML element constructors, attribute helpers and common
// VDOM utilities from github.com/scalameta/docsite/pkg/vdom so view code
// can dot-import a single package.
//
// Typical usage:
//
//	import . "github.com/scalameta/docsite/el"
//
//	func Banner(title string) *VNode {
//	    return Div(Class("banner"), H1(Text(title)))
//	}
package el
