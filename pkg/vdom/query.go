package vdom

import "strings"

// Matcher reports whether a node matches a query.
type Matcher func(*VNode) bool

// Walk visits node and its descendants depth-first in document order.
// Component nodes are expanded by calling Render. If fn returns false the
// node's children are skipped.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), fn)
		}
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// Find returns the first node matching m, or nil.
func Find(node *VNode, m Matcher) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if m(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching m in document order.
func FindAll(node *VNode, m Matcher) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if m(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent concatenates all text below node. Raw nodes are skipped.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// ByTag matches elements with the given tag.
func ByTag(tag string) Matcher {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByClass matches elements whose class list contains class.
func ByClass(class string) Matcher {
	return func(n *VNode) bool {
		if n.Kind != KindElement {
			return false
		}
		for _, c := range strings.Fields(n.AttrString("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// ByID matches the element with the given id.
func ByID(id string) Matcher {
	return ByAttr("id", id)
}

// ByAttr matches elements whose attribute key equals value.
func ByAttr(key string, value any) Matcher {
	return func(n *VNode) bool {
		if n.Kind != KindElement {
			return false
		}
		v, ok := n.Attr(key)
		return ok && v == value
	}
}

// HasAttr matches elements that carry attribute key.
func HasAttr(key string) Matcher {
	return func(n *VNode) bool {
		if n.Kind != KindElement {
			return false
		}
		_, ok := n.Attr(key)
		return ok
	}
}

// And matches nodes accepted by every matcher.
func And(ms ...Matcher) Matcher {
	return func(n *VNode) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Not inverts a matcher.
func Not(m Matcher) Matcher {
	return func(n *VNode) bool {
		return !m(n)
	}
}
