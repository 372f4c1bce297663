package vdom

import "testing"

func queryTree() *VNode {
	return Footer(Class("nav-footer"), ID("footer"),
		Section(Class("sitemap"),
			Div(
				H5(Text("Docs")),
				A(Href("/a"), Text("A")),
				A(Href("/b"), Target("_blank"), Text("B")),
			),
		),
		Func(func() *VNode {
			return Section(Class("copyright"), Text("© Proj"))
		}),
	)
}

func TestFind(t *testing.T) {
	root := queryTree()

	if n := Find(root, ByClass("sitemap")); n == nil || n.Tag != "section" {
		t.Errorf("Find(sitemap) = %v", n)
	}
	if n := Find(root, ByAttr("target", "_blank")); n == nil || n.AttrString("href") != "/b" {
		t.Errorf("Find(target) = %v", n)
	}
	if n := Find(root, ByID("footer")); n != root {
		t.Errorf("Find(ByID) = %v, want root", n)
	}
	if n := Find(root, ByTag("img")); n != nil {
		t.Errorf("Find(img) = %v, want nil", n)
	}
}

func TestFindAllOrder(t *testing.T) {
	links := FindAll(queryTree(), ByTag("a"))

	if len(links) != 2 {
		t.Fatalf("len = %d, want 2", len(links))
	}
	if links[0].AttrString("href") != "/a" || links[1].AttrString("href") != "/b" {
		t.Errorf("links out of document order")
	}

	internal := FindAll(queryTree(), And(ByTag("a"), Not(HasAttr("target"))))
	if len(internal) != 1 {
		t.Errorf("internal links = %d, want 1", len(internal))
	}
}

func TestFindExpandsComponents(t *testing.T) {
	n := Find(queryTree(), ByClass("copyright"))
	if n == nil {
		t.Fatal("component output should be searchable")
	}
	if got := TextContent(n); got != "© Proj" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestTextContent(t *testing.T) {
	n := P(Text("a"), Strong(Text("b")), Raw("<i>x</i>"), Text("c"))
	if got := TextContent(n); got != "abc" {
		t.Errorf("TextContent = %q, want abc", got)
	}
	if got := TextContent(nil); got != "" {
		t.Errorf("TextContent(nil) = %q", got)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	visited := 0
	Walk(queryTree(), func(n *VNode) bool {
		visited++
		return n.Tag != "section"
	})
	// footer, sitemap section, copyright section
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}
