package el

import (
	"reflect"
	"testing"

	"github.com/scalameta/docsite/pkg/vdom"
)

var (
	_ vdom.VNode     = VNode{}
	_ vdom.VKind     = VKind(0)
	_ vdom.Props     = Props{}
	_ vdom.Attr      = Attr{}
	_ vdom.Component = Component(nil)
)

func TestElementConstructorsMatchVDOM(t *testing.T) {
	args := []any{
		vdom.ID("root"),
		vdom.Class("one", "two"),
		vdom.Hidden(),
		"hello",
		vdom.Span("child"),
	}

	got := Div(args...)
	want := vdom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  *VNode
		want *vdom.VNode
	}{
		{"footer", Footer("x"), vdom.Footer("x")},
		{"section", Section(Class("sitemap")), vdom.Section(vdom.Class("sitemap"))},
		{"h5", H5("Docs"), vdom.H5("Docs")},
		{"img", Img(Src("/a.png"), Width(66)), vdom.Img(vdom.Src("/a.png"), vdom.Width(66))},
		{"custom", CustomElement("docs-nav"), vdom.CustomElement("docs-nav")},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s element mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestAttributeHelpersMatchVDOM(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want vdom.Attr
	}{
		{"href", Href("/docs/"), vdom.Href("/docs/")},
		{"target", Target("_blank"), vdom.Target("_blank")},
		{"rel", Rel("noopener"), vdom.Rel("noopener")},
		{"alt", Alt("Proj"), vdom.Alt("Proj")},
		{"height", Height(58), vdom.Height(58)},
		{"styles", Styles(map[string]string{"color": "red"}), vdom.Styles(map[string]string{"color": "red"})},
		{"class if", ClassIf(false, "x"), vdom.ClassIf(false, "x")},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Errorf("%s mismatch: got %#v, want %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Fatalf("IsVoidElement(\"br\") expected true")
	}
	if IsVoidElement("div") {
		t.Fatalf("IsVoidElement(\"div\") expected false")
	}
}

func TestTextHelpersMatchVDOM(t *testing.T) {
	if !reflect.DeepEqual(Text("hi"), vdom.Text("hi")) {
		t.Fatalf("Text() mismatch")
	}
	if !reflect.DeepEqual(Textf("hi %d", 2), vdom.Textf("hi %d", 2)) {
		t.Fatalf("Textf() mismatch")
	}
	if !reflect.DeepEqual(Raw("<b>hi</b>"), vdom.Raw("<b>hi</b>")) {
		t.Fatalf("Raw() mismatch")
	}
}

func TestFragmentHelpersMatchVDOM(t *testing.T) {
	args := []any{
		nil,
		"hello",
		vdom.Div("child"),
		[]*vdom.VNode{vdom.Span("nested")},
	}

	got := Fragment(args...)
	want := vdom.Fragment(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fragment() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestConditionalHelpers(t *testing.T) {
	node := Text("ok")

	if If(true, node) != node {
		t.Fatalf("If(true) should return node")
	}
	if If(false, node) != nil {
		t.Fatalf("If(false) should return nil")
	}
	if Unless(false, node) != node {
		t.Fatalf("Unless(false) should return node")
	}
	if Unless(true, node) != nil {
		t.Fatalf("Unless(true) should return nil")
	}

	calls := 0
	result := When(false, func() *VNode {
		calls++
		return node
	})
	if result != nil || calls != 0 {
		t.Fatalf("When(false) should not call fn")
	}
	result = When(true, func() *VNode {
		calls++
		return node
	})
	if result != node || calls != 1 {
		t.Fatalf("When(true) should call fn once")
	}
}

func TestRangeAndFunc(t *testing.T) {
	items := []string{"a", "b"}
	nodes := Range(items, func(s string, i int) *VNode {
		return Li(Key(s), Text(s))
	})
	if len(nodes) != 2 || nodes[1].Key != "b" {
		t.Fatalf("Range() = %#v", nodes)
	}

	comp := Func(func() *VNode { return Span("x") })
	if got := comp.Render(); got.Tag != "span" {
		t.Fatalf("Func().Render() tag = %q", got.Tag)
	}
}
