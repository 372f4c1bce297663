package vdom

import (
	"encoding/json"
	"testing"
)

func TestDiffBothNil(t *testing.T) {
	if patches := Diff(nil, nil); len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffNodeRemoved(t *testing.T) {
	patches := Diff(Div(), nil)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveNode {
		t.Errorf("Op = %v, want RemoveNode", patches[0].Op)
	}
}

func TestDiffIdentical(t *testing.T) {
	build := func() *VNode {
		return Div(Class("x"), Img(Src("/a.png"), Width(66)), Text("hi"))
	}
	if !Equal(build(), build()) {
		t.Errorf("identical trees should be Equal: %v", Diff(build(), build()))
	}
}

func TestDiffTextChange(t *testing.T) {
	patches := Diff(Div(Text("Hello")), Div(Text("World")))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetText || p.Path != "0" || p.Value != "World" {
		t.Errorf("patch = %s", p)
	}
}

func TestDiffAttrs(t *testing.T) {
	prev := A(Href("/a"), Target("_blank"))
	next := A(Href("/b"), Rel("noopener"))

	patches := Diff(prev, next)
	if len(patches) != 3 {
		t.Fatalf("Expected 3 patches, got %v", patches)
	}
	if patches[0].Op != PatchSetAttr || patches[0].Key != "href" || patches[0].Value != "/b" {
		t.Errorf("patches[0] = %s", patches[0])
	}
	if patches[1].Op != PatchRemoveAttr || patches[1].Key != "target" {
		t.Errorf("patches[1] = %s", patches[1])
	}
	if patches[2].Op != PatchSetAttr || patches[2].Key != "rel" {
		t.Errorf("patches[2] = %s", patches[2])
	}
}

func TestDiffTagAndKindChange(t *testing.T) {
	if p := Diff(Div(), Span()); len(p) != 1 || p[0].Op != PatchReplaceNode {
		t.Errorf("tag change = %v", p)
	}
	if p := Diff(Div(), Text("x")); len(p) != 1 || p[0].Op != PatchReplaceNode {
		t.Errorf("kind change = %v", p)
	}
}

func TestDiffChildrenInsertRemove(t *testing.T) {
	patches := Diff(Div(P(), P()), Div(P()))
	if len(patches) != 1 || patches[0].Op != PatchRemoveNode || patches[0].Path != "1" {
		t.Errorf("remove = %v", patches)
	}

	patches = Diff(Section(Div()), Section(Div(), A(Href("/"), Img())))
	if len(patches) != 1 || patches[0].Op != PatchInsertNode || patches[0].Index != 1 {
		t.Errorf("insert = %v", patches)
	}
}

func TestDiffNestedPath(t *testing.T) {
	prev := Footer(Section(Div(A(Href("/x")))))
	next := Footer(Section(Div(A(Href("/y")))))

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %v", patches)
	}
	if patches[0].Path != "0/0/0" {
		t.Errorf("Path = %q, want 0/0/0", patches[0].Path)
	}
}

func TestDiffKeyedMove(t *testing.T) {
	prev := Ul(Li(Key("a"), Text("A")), Li(Key("b"), Text("B")))
	next := Ul(Li(Key("b"), Text("B")), Li(Key("a"), Text("A")))

	patches := Diff(prev, next)
	moves := 0
	for _, p := range patches {
		if p.Op == PatchMoveNode {
			moves++
		}
		if p.Op == PatchSetText {
			t.Errorf("keyed reorder should not change text: %s", p)
		}
	}
	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
}

func TestDiffComponents(t *testing.T) {
	mk := func(s string) *VNode {
		return Div(Func(func() *VNode { return Span(Text(s)) }))
	}
	if p := Diff(mk("a"), mk("a")); len(p) != 0 {
		t.Errorf("equal components = %v", p)
	}
	if p := Diff(mk("a"), mk("b")); len(p) != 1 || p[0].Op != PatchSetText {
		t.Errorf("changed component = %v", p)
	}
}

func TestKindJSON(t *testing.T) {
	node := Expand(Div(Class("c"), Func(func() *VNode { return Text("t") })))

	data, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"kind":"Element","tag":"div","props":{"class":"c"},"children":[{"kind":"Text","text":"t"}]}`
	if string(data) != want {
		t.Errorf("got %s\nwant %s", data, want)
	}

	var back VNode
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !Equal(node, &back) {
		t.Errorf("round trip differs: %v", Diff(node, &back))
	}

	var k VKind
	if err := k.UnmarshalText([]byte("Bogus")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
