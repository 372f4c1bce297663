package vdom

import "fmt"

// MarshalText encodes the kind by name, so JSON trees read "kind":"Element".
func (k VKind) MarshalText() ([]byte, error) {
	s := k.String()
	if s == "Unknown" {
		return nil, fmt.Errorf("vdom: cannot encode node kind %d", uint8(k))
	}
	return []byte(s), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *VKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Element":
		*k = KindElement
	case "Text":
		*k = KindText
	case "Fragment":
		*k = KindFragment
	case "Component":
		*k = KindComponent
	case "Raw":
		*k = KindRaw
	default:
		return fmt.Errorf("vdom: unknown node kind %q", text)
	}
	return nil
}

// Expand returns a deep copy of node with every Component node replaced by
// its rendered output. The result carries no Comp values and can be encoded
// as JSON without losing content.
func Expand(node *VNode) *VNode {
	if node == nil {
		return nil
	}
	if node.Kind == KindComponent {
		if node.Comp == nil {
			return nil
		}
		return Expand(node.Comp.Render())
	}

	out := &VNode{
		Kind: node.Kind,
		Tag:  node.Tag,
		Key:  node.Key,
		Text: node.Text,
	}
	if node.Props != nil {
		out.Props = make(Props, len(node.Props))
		for k, v := range node.Props {
			out.Props[k] = v
		}
	}
	if len(node.Children) > 0 {
		out.Children = make([]*VNode, 0, len(node.Children))
		for _, child := range node.Children {
			if c := Expand(child); c != nil {
				out.Children = append(out.Children, c)
			}
		}
	}
	return out
}
