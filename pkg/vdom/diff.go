package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. An empty result means the trees are structurally identical.
// Neither tree is modified.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b *VNode) bool {
	return len(Diff(a, b)) == 0
}

// diff recursively compares nodes and appends patches.
func diff(prev, next *VNode, path string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	if prev == nil {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: path})
		return
	}

	// Different types - replace
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		return
	}

	switch prev.Kind {
	case KindText:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchSetText, Path: path, Value: next.Text})
		}
	case KindRaw:
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
		}
	case KindElement:
		if prev.Tag != next.Tag {
			*patches = append(*patches, Patch{Op: PatchReplaceNode, Path: path, Node: next})
			return
		}
		diffProps(prev, next, path, patches)
		diffChildren(prev.Children, next.Children, path, patches)
	case KindFragment:
		diffChildren(prev.Children, next.Children, path, patches)
	case KindComponent:
		var prevOut, nextOut *VNode
		if prev.Comp != nil {
			prevOut = prev.Comp.Render()
		}
		if next.Comp != nil {
			nextOut = next.Comp.Render()
		}
		diff(prevOut, nextOut, path, patches)
	}
}

// diffProps compares attributes. Keys are visited in sorted order so the
// patch list is deterministic.
func diffProps(prev, next *VNode, path string, patches *[]Patch) {
	for _, key := range sortedKeys(prev.Props) {
		nextVal, exists := next.Props[key]
		if !exists {
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, Path: path, Key: key})
		} else if !propsEqual(prev.Props[key], nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Path:  path,
				Key:   key,
				Value: propToString(nextVal),
			})
		}
	}

	for _, key := range sortedKeys(next.Props) {
		if _, exists := prev.Props[key]; !exists {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Path:  path,
				Key:   key,
				Value: propToString(next.Props[key]),
			})
		}
	}
}

// diffChildren compares child lists, keyed when any child carries a key.
func diffChildren(prev, next []*VNode, path string, patches *[]Patch) {
	if hasKeys(prev) || hasKeys(next) {
		diffKeyedChildren(prev, next, path, patches)
	} else {
		diffUnkeyedChildren(prev, next, path, patches)
	}
}

// diffUnkeyedChildren handles children without keys using positional matching.
func diffUnkeyedChildren(prev, next []*VNode, path string, patches *[]Patch) {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev) {
			prevChild = prev[i]
		}
		if i < len(next) {
			nextChild = next[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{Op: PatchInsertNode, Path: path, Index: i, Node: nextChild})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: childPath(path, i)})
		default:
			diff(prevChild, nextChild, childPath(path, i), patches)
		}
	}
}

// diffKeyedChildren matches children by key so reordering yields moves.
func diffKeyedChildren(prev, next []*VNode, path string, patches *[]Patch) {
	prevKeyMap := make(map[string]int, len(prev))
	for i, child := range prev {
		if key := getKey(child); key != "" {
			prevKeyMap[key] = i
		}
	}

	matched := make(map[int]bool)

	for nextIdx, nextChild := range next {
		key := getKey(nextChild)
		prevIdx, exists := prevKeyMap[key]
		if key == "" || !exists {
			*patches = append(*patches, Patch{Op: PatchInsertNode, Path: path, Index: nextIdx, Node: nextChild})
			continue
		}

		matched[prevIdx] = true
		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{Op: PatchMoveNode, Path: path, Key: key, Index: nextIdx})
		}
		diff(prev[prevIdx], nextChild, childPath(path, nextIdx), patches)
	}

	for i := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch{Op: PatchRemoveNode, Path: childPath(path, i)})
		}
	}
}

func childPath(parent string, index int) string {
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + "/" + strconv.Itoa(index)
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getKey extracts the reconciliation key of a node.
func getKey(node *VNode) string {
	if node == nil {
		return ""
	}
	return node.Key
}

// hasKeys returns true if any child has a key.
func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if getKey(child) != "" {
			return true
		}
	}
	return false
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// propToString converts a prop value to a string for the patch.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
