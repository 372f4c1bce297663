package vdom

import "fmt"

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node to new position
	PatchReplaceNode PatchOp = 0x07 // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single change between two trees.
//
// Path addresses the affected node as slash-separated child indices from
// the root ("" is the root itself, "0/2" the third child of the first
// child). For InsertNode and MoveNode, Path is the parent and Index the
// position among its children.
type Patch struct {
	Op    PatchOp
	Path  string
	Key   string // Attribute key (for SetAttr/RemoveAttr)
	Value string // New value
	Node  *VNode // For InsertNode/ReplaceNode
	Index int    // Insert/move position
}

// String renders the patch for logs.
func (p Patch) String() string {
	switch p.Op {
	case PatchSetAttr:
		return fmt.Sprintf("%s /%s %s=%q", p.Op, p.Path, p.Key, p.Value)
	case PatchRemoveAttr:
		return fmt.Sprintf("%s /%s %s", p.Op, p.Path, p.Key)
	case PatchSetText:
		return fmt.Sprintf("%s /%s %q", p.Op, p.Path, p.Value)
	case PatchInsertNode, PatchMoveNode:
		return fmt.Sprintf("%s /%s [%d]", p.Op, p.Path, p.Index)
	default:
		return fmt.Sprintf("%s /%s", p.Op, p.Path)
	}
}
