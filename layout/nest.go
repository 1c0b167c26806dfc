package layout

import "github.com/tsawler/pagedown/model"

// nestFrame is one entry of the indent stack: the source indent level a
// list item was classified with, and whether the item was numbered.
type nestFrame struct {
	indent   int
	numbered bool
}

// ListNester resolves the source indent levels of list items into nesting
// depths using a depth stack. Lists never span unrelated content: any
// non-list element clears the stack.
type ListNester struct{}

// NewListNester creates a list nester.
func NewListNester() *ListNester {
	return &ListNester{}
}

// Resolve rewrites each list element's Indent from its raw source level to
// its resolved nesting depth. Elements are returned in the same order.
func (n *ListNester) Resolve(elements []model.Element) []model.Element {
	var stack []nestFrame

	out := make([]model.Element, len(elements))
	for i, el := range elements {
		if !el.Type.IsListItem() {
			stack = stack[:0]
			out[i] = el
			continue
		}

		numbered := el.Type == model.ElementTypeNumberedListItem

		// Pop frames at or beyond this item's source indent; the item
		// nests under whatever remains.
		for len(stack) > 0 && stack[len(stack)-1].indent >= el.Indent {
			stack = stack[:len(stack)-1]
		}

		depth := len(stack)
		stack = append(stack, nestFrame{indent: el.Indent, numbered: numbered})

		el.Indent = depth
		out[i] = el
	}

	return out
}
