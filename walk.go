package huffcode

// walkLeaves performs a depth-first, left-before-right walk of the tree,
// calling fn once per leaf with the path from the root to that leaf.  The
// path buffer is shared across calls and only valid until fn returns.
//
// The walk uses an explicit stack, so its depth is bounded by the heap, not
// by the goroutine stack.
//
// A degenerate single-leaf tree is reported with the path "0", i.e. at
// depth 1.
//
func walkLeaves(t *Tree, fn func(leaf *Node, path []byte)) {
	if t.root.IsLeaf() {
		fn(t.root, []byte{'0'})
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// len(path) == len(stack)-1 at all times; the root has no bit.

	type stackItem struct {
		node *Node
		x    byte
	}

	stack := make([]stackItem, 0, 32)
	path := make([]byte, 0, 32)

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child})
			return
		}
		fn(child, path)
		path = path[:len(path)-1]
	}

	stack = append(stack, stackItem{node: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node, x := top.node, top.x
		top.x++
		switch x {
		case 0:
			processChild(node.left, '0')
		case 1:
			processChild(node.right, '1')
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
		}
	}
}
