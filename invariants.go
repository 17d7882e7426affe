package ivtree

import "fmt"

// Check validates structural tree invariants.
//
// Trees created by Build always satisfy them; Check is meant to be used in
// tests and for debugging.
func (t *Tree[T, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInconsistentTree)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInconsistentTree)
	}
	owner := make([]int, len(t.records)) // number of center-sets a record is in
	if err := t.checkNode(t.root, nil, nil, owner); err != nil {
		return err
	}
	for r, cnt := range owner {
		if cnt != 1 {
			return fmt.Errorf("%w: interval #%d kept at %d nodes", ErrInconsistentTree, r, cnt)
		}
	}
	return t.checkEndpoints()
}

// checkNode validates n and its subtree. lower and upper, if non-nil, are the
// exclusive bounds all intervals of the subtree have to lie in.
func (t *Tree[T, V]) checkNode(n *node[T], lower, upper *T, owner []int) error {
	if len(n.byLeft) != len(n.byRight) {
		return fmt.Errorf("%w: node %v has center-sets of different size", ErrInconsistentTree, n.center)
	}
	for i, r := range n.byLeft {
		if int(r) < 0 || int(r) >= len(t.records) {
			return fmt.Errorf("%w: node %v references unknown interval #%d", ErrInconsistentTree, n.center, r)
		}
		iv := t.records[r]
		if !iv.Contains(n.center) {
			return fmt.Errorf("%w: interval %v does not straddle center %v", ErrInconsistentTree, iv, n.center)
		}
		if (lower != nil && !(iv.Left > *lower)) || (upper != nil && !(iv.Right < *upper)) {
			return fmt.Errorf("%w: interval %v kept outside of its partition", ErrInconsistentTree, iv)
		}
		if i > 0 && t.records[n.byLeft[i-1]].Left > iv.Left {
			return fmt.Errorf("%w: node %v not ordered by left endpoint", ErrInconsistentTree, n.center)
		}
		owner[r]++
	}
	for i := 1; i < len(n.byRight); i++ {
		if t.records[n.byRight[i-1]].Right < t.records[n.byRight[i]].Right {
			return fmt.Errorf("%w: node %v not ordered by right endpoint", ErrInconsistentTree, n.center)
		}
	}
	if n.left != nil {
		if !(n.left.center < n.center) {
			return fmt.Errorf("%w: left child %v not below center %v", ErrInconsistentTree, n.left.center, n.center)
		}
		if err := t.checkNode(n.left, lower, &n.center, owner); err != nil {
			return err
		}
	}
	if n.right != nil {
		if !(n.right.center > n.center) {
			return fmt.Errorf("%w: right child %v not above center %v", ErrInconsistentTree, n.right.center, n.center)
		}
		if err := t.checkNode(n.right, &n.center, upper, owner); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[T, V]) checkEndpoints() error {
	if len(t.endpoints) != 2*len(t.records) {
		return fmt.Errorf("%w: %d endpoints for %d intervals", ErrInconsistentTree,
			len(t.endpoints), len(t.records))
	}
	sides := make([]uint8, len(t.records))
	for i, ep := range t.endpoints {
		if i > 0 && t.endpoints[i-1].key > ep.key {
			return fmt.Errorf("%w: endpoint index not sorted at position %d", ErrInconsistentTree, i)
		}
		iv := t.records[ep.rec]
		switch {
		case ep.side == LeftEnd && ep.key == iv.Left:
			sides[ep.rec] |= 1
		case ep.side == RightEnd && ep.key == iv.Right:
			sides[ep.rec] |= 2
		default:
			return fmt.Errorf("%w: endpoint %v does not match interval %v", ErrInconsistentTree, ep.key, iv)
		}
	}
	for r, s := range sides {
		if s != 3 {
			return fmt.Errorf("%w: interval #%d lacks an endpoint", ErrInconsistentTree, r)
		}
	}
	return nil
}
