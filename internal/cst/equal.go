package cst

// Equal compares two children structurally: Text slots by content, Leafs by
// value, composites by kind and per-slot recursion. Used for verification
// (determinism checks, tests), never by the formatter itself.
func Equal(a, b Child) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case *Leaf:
		bv, ok := b.(*Leaf)
		return ok && av.Value == bv.Value
	case Node:
		bv, ok := b.(Node)
		if !ok || av.Kind() != bv.Kind() {
			return false
		}
		ac, bc := av.Children(), bv.Children()
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !Equal(ac[i], bc[i]) {
				return false
			}
		}
		return true
	}
	return false
}
