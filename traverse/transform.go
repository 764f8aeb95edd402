package traverse

// TransformChildren rewrites a child list one item at a time, letting
// f turn each item into zero, one, or several replacements — deletion,
// identity, and splicing are all the same operation. It is the direct
// generic counterpart of the original implementation's
// transform_children! macro (original_source/parser/src/transform
// /visit_mut.rs), which drains a Vec, flat_maps a per-kind visit_*_mut
// method over it, and extends the list back in. Go's single generic
// parameter covers every child-list shape the category-specific
// visit_*_mut methods existed only to thread that Vec through: resolve
// calls this directly on whichever child list a pass needs to rewrite
// (substitution expansion, footnote label assignment, and so on)
// instead of routing through a mega-interface with one method per
// node kind.
func TransformChildren[C any](items []C, f func(C) []C) []C {
	out := make([]C, 0, len(items))
	for _, item := range items {
		out = append(out, f(item)...)
	}
	return out
}
