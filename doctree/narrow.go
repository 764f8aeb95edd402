package doctree

// Narrow attempts to view a StructuralSubElement as the narrower
// BodyElement category, succeeding only when the underlying concrete
// kind is itself a BodyElement (i.e. it arrived via the SubStructure
// variant). Mirrors the partial TryFrom<&StructuralSubElement> for
// &BodyElement impl in element_categories.rs.
func Narrow(n StructuralSubElement) (BodyElement, bool) {
	be, ok := n.(BodyElement)
	return be, ok
}

// NarrowSubStructure is the SubStructure -> BodyElement half of the
// same partial narrowing.
func NarrowSubStructure(n SubStructure) (BodyElement, bool) {
	be, ok := n.(BodyElement)
	return be, ok
}
