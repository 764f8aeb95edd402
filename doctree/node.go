// Package doctree implements the closed algebra of rST document tree node
// kinds: common and extra attribute bundles, the category sum types that
// constrain where a kind may appear, and the child-list plumbing every
// kind exposes uniformly.
package doctree

// Node is satisfied by every concrete element kind. It exposes the
// common attributes every element carries per the docutils model:
// ids, names, dupnames, source and classes.
type Node interface {
	Kind() Kind
	IDs() []string
	SetIDs(ids []string)
	Names() []string
	SetNames(names []string)
	DupNames() []string
	SetDupNames(names []string)
	Source() string
	SetSource(source string)
	Classes() []string
	SetClasses(classes []string)
}

// Common holds the attributes shared by every element kind. Concrete
// kinds embed it by value and inherit Node's accessor methods for free
// through Go's method promotion, the same way the teacher's element
// kinds all get their common fields from one embedded struct.
type Common struct {
	ids      []string
	names    []string
	dupnames []string
	source   string
	classes  []string
}

func (c *Common) IDs() []string           { return c.ids }
func (c *Common) SetIDs(ids []string)     { c.ids = ids }
func (c *Common) Names() []string         { return c.names }
func (c *Common) SetNames(names []string) { c.names = names }
func (c *Common) DupNames() []string      { return c.dupnames }
func (c *Common) SetDupNames(names []string) { c.dupnames = names }
func (c *Common) Source() string          { return c.source }
func (c *Common) SetSource(source string) { c.source = source }
func (c *Common) Classes() []string       { return c.classes }
func (c *Common) SetClasses(classes []string) { c.classes = classes }

// AddID appends an identifier, keeping ids unique and ordered as spec.md
// invariant 2 requires once resolution has run.
func (c *Common) AddID(id string) {
	for _, existing := range c.ids {
		if existing == id {
			return
		}
	}
	c.ids = append(c.ids, id)
}

// AddName appends a name, ignoring one this element already carries.
// It only sees this element's own names: a collision with a name on
// another element is not detected, and nothing is moved to dupnames.
func (c *Common) AddName(name string) {
	for _, existing := range c.names {
		if existing == name {
			return
		}
	}
	c.names = append(c.names, name)
}

// Children is embedded by every kind that owns an ordered list of a
// fixed child category C. It gives every such kind identical
// with_children/children/children_mut/append_child semantics without
// repeating them per kind, the Go analog of the teacher-corpus's macro
// generated impls.
type Children[C any] struct {
	items []C
}

// WithChildren returns a Children populated from items, mirroring the
// with_children construction contract from spec.md 4.A.
func WithChildren[C any](items []C) Children[C] {
	return Children[C]{items: items}
}

func (c *Children[C]) ChildList() []C          { return c.items }
func (c *Children[C]) SetChildren(items []C)   { c.items = items }
func (c *Children[C]) AppendChild(item C)      { c.items = append(c.items, item) }
func (c *Children[C]) Len() int                { return len(c.items) }

// Extra is embedded by kinds that carry a kind-specific attribute
// bundle (Image, Target, Reference, Footnote, ...). Its accessor is
// named Attr rather than Extra to avoid colliding with the promoted
// field name Go gives the embedded Extra[A] itself.
type Extra[A any] struct {
	attr A
}

func WithExtra[A any](a A) Extra[A] {
	return Extra[A]{attr: a}
}

func (e *Extra[A]) Attr() *A { return &e.attr }
