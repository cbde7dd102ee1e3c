package types

import "strconv"

// Scope maps table/subquery identity to the alias chosen for one rendering
// pass. Scopes stack: a child scope is derived from its parent for nested
// subqueries and may shadow it. A scope handed to a child renderer must not
// be mutated afterwards; children allocate their own aliases.
type Scope struct {
	parent  *Scope
	names   map[Source]string
	counter *int
}

// NewScope creates the root scope for a top-level render pass.
func NewScope() *Scope {
	n := 0
	return &Scope{
		names:   make(map[Source]string),
		counter: &n,
	}
}

// Child derives a scope for a nested subquery. The alias counter is shared
// with the root so aliases never collide across nesting levels.
func (s *Scope) Child() *Scope {
	return &Scope{
		parent:  s,
		names:   make(map[Source]string),
		counter: s.counter,
	}
}

// Assign allocates an alias for a source in this scope, or returns the one
// already assigned here.
func (s *Scope) Assign(src Source) string {
	if name, ok := s.names[src]; ok {
		return name
	}
	*s.counter++
	name := "t" + strconv.Itoa(*s.counter)
	s.names[src] = name
	return name
}

// Lookup resolves a source to its alias, walking the scope chain from the
// innermost scope outward. Returns "" if the source is not in scope.
func (s *Scope) Lookup(src Source) string {
	for cur := s; cur != nil; cur = cur.parent {
		if name, ok := cur.names[src]; ok {
			return name
		}
	}
	return ""
}
