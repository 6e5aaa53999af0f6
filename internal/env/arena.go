// Package env holds lexical environments. Scopes live in an arena and refer
// to their parent by index, so the scope tree has no ownership cycles.
package env

import (
	"fmt"
	"sort"

	"toylang/internal/types"
)

type ScopeID int

// NoScope is the parent of a root scope.
const NoScope ScopeID = -1

// ReturnKey binds the enclosing function's declared return type. It cannot
// collide with an identifier.
const ReturnKey = "$return"

type scope struct {
	parent ScopeID
	names  map[string]types.Type
	frozen bool
}

// Arena owns every scope of one compilation unit. A scope accepts bindings
// until a child is created from it; from then on it is read-only.
type Arena struct {
	scopes []scope
}

func NewArena() *Arena { return &Arena{} }

// New creates a scope under parent and freezes parent.
func (a *Arena) New(parent ScopeID) ScopeID {
	if parent != NoScope {
		a.at(parent).frozen = true
	}
	a.scopes = append(a.scopes, scope{parent: parent, names: map[string]types.Type{}})
	return ScopeID(len(a.scopes) - 1)
}

// Bind adds name to scope id. Binding into a frozen scope is a bug in the
// caller and panics.
func (a *Arena) Bind(id ScopeID, name string, t types.Type) {
	s := a.at(id)
	if s.frozen {
		panic(fmt.Sprintf("env: bind %q into frozen scope %d", name, id))
	}
	s.names[name] = t
}

// Lookup walks from id outward through parent links.
func (a *Arena) Lookup(id ScopeID, name string) (types.Type, bool) {
	for id != NoScope {
		s := a.at(id)
		if t, ok := s.names[name]; ok {
			return t, true
		}
		id = s.parent
	}
	return types.Type{}, false
}

func (a *Arena) LookupLocal(id ScopeID, name string) (types.Type, bool) {
	t, ok := a.at(id).names[name]
	return t, ok
}

func (a *Arena) Parent(id ScopeID) ScopeID { return a.at(id).parent }

func (a *Arena) Frozen(id ScopeID) bool { return a.at(id).frozen }

// Len is the number of scopes created so far.
func (a *Arena) Len() int { return len(a.scopes) }

// Names lists the bindings made directly in id, sorted.
func (a *Arena) Names(id ScopeID) []string {
	s := a.at(id)
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (a *Arena) at(id ScopeID) *scope {
	if id < 0 || int(id) >= len(a.scopes) {
		panic(fmt.Sprintf("env: invalid scope %d", id))
	}
	return &a.scopes[id]
}
