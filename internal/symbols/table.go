package symbols

import "opusc/internal/source"

// Table is the analyzer's scoped symbol table: a head-insert linked list
// plus a current-namespace counter. Entering a block
// increments the counter; exiting removes every symbol whose namespace
// equals the current counter, then decrements it (never below 0).
type Table struct {
	head      *Symbol
	namespace int
}

// NewTable creates an empty table at namespace 0.
func NewTable() *Table {
	return &Table{}
}

// Namespace returns the current scope level.
func (t *Table) Namespace() int { return t.namespace }

// Add inserts a new symbol at the head of the list, tagged with the current
// namespace. It does not check for redeclaration; callers must call
// DeclaredInCurrentNamespace first when that check matters.
func (t *Table) Add(identifier, typ string, mutable bool, loc source.LineCol) *Symbol {
	sym := &Symbol{
		Identifier:     identifier,
		Type:           typ,
		Namespace:      t.namespace,
		IsMutable:      mutable,
		DeclarationLoc: loc,
		next:           t.head,
	}
	t.head = sym
	return sym
}

// LookupGlobal walks the whole list and returns the first (most recent)
// symbol with the given identifier, regardless of namespace.
func (t *Table) LookupGlobal(identifier string) *Symbol {
	for s := t.head; s != nil; s = s.next {
		if s.Identifier == identifier {
			return s
		}
	}
	return nil
}

// LookupVisible returns the first symbol with the given identifier whose
// namespace is <= the current namespace — i.e. visible from here, since
// symbols of already-popped inner scopes have been removed on exit
//.
func (t *Table) LookupVisible(identifier string) *Symbol {
	for s := t.head; s != nil; s = s.next {
		if s.Identifier == identifier && s.Namespace <= t.namespace {
			return s
		}
	}
	return nil
}

// DeclaredInCurrentNamespace reports whether identifier is already declared
// at exactly the current namespace level (strict equality), used to detect
// re-declaration within the same scope.
func (t *Table) DeclaredInCurrentNamespace(identifier string) bool {
	for s := t.head; s != nil; s = s.next {
		if s.Namespace != t.namespace {
			continue
		}
		if s.Identifier == identifier {
			return true
		}
	}
	return false
}

// EnterNamespace opens a new nested scope.
func (t *Table) EnterNamespace() { t.namespace++ }

// ExitNamespace removes every symbol declared at the current namespace and
// pops back to the enclosing scope. It is a no-op past namespace 0.
func (t *Table) ExitNamespace() {
	for t.head != nil && t.head.Namespace == t.namespace {
		t.head = t.head.next
	}
	if t.namespace > 0 {
		t.namespace--
	}
}

// Free releases every symbol, returning the table to its initial state.
func (t *Table) Free() {
	t.head = nil
	t.namespace = 0
}

// All returns every live symbol, most-recently-declared first, for use by
// dump.go and tests. Callers must not mutate the returned slice's elements
// in a way that breaks list invariants.
func (t *Table) All() []*Symbol {
	var out []*Symbol
	for s := t.head; s != nil; s = s.next {
		out = append(out, s)
	}
	return out
}
