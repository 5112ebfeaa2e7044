package symbols

import (
	"testing"

	"opusc/internal/source"
)

func TestAddAndLookupGlobal(t *testing.T) {
	tbl := NewTable()
	tbl.Add("x", "Int", true, source.LineCol{Line: 1, Col: 1})

	sym := tbl.LookupGlobal("x")
	if sym == nil {
		t.Fatalf("expected to find x")
	}
	if sym.Type != "Int" || !sym.IsMutable {
		t.Fatalf("unexpected symbol: %+v", sym)
	}
	if tbl.LookupGlobal("missing") != nil {
		t.Fatalf("expected nil for undeclared identifier")
	}
}

func TestNamespaceVisibilityAfterExit(t *testing.T) {
	tbl := NewTable()
	tbl.Add("outer", "Int", true, source.LineCol{})

	tbl.EnterNamespace()
	tbl.Add("inner", "Int", true, source.LineCol{})

	if tbl.LookupVisible("inner") == nil {
		t.Fatalf("inner should be visible inside its own namespace")
	}
	if tbl.LookupVisible("outer") == nil {
		t.Fatalf("outer should be visible inside the nested namespace")
	}

	tbl.ExitNamespace()

	if tbl.LookupVisible("inner") != nil {
		t.Fatalf("inner should not be visible after its namespace exits")
	}
	if tbl.LookupVisible("outer") == nil {
		t.Fatalf("outer should remain visible after the nested namespace exits")
	}
}

func TestExitNamespaceNeverGoesNegative(t *testing.T) {
	tbl := NewTable()
	tbl.ExitNamespace()
	tbl.ExitNamespace()
	if tbl.Namespace() != 0 {
		t.Fatalf("Namespace() = %d, want 0", tbl.Namespace())
	}
}

func TestDeclaredInCurrentNamespaceIsStrict(t *testing.T) {
	tbl := NewTable()
	tbl.Add("x", "Int", true, source.LineCol{})
	tbl.EnterNamespace()

	if tbl.DeclaredInCurrentNamespace("x") {
		t.Fatalf("x was declared in the outer namespace, not the current one")
	}

	tbl.Add("x", "Int", true, source.LineCol{})
	if !tbl.DeclaredInCurrentNamespace("x") {
		t.Fatalf("x should now be declared in the current namespace")
	}
}

func TestFreeResetsTable(t *testing.T) {
	tbl := NewTable()
	tbl.Add("x", "Int", true, source.LineCol{})
	tbl.EnterNamespace()
	tbl.Free()

	if tbl.Namespace() != 0 {
		t.Fatalf("Namespace() after Free() = %d, want 0", tbl.Namespace())
	}
	if tbl.LookupGlobal("x") != nil {
		t.Fatalf("expected empty table after Free()")
	}
}
