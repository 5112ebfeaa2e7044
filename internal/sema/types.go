// Package sema implements the semantic analyzer: name resolution, type
// inference and checking, constant folding, and dead-branch elimination.
package sema

// The five-member type lattice used throughout analysis.
const (
	TypeAny    = "Any"
	TypeInt    = "Int"
	TypeFloat  = "Float"
	TypeBool   = "Bool"
	TypeString = "String"
)

func isNumeric(t string) bool {
	return t == TypeInt || t == TypeFloat
}
