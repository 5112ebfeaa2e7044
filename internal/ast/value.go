package ast

// Value holds a folded constant, tagged by which field is meaningful. Only
// one of the typed fields is populated at a time, matching the node's Type
// string ("Int", "Float", "Bool", "String").
type Value struct {
	Int    int64
	Float  float64
	Bool   bool
	String string
}

// IntValue builds a folded integer Value.
func IntValue(v int64) Value { return Value{Int: v} }

// FloatValue builds a folded floating-point Value.
func FloatValue(v float64) Value { return Value{Float: v} }

// BoolValue builds a folded boolean Value.
func BoolValue(v bool) Value { return Value{Bool: v} }

// StringValue builds a folded string Value.
func StringValue(v string) Value { return Value{String: v} }
