package sema

import (
	"fmt"

	"opusc/internal/diag"
	"opusc/internal/source"
	"opusc/internal/token"
)

// reportSema records an analyzer diagnostic in a single-line
// format: "[ERROR] <human message at location L:C>" — unlike the parser's
// two-line format, the location is baked directly into the message text.
func (a *Analyzer) reportSema(code diag.Code, anchor token.Token, msg string) {
	a.bag.Add(diag.NewError(diag.LayerSema, code, anchor.Span, anchor.Loc, msg))
}

func atLocation(loc source.LineCol) string {
	return fmt.Sprintf("at location %d:%d", loc.Line, loc.Col)
}

func redeclaredMessage(name string, anchor token.Token) string {
	return fmt.Sprintf("Redeclared symbol '%s' %s", name, atLocation(anchor.Loc))
}

func undeclaredMessage(name string, anchor token.Token) string {
	return fmt.Sprintf("Undeclared symbol '%s' %s", name, atLocation(anchor.Loc))
}

func immutableMessage(name string, anchor token.Token) string {
	return fmt.Sprintf("Cannot modify immutable symbol '%s' %s", name, atLocation(anchor.Loc))
}

func mismatchMessage(want, got string, anchor token.Token) string {
	return fmt.Sprintf("Type mismatch: expected '%s' but got '%s' %s", want, got, atLocation(anchor.Loc))
}

func operandMismatchMessage(op string, anchor token.Token) string {
	return fmt.Sprintf("Invalid operand type for '%s' %s", op, atLocation(anchor.Loc))
}

func invalidConditionMessage(anchor token.Token) string {
	return fmt.Sprintf("Condition must be 'Bool' %s", atLocation(anchor.Loc))
}
