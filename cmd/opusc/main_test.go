package main

import (
	"testing"

	"opusc/internal/diag"
	"opusc/internal/source"
)

func TestExitCodeForBagPrioritizesSyntaxErrors(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LayerSema, diag.SemaUndeclaredVariable, source.Span{}, source.LineCol{}, "undeclared"))
	bag.Add(diag.NewError(diag.LayerParser, diag.SynMissingIdentifier, source.Span{}, source.LineCol{}, "missing identifier"))

	if got := exitCodeForBag(bag); got != exitSyntaxError {
		t.Fatalf("got exit code %d, want %d", got, exitSyntaxError)
	}
}

func TestExitCodeForBagFallsBackToSema(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LayerSema, diag.SemaUndeclaredVariable, source.Span{}, source.LineCol{}, "undeclared"))

	if got := exitCodeForBag(bag); got != exitSemaError {
		t.Fatalf("got exit code %d, want %d", got, exitSemaError)
	}
}
