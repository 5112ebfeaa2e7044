package diag

// Code identifies the precise kind of a diagnostic, grouped by compiler
// layer via 1000/2000/3000/9000 banding: lexer, parser, analyzer, host.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexer-level. 1001-1006 mirror the token-level sub-kinds carried on the
	// token itself (token.ErrorKind); 1007-1009 cover stream-level
	// unclosed-bracket errors reported at EOF.
	LexMalformedNumeric   Code = 1001
	LexUndefinedOperator  Code = 1002
	LexOverflow           Code = 1003
	LexOrphanUnderscore   Code = 1004
	LexUnterminatedString Code = 1005
	LexUnrecognizable     Code = 1006
	LexUnclosedRound      Code = 1007
	LexUnclosedCurly      Code = 1008
	LexUnclosedSquare     Code = 1009

	// Parser-level.
	SynMissingIdentifier       Code = 2001
	SynMissingTypeAnnotation   Code = 2002
	SynMissingTypeName         Code = 2003
	SynMissingDelimiter        Code = 2004
	SynDeclarationSyntax       Code = 2005
	SynMissingRightValue       Code = 2006
	SynMissingArgumentLabel    Code = 2007
	SynMissingParameterLabel   Code = 2008
	SynMissingColonAfterLabel  Code = 2009
	SynMissingFunctionName     Code = 2010
	SynMissingOpeningBracket   Code = 2011
	SynMissingRightArrow       Code = 2012
	SynMissingReturnType       Code = 2013
	SynMissingOpeningCurly     Code = 2014
	SynMissingUntilCondition   Code = 2015
	SynMissingInStatement      Code = 2016
	SynMissingCondition        Code = 2017
	SynMissingOperand          Code = 2018
	SynMissingArgument         Code = 2019
	SynUnresolvable            Code = 2020

	// Analyzer-level.
	SemaUndeclaredVariable      Code = 3001
	SemaRedeclaredVariable      Code = 3002
	SemaImmutableModification   Code = 3003
	SemaOperationTypeMismatch   Code = 3004
	SemaInvalidCondition        Code = 3005

	// Host-level: not source-position diagnostics, but
	// carried through the same type for uniform CLI handling.
	HostBadExtension Code = 9001
	HostIOFailure     Code = 9002
)

var codeNames = map[Code]string{
	LexMalformedNumeric:        "MalformedNumeric",
	LexUndefinedOperator:       "UndefinedOperator",
	LexOverflow:                "Overflow",
	LexOrphanUnderscore:        "OrphanUnderscore",
	LexUnterminatedString:      "UnterminatedString",
	LexUnrecognizable:          "Unrecognizable",
	LexUnclosedRound:           "UnclosedRoundBracket",
	LexUnclosedCurly:           "UnclosedCurlyBracket",
	LexUnclosedSquare:          "UnclosedSquareBracket",
	SynMissingIdentifier:       "missing-identifier",
	SynMissingTypeAnnotation:   "missing-type-annotation",
	SynMissingTypeName:         "missing-type-name",
	SynMissingDelimiter:        "missing-delimiter",
	SynDeclarationSyntax:       "declaration-syntax",
	SynMissingRightValue:       "missing-right-value",
	SynMissingArgumentLabel:    "missing-argument-label",
	SynMissingParameterLabel:   "missing-parameter-label",
	SynMissingColonAfterLabel:  "missing-colon-after-label",
	SynMissingFunctionName:     "missing-function-name",
	SynMissingOpeningBracket:   "missing-opening-bracket",
	SynMissingRightArrow:       "missing-right-arrow",
	SynMissingReturnType:       "missing-return-type",
	SynMissingOpeningCurly:     "missing-opening-curly-bracket",
	SynMissingUntilCondition:   "missing-until-condition",
	SynMissingInStatement:      "missing-in-statement",
	SynMissingCondition:        "missing-condition",
	SynMissingOperand:          "missing-operand",
	SynMissingArgument:         "missing-argument",
	SynUnresolvable:            "unresolvable",
	SemaUndeclaredVariable:     "undeclared-variable",
	SemaRedeclaredVariable:     "redeclared-variable",
	SemaImmutableModification:  "immutable-modification",
	SemaOperationTypeMismatch:  "operation-type-mismatch",
	SemaInvalidCondition:       "invalid-condition",
	HostBadExtension:           "not-the-source-code",
	HostIOFailure:              "io-failure",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}
