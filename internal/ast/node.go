// Package ast defines the uniform binary-node syntax tree produced by the
// parser and annotated in place by the semantic analyzer.
package ast

import "opusc/internal/token"

// Kind enumerates the closed set of AST node kinds.
type Kind uint8

const (
	Invalid Kind = iota
	Program
	CodeBlock
	ErrorNode
	Literal
	BooleanLiteral
	Identifier
	TypeAnnotation
	VariableDeclaration
	ConstantDeclaration
	Assignment
	Binary
	Unary
	Postfix
	FunctionCall
	Argument
	ArgumentLabel
	ArgumentList
	FunctionDefinition
	FunctionSignature
	FunctionImplementation
	Parameter
	ParameterLabel
	ParameterList
	FunctionReturnType
	ReturnStatement
	ConditionalStatement
	ConditionalBody
	RepeatUntilStatement
	ForInStatement
	ForInContext
)

var kindNames = map[Kind]string{
	Invalid:                "Invalid",
	Program:                "Program",
	CodeBlock:              "CodeBlock",
	ErrorNode:              "Error",
	Literal:                "Literal",
	BooleanLiteral:         "BooleanLiteral",
	Identifier:             "Identifier",
	TypeAnnotation:         "TypeAnnotation",
	VariableDeclaration:    "VariableDeclaration",
	ConstantDeclaration:    "ConstantDeclaration",
	Assignment:             "Assignment",
	Binary:                 "Binary",
	Unary:                  "Unary",
	Postfix:                "Postfix",
	FunctionCall:           "FunctionCall",
	Argument:               "Argument",
	ArgumentLabel:          "ArgumentLabel",
	ArgumentList:           "ArgumentList",
	FunctionDefinition:     "FunctionDefinition",
	FunctionSignature:      "FunctionSignature",
	FunctionImplementation: "FunctionImplementation",
	Parameter:              "Parameter",
	ParameterLabel:         "ParameterLabel",
	ParameterList:          "ParameterList",
	FunctionReturnType:     "FunctionReturnType",
	ReturnStatement:        "ReturnStatement",
	ConditionalStatement:   "ConditionalStatement",
	ConditionalBody:        "ConditionalBody",
	RepeatUntilStatement:   "RepeatUntilStatement",
	ForInStatement:         "ForInStatement",
	ForInContext:           "ForInContext",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// AnyType is the initial sentinel inferred-type, meaning "not yet analyzed"
//.
const AnyType = "Any"

// NodeID is a 1-based index into a tree's Arena; the zero value denotes the
// empty terminal node that ends a cons-cell chain.
type NodeID uint32

// Node is the uniform record every AST shape uses: statement, expression,
// or cons-cell list link is one of these, with Left/Right playing
// different roles depending on Kind.
type Node struct {
	Kind     Kind
	Anchor   token.Token
	Left     NodeID
	Right    NodeID
	Type     string
	Foldable bool
	Value    Value
}

// Tree owns the arena backing every node produced for one compilation unit.
type Tree struct {
	Nodes *Arena[Node]
	Root  NodeID
}

// NewTree creates an empty Tree with a pre-sized arena.
func NewTree(capHint uint) *Tree {
	return &Tree{Nodes: NewArena[Node](capHint)}
}

// New allocates a node of the given kind anchored at tok, with empty
// children and the initial "Any"/foldable sentinel.
func (t *Tree) New(kind Kind, tok token.Token) NodeID {
	return NodeID(t.Nodes.Allocate(Node{
		Kind:     kind,
		Anchor:   tok,
		Type:     AnyType,
		Foldable: true,
	}))
}

// Get returns a pointer to the node at id, or nil if id is the empty terminal.
func (t *Tree) Get(id NodeID) *Node {
	if id == 0 {
		return nil
	}
	return t.Nodes.Get(uint32(id))
}

// IsEmpty reports whether id is the terminal/empty node reference.
func (id NodeID) IsEmpty() bool { return id == 0 }
