package cst

// Kind identifies the concrete type of a node.
type Kind uint8

const (
	// KindInvalid indicates an erroneous node.
	KindInvalid Kind = iota
	// KindLeaf is a terminal token (keyword, identifier, number, string, operator).
	KindLeaf
	// KindDelimitedList is an alternating element/delimiter sequence.
	KindDelimitedList
	// KindParenthesized wraps content in brackets; the bracket slots are empty
	// when the construct carries no actual brackets.
	KindParenthesized
	// KindCall is an identifier with optional stacked argument lists.
	KindCall
	// KindArgumentsList is a parenthesized argument list of a call.
	KindArgumentsList
	// KindOutputArguments is the left-hand side of an assignment.
	KindOutputArguments
	// KindArray is a bracketed array or cell literal.
	KindArray
	// KindAnonymousFunction is an `@(...) expr` or `@name` literal.
	KindAnonymousFunction
	// KindOperation is a flat operand/operator chain; no precedence is modeled.
	KindOperation
	// KindSingleElementOperation is a unary prefix or postfix operation.
	KindSingleElementOperation
	// KindStatement is one statement: output arguments, body, semicolon slots.
	KindStatement
	// KindComment is a `%` comment running to end of line.
	KindComment
	// KindCommand is the bare command-syntax form (`import pkg.*`).
	KindCommand
	// KindCode is a sequence of statements/comments/blocks/commands.
	KindCode
	// KindFile is the root node of one source file.
	KindFile

	// Block kinds. All share the Block child shape.

	KindFunction
	KindIf
	KindForLoop
	KindWhileLoop
	KindTryCatch
	KindSwitch
	KindCase
	KindClassdef
	KindMethods
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindDelimitedList:
		return "DelimitedList"
	case KindParenthesized:
		return "Parenthesized"
	case KindCall:
		return "Call"
	case KindArgumentsList:
		return "ArgumentsList"
	case KindOutputArguments:
		return "OutputArguments"
	case KindArray:
		return "Array"
	case KindAnonymousFunction:
		return "AnonymousFunction"
	case KindOperation:
		return "Operation"
	case KindSingleElementOperation:
		return "SingleElementOperation"
	case KindStatement:
		return "Statement"
	case KindComment:
		return "Comment"
	case KindCommand:
		return "Command"
	case KindCode:
		return "Code"
	case KindFile:
		return "File"
	case KindFunction:
		return "Function"
	case KindIf:
		return "If"
	case KindForLoop:
		return "ForLoop"
	case KindWhileLoop:
		return "WhileLoop"
	case KindTryCatch:
		return "TryCatch"
	case KindSwitch:
		return "Switch"
	case KindCase:
		return "Case"
	case KindClassdef:
		return "Classdef"
	case KindMethods:
		return "Methods"
	}
	return "Invalid"
}

// IsBlock reports whether k is one of the block kinds.
func (k Kind) IsBlock() bool {
	switch k {
	case KindFunction, KindIf, KindForLoop, KindWhileLoop, KindTryCatch,
		KindSwitch, KindCase, KindClassdef, KindMethods:
		return true
	default:
		return false
	}
}

// IsConstruct reports whether k can stand on its own inside a Code sequence.
func (k Kind) IsConstruct() bool {
	return k == KindStatement || k == KindComment || k == KindCommand || k.IsBlock()
}

// ElementsListKinds are the kinds whose single child is a Parenthesized
// wrapping a DelimitedList of elements.
var ElementsListKinds = []Kind{KindArgumentsList, KindOutputArguments, KindArray}

// BlockKinds lists every block kind, for kind-filtered traversal.
var BlockKinds = []Kind{
	KindFunction, KindIf, KindForLoop, KindWhileLoop, KindTryCatch,
	KindSwitch, KindCase, KindClassdef, KindMethods,
}
