// Package diag defines the error model shared by the parser and the driver.
//
// Two kinds of failures exist:
//
//   - ParseError: the input does not match the grammar at some position.
//     It carries the byte offset, resolved line/column and the construct that
//     was expected there. A ParseError is terminal for its file: the driver
//     reports it, leaves the file unmodified and moves on.
//   - StructuralError: an accessor found a child slot of unexpected shape.
//     This signals a contract break between grammar and node model and is
//     raised as a panic, not returned: feeding the formatter a malformed tree
//     is a defect, not a recoverable condition.
//
// Rendering stays minimal on purpose; the CLI owns presentation.
package diag
