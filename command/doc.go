// Package command implements the Command pattern over a text Buffer:
// edits are reified as Command objects that know how to apply and revert
// themselves, and a History invoker executes them and unwinds them in LIFO
// order.
//
// What:
//
//   - Buffer: the receiver, a plain append/truncate text holder
//   - Command: Execute / Undo / Name
//   - Insert, Delete: the shipped edit commands
//   - History: Do(cmd) executes and records; UndoLast() reverts the most
//     recent recorded command
//
// Errors:
//
//   - ErrNothingToUndo  UndoLast on an empty history
//   - ErrDeleteTooLong  Delete longer than the buffer content
//
// A command that fails to execute is not recorded, so the history only ever
// contains edits that really happened.
package command
