// Package state implements the State pattern over an article workflow:
// the Article delegates Submit, Approve and Reject to its current state
// object, so each state owns exactly the transitions legal from it and no
// method needs a status switch.
//
// Workflow:
//
//	draft --Submit--> in_review --Approve--> published
//	                  in_review --Reject---> draft
//
// Every other move returns ErrInvalidTransition, wrapped with the current
// status and the attempted action. Published is terminal.
package state
