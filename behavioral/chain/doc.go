// Package chain demonstrates the Chain of Responsibility pattern.
//
// A request (here a *User order record) travels along a chain of
// departments. Each department handles its own step and passes the record
// to its successor; the chain ends at a department with no successor.
//
// Every handler is idempotent: it checks whether its step is already done
// and, if so, writes an "already" line instead of applying the effect
// again. Running the same chain twice therefore leaves the record unchanged
// on the second pass.
//
// New steps are added by writing another Department and linking it in;
// existing departments do not change.
package chain
