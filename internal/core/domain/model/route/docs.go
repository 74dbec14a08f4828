// Package route provides the Route aggregate, a transport route that is
// assigned to at most one driver at a time.
//
// Route status state machine:
//
//	Unassigned ──Assign──> Assigned ──Complete──> Completed
//	     ^                    │
//	     └──────Unassign──────┘
//
// Completed is terminal. Status is changed only by the assignment workflow;
// attribute updates never touch it.
package route
