// Package services provides domain services for rules that span more than one
// aggregate of the scheduling domain.
//
// The package includes:
//   - AssignmentWorkflow: the Assign / Unassign / Finish state machine over Driver, Route and Schedule
package services
