// Package schedule provides the Schedule aggregate, the record binding one
// driver to one route.
//
// A schedule is created active by the assignment workflow and leaves the
// active state exactly once, either cancelled (unassign) or completed
// (finish). Its driver and route references never change. Every state change
// records an Event that is published after the surrounding transaction commits.
package schedule
