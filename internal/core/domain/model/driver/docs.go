// Package driver provides the Driver aggregate: an operator who can hold at most
// one active route at a time.
//
// Key business rules:
//   - Name is trimmed and must be 2 to 50 characters long
//   - License type is one of A, B, C, D
//   - Availability is false exactly while the driver is committed to an active schedule;
//     only Reserve and Release change it, and only the assignment workflow calls them
package driver
