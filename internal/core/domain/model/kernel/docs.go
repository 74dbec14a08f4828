// Package kernel provides the domain primitives shared by the driver, route and
// schedule aggregates. Currently that is UUID, the identifier value object
// every entity uses. Values are immutable and safe for concurrent use.
package kernel
