// Package memory holds process-local implementations of the repository
// ports. They back the "memory" storage mode and the service and handler
// tests. Every repository guards its state with a single mutex, so the
// uniqueness checks they perform are atomic with the write that follows.
package memory
