// Package session holds the working state of one analysis session: the PFEP
// reference dataset, the current-inventory snapshot, their advisory lock
// flags and the selected tolerance.
//
// The session is an explicit value owned by the caller and passed to whoever
// needs it; the analysis engine itself only ever sees immutable snapshots
// taken from it. The lock flags are cooperative: a locked dataset rejects
// replacement until it is unlocked, freezing the data while dependent
// analyses run. An internal RWMutex makes the accessors safe under Fiber's
// concurrent handlers, but the advisory flag remains the user-visible
// contract; this is not a multi-tenant isolation scheme.
package session
