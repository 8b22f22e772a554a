// Package pkgerror defines the failure value shared by every request stage.
//
// A failure carries an optional HTTP status, an optional user-facing message,
// and an optional classifier code. Stages never render failures themselves;
// they return them and the router normalizes them into a single JSON error
// response at the edge.
package pkgerror
