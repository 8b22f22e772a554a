// Package pkgroutine contains helpers for running background work safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics with the task name so that background work such as blog event
// publishing does not crash the process silently.
package pkgroutine
