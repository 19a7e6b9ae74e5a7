// Package service defines domain-level service contracts implemented
// by the infra layer.
package service

// Notifier is the user-facing notification surface. Every component
// operation resolves its own outcome and reports it here; nothing is
// surfaced by propagating a panic or an unhandled error to the UI.
type Notifier interface {
	Success(message string)
	Error(message string)
}
