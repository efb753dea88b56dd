package uidoc

// Example is a single code example collected from a component's
// documentation page or its demo file in the source repository.
// Code is never empty; candidates that trim to nothing are dropped
// during collection.
type Example struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}
