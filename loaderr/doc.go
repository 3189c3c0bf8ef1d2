// Package loaderr defines the structured failures a compiled extraction
// procedure can surface, plus the trail mechanism that attaches the path
// from the input root to the failure point.
//
// Every kind is a distinct error type matchable with errors.As. Trail
// decoration is purely additive metadata: wrapping an error in a trail
// never changes its kind.
package loaderr
