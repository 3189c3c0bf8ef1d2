// Package diagnostic provides structured problem reports for layout
// validation: every issue found in one pass, each with a stable code
// and the crown path it concerns, instead of a bail-out on the first
// mistake.
package diagnostic
