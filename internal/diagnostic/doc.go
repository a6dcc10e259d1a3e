// Package diagnostic provides structured errors and warnings collected while
// checking a batch of struct definitions.
//
// Each diagnostic carries a stable code (e.g. "layout_overflow"), the struct
// and field it concerns, and a human-readable message, so a whole definitions
// file can be reported at once instead of stopping at the first problem.
package diagnostic
