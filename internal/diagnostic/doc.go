// Package diagnostic provides structured warnings and notices collected while
// building a zone mapping.
//
// Key capabilities:
//   - Duplicate Windows zone warnings (last row wins)
//   - "Etc/" fixed-offset zone notices for manual review
//   - Folding error diagnostics into a single error value
package diagnostic
