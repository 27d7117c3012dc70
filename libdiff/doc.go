// Package libdiff provides line diffs of rendered circuit documents.
package libdiff
