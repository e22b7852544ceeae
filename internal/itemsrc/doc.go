// Package itemsrc reads the plain-text item file shown in the carousel.
//
// # Format
//
// One item per line. Surrounding whitespace is trimmed, blank lines are
// skipped and lines starting with '#' are comments:
//
//	# cards
//	Inbox
//	Today
//	Someday
//
// # Reading
//
// Read keeps the last N items using a ring buffer, so a file that keeps
// growing is scanned in one pass with O(N) memory and the newest entries
// win. A missing file is not an error; it simply yields no items, which the
// carousel shows as an empty lane.
package itemsrc
