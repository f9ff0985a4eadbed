// Package arrowspacing implements the arrow-spacing rule: it enforces
// consistent whitespace before and after the "=>" of arrow functions and
// offers a whitespace fix for every violation.
//
// Per construct the rule locates the arrow and its significant neighbors,
// measures the two gaps in bytes, evaluates them against Options and reports
// one diagnostic per violated side. Comments between a neighbor and the arrow
// count as spacing; removing spacing removes the whole gap.
package arrowspacing
