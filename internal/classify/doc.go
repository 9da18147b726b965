// Package classify maps file names to category labels by extension.
//
// The category table is fixed and ordered; lookups are pure string work so
// the planner can classify thousands of entries without touching the
// filesystem. Anything the table does not claim lands in the fallback
// category.
package classify
