// Package plan turns a scanned inventory into an ordered move plan and
// renders it for review.
//
// Building is pure: destinations are computed from the root, the category
// table, and basenames alone, so a dry run can never mutate anything. Two
// sources funneling onto one destination abort the whole plan with a
// CollisionError; the planner refuses to pick a winner.
package plan
