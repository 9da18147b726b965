// Package preflight provides readiness checks for the filesystem paths and
// configuration the organizer depends on.
//
// The CLI "organizer check" command runs RunAll and renders one row per
// check, so a user can see what a real run would trip over before moving
// anything.
package preflight
