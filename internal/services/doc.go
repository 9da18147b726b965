// Package services defines shared utilities consumed by the organizer engine
// stages and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging
//     and tracing.
//   - Structured error markers plus the Wrap helper that classify failures
//     (missing root, access problems, move errors, plan collisions) so
//     callers can branch on errors.Is instead of string matching.
//
// Use these helpers when wiring new engine logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
