// Package scan discovers the regular files under a root directory and
// formats the resulting inventory.
//
// Traversal is depth-first in lexical order, which fixes the order every
// later stage sees: the plan, the rendered output, and the prompt inventory
// all inherit it. Exclusion works on bare path segments, so one excluded
// name anywhere in a file's ancestry filters it, including ancestors above
// the root itself. Only regular files survive; symlinks, devices, and other
// special files are structure the scanner walks past.
package scan
