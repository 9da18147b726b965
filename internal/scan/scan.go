package scan

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/YellowKidokc/File-Organization/internal/logging"
	"github.com/YellowKidokc/File-Organization/internal/services"
)

// Entry is one regular file discovered under the scan root.
type Entry struct {
	Path string
	Size int64
}

// ExcludeSet holds directory and file names that disqualify a path when any
// single segment of the path matches.
type ExcludeSet map[string]struct{}

// NewExcludeSet builds an ExcludeSet from names, ignoring blanks.
func NewExcludeSet(names ...string) ExcludeSet {
	set := make(ExcludeSet, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		set[trimmed] = struct{}{}
	}
	return set
}

// Contains reports whether name is excluded.
func (s ExcludeSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the excluded names sorted for stable display.
func (s ExcludeSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Result carries the resolved root together with the surviving entries in
// traversal order.
type Result struct {
	Root    string
	Entries []Entry
}

// ResolveRoot normalizes root to an absolute path and verifies it is an
// existing, readable directory. Missing roots fail with the not-found
// marker, unreadable ones with the access marker.
func ResolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	resolved, err := filepath.Abs(root)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "scan", "resolve root", root, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", services.Wrap(services.ErrNotFound, "scan", "resolve root", resolved+" does not exist", nil)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", services.Wrap(services.ErrAccess, "scan", "resolve root", resolved+" is not accessible", err)
		}
		return "", services.Wrap(services.ErrValidation, "scan", "resolve root", resolved, err)
	}
	if !info.IsDir() {
		return "", services.Wrap(services.ErrValidation, "scan", "resolve root", resolved+" is not a directory", nil)
	}
	if err := unix.Access(resolved, unix.R_OK|unix.X_OK); err != nil {
		return "", services.Wrap(services.ErrAccess, "scan", "resolve root", resolved+" is not readable", err)
	}
	return resolved, nil
}

// Collect walks root depth-first in lexical order and returns the regular
// files that survive exclusion filtering. Exclusion applies to every segment
// of the absolute path, so a root living under an excluded directory yields
// no entries at all. Symlinks and other non-regular files are skipped.
func Collect(ctx context.Context, logger *slog.Logger, root string, excludes ExcludeSet) (*Result, error) {
	log := logging.NewComponentLogger(logger, "scanner")

	resolved, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}
	result := &Result{Root: resolved}

	for _, segment := range pathSegments(resolved) {
		if excludes.Contains(segment) {
			log.Debug("root lies under an excluded directory; nothing to scan",
				logging.String("root", resolved),
				logging.String("segment", segment),
			)
			return result, nil
		}
	}

	walkErr := filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return services.Wrap(services.ErrAccess, "scan", "walk", "read "+path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == resolved {
			return nil
		}
		name := d.Name()
		if excludes.Contains(name) {
			if d.IsDir() {
				log.Debug("pruning excluded directory", logging.String("path", path))
				return fs.SkipDir
			}
			log.Debug("skipping excluded file", logging.String("path", path))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			log.Debug("skipping non-regular file",
				logging.String("path", path),
				logging.String("mode", d.Type().String()),
			)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return services.Wrap(services.ErrAccess, "scan", "stat", path, err)
		}
		result.Entries = append(result.Entries, Entry{Path: path, Size: info.Size()})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	log.Debug("scan complete",
		logging.String("root", resolved),
		logging.Int("files", len(result.Entries)),
	)
	return result, nil
}

func pathSegments(path string) []string {
	clean := filepath.Clean(path)
	parts := strings.Split(clean, string(filepath.Separator))
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
