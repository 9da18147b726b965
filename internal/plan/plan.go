package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/YellowKidokc/File-Organization/internal/classify"
	"github.com/YellowKidokc/File-Organization/internal/scan"
	"github.com/YellowKidokc/File-Organization/internal/services"
)

// Action moves one file into its category directory.
type Action struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Size        int64  `json:"size"`
}

// Plan is the ordered set of moves for one root. Actions follow traversal
// order; files already in place appear in no action.
type Plan struct {
	Root    string   `json:"root"`
	Actions []Action `json:"actions"`
}

// TotalBytes sums the sizes of all planned moves.
func (p *Plan) TotalBytes() int64 {
	var total int64
	for _, action := range p.Actions {
		total += action.Size
	}
	return total
}

// Collision is one destination claimed by multiple sources.
type Collision struct {
	Destination string
	Sources     []string
}

// CollisionError rejects a plan whose flattening would funnel distinct
// sources onto the same destination. The planner never resolves these by
// overwriting or renaming; the caller must reorganize first.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	var b strings.Builder
	b.WriteString("destination collision")
	if len(e.Collisions) > 1 {
		b.WriteString("s")
	}
	b.WriteString(": ")
	for i, collision := range e.Collisions {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s claimed by %s", collision.Destination, strings.Join(collision.Sources, ", "))
	}
	return b.String()
}

func (e *CollisionError) Unwrap() error { return services.ErrCollision }

// Build maps every entry to root/<category>/<basename> and returns the moves
// in entry order. An entry whose destination equals its source is already in
// place and skipped, though it still claims the destination for collision
// purposes. Build performs no filesystem work.
func Build(root string, entries []scan.Entry) (*Plan, error) {
	p := &Plan{Root: root}

	claims := make(map[string][]string, len(entries))
	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		category := classify.Classify(entry.Path)
		dest := filepath.Join(root, category, filepath.Base(entry.Path))

		if _, seen := claims[dest]; !seen {
			order = append(order, dest)
		}
		claims[dest] = append(claims[dest], entry.Path)

		if dest == entry.Path {
			continue
		}
		p.Actions = append(p.Actions, Action{
			Source:      entry.Path,
			Destination: dest,
			Category:    category,
			Size:        entry.Size,
		})
	}

	var collisions []Collision
	for _, dest := range order {
		if sources := claims[dest]; len(sources) > 1 {
			collisions = append(collisions, Collision{Destination: dest, Sources: sources})
		}
	}
	if len(collisions) > 0 {
		return nil, &CollisionError{Collisions: collisions}
	}

	return p, nil
}
