package plan

import "strings"

// EmptyMessage is what Render returns for a plan with nothing to do.
const EmptyMessage = "no moves required"

// Render produces the human-readable listing for p: a header followed by one
// "source -> destination" line per action in plan order.
func Render(p *Plan) string {
	if p == nil || len(p.Actions) == 0 {
		return EmptyMessage
	}
	var b strings.Builder
	b.WriteString("Planned moves:")
	for _, action := range p.Actions {
		b.WriteByte('\n')
		b.WriteString(action.Source)
		b.WriteString(" -> ")
		b.WriteString(action.Destination)
	}
	return b.String()
}
