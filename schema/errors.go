package schema

import (
	"strings"
)

// UnresolvedError reports tables that could not be placed in dependency
// order. Stuck holds every table still blocked when sorting stopped; Missing
// holds names that appeared in a references clause but were never defined in
// the input. Both lists are sorted for stable error text.
type UnresolvedError struct {
	Stuck   []string
	Missing []string
}

func (e *UnresolvedError) Error() string {
	var b strings.Builder
	b.WriteString("cannot sort dependencies: circular or unresolved dependencies for: ")
	b.WriteString(strings.Join(e.Stuck, ", "))
	if len(e.Missing) > 0 {
		b.WriteString(" (never defined: ")
		b.WriteString(strings.Join(e.Missing, ", "))
		b.WriteString(")")
	}
	return b.String()
}
