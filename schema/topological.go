package schema

import (
	"sort"
	"strings"
)

// Sort returns the definition lines in dependency order: every table appears
// strictly after all tables it references. Definitions are trimmed of leading
// and trailing whitespace but otherwise returned verbatim.
//
// The ordering is Kahn's algorithm over the reference graph. Each reference
// occurrence contributes one unit of in-degree to the referencing table; the
// matching decrement happens when the referenced table is emitted.
// Self-references and references to tables that were never defined have no
// emitting counterpart, so their in-degree is never paid off and the table
// stays blocked. The queue is kept sorted, which makes the order among
// otherwise unconstrained tables deterministic.
//
// When the queue drains before every table is emitted, Sort fails with an
// *UnresolvedError naming the blocked tables: members of a reference cycle,
// tables depending (directly or transitively) on a blocked table, and tables
// referencing names absent from the input.
func (s *Schema) Sort() ([]string, error) {
	inDegree := make(map[string]int, len(s.order))
	dependents := make(map[string][]string, len(s.order))
	missing := make(map[string]bool)

	for _, name := range s.order {
		inDegree[name] = 0
	}
	for _, name := range s.order {
		for _, ref := range s.refs[name] {
			if _, defined := s.defs[ref]; !defined {
				missing[ref] = true
				inDegree[name]++
				continue
			}
			if ref == name {
				inDegree[name]++
				continue
			}
			dependents[ref] = append(dependents[ref], name)
			inDegree[name]++
		}
	}

	var queue []string
	for _, name := range s.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	emitted := make(map[string]bool, len(s.order))
	sorted := make([]string, 0, len(s.order))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if emitted[current] {
			continue
		}
		emitted[current] = true
		sorted = append(sorted, strings.TrimSpace(s.defs[current]))

		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 && !emitted[dependent] {
				queue = append(queue, dependent)
				sort.Strings(queue)
			}
		}
	}

	if len(sorted) < len(s.order) {
		err := &UnresolvedError{}
		for _, name := range s.order {
			if !emitted[name] {
				err.Stuck = append(err.Stuck, name)
			}
		}
		sort.Strings(err.Stuck)
		for name := range missing {
			err.Missing = append(err.Missing, name)
		}
		sort.Strings(err.Missing)
		return nil, err
	}

	return sorted, nil
}
