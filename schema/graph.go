package schema

import (
	"fmt"
	"io"
)

// WriteDOT writes the reference graph in Graphviz DOT form, one edge per
// distinct table -> referenced-table pair. Tables appear in first-seen order,
// so the output is stable for a given input. Referenced names that were never
// defined still show up as nodes, which makes missing dependencies easy to
// spot visually.
func (s *Schema) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph tables {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=\"LR\";"); err != nil {
		return err
	}

	for _, name := range s.order {
		if _, err := fmt.Fprintf(w, "  %q;\n", name); err != nil {
			return err
		}
		written := make(map[string]bool)
		for _, ref := range s.refs[name] {
			if written[ref] {
				continue
			}
			written[ref] = true
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", name, ref); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
