// Package schema extracts table definitions and their foreign key references
// from SQL text and orders them so that every table appears after the tables
// it references.
//
// The extractor is deliberately not a SQL parser. It works line by line: a
// table is recognized only when its CREATE TABLE statement, including every
// inline "references" clause, sits on a single physical line. Statements
// spread over multiple lines are silently skipped.
package schema

// Schema holds the extraction result for one batch of SQL text: which tables
// were defined, what each one references, and the original definition line for
// each table. Table names are stored in normalized form (see
// util.NormalizeIdent), so "Users", `users` and public."USERS" are the same
// table as far as ordering is concerned.
type Schema struct {
	// refs maps a table to the tables it references, in order of appearance
	// on the definition line. Duplicates are kept as found.
	refs map[string][]string
	// defs maps a table to its whitespace-collapsed definition line. When the
	// same name is defined twice the later line wins.
	defs map[string]string
	// order records first-seen table names so output is stable for tables
	// with no ordering constraint between them.
	order []string
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{
		refs: make(map[string][]string),
		defs: make(map[string]string),
	}
}

// Tables returns all defined table names in first-seen order.
func (s *Schema) Tables() []string {
	tables := make([]string, len(s.order))
	copy(tables, s.order)
	return tables
}

// References returns the tables referenced by name, in order of appearance.
func (s *Schema) References(name string) []string {
	return s.refs[name]
}

// Definition returns the stored definition line for name.
func (s *Schema) Definition(name string) (string, bool) {
	def, ok := s.defs[name]
	return def, ok
}

// Len returns the number of distinct tables in the schema.
func (s *Schema) Len() int {
	return len(s.order)
}

// add records one table definition. Later definitions of the same name
// overwrite earlier ones but keep the original position in the emission order.
func (s *Schema) add(name, definition string, refs []string) {
	if _, seen := s.defs[name]; !seen {
		s.order = append(s.order, name)
	}
	s.refs[name] = refs
	s.defs[name] = definition
}

// Exclude drops every table whose name matches the predicate, and removes
// matching names from the remaining reference lists so that references to
// dropped tables count as satisfied.
func (s *Schema) Exclude(match func(string) bool) {
	kept := s.order[:0]
	for _, name := range s.order {
		if match(name) {
			delete(s.refs, name)
			delete(s.defs, name)
			continue
		}
		kept = append(kept, name)
	}
	s.order = kept

	for name, refs := range s.refs {
		filtered := refs[:0]
		for _, ref := range refs {
			if !match(ref) {
				filtered = append(filtered, ref)
			}
		}
		s.refs[name] = filtered
	}
}
