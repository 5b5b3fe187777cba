package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positions maps each sorted line back to the table names it defines, so
// ordering assertions can be written against names instead of raw lines.
func positions(t *testing.T, s *Schema, sorted []string) map[string]int {
	t.Helper()
	pos := make(map[string]int, len(sorted))
	for idx, line := range sorted {
		for _, name := range s.Tables() {
			def, _ := s.Definition(name)
			if strings.TrimSpace(def) == line {
				pos[name] = idx
			}
		}
	}
	return pos
}

func TestSortChainDependency(t *testing.T) {
	sql := `create table "Table_C" (id int, b int references ` + "`TABLE_B`" + `(id));
create table ` + "`TABLE_B`" + ` (id int, a int references 'TABLE_A'(id));
create table TABLE_A (id int);
`
	s := mustParse(t, sql)
	sorted, err := s.Sort()
	require.NoError(t, err)
	require.Len(t, sorted, 3)

	pos := positions(t, s, sorted)
	assert.Less(t, pos["table_a"], pos["table_b"])
	assert.Less(t, pos["table_b"], pos["table_c"])
}

func TestSortMultipleDependencies(t *testing.T) {
	sql := `create table Table_D (a int references TABLE_A(id), b int references TABLE_B(id));
create table TABLE_A (id int);
create table TABLE_B (id int);
`
	s := mustParse(t, sql)
	sorted, err := s.Sort()
	require.NoError(t, err)

	pos := positions(t, s, sorted)
	assert.Less(t, pos["table_a"], pos["table_d"])
	assert.Less(t, pos["table_b"], pos["table_d"])
}

func TestSortEmitsEveryTableExactlyOnce(t *testing.T) {
	sql := `create table a (id int);
create table b (id int, x int references a(id), y int references a(id));
create table c (id int, x int references a(id), y int references b(id));
create table d (id int);
`
	s := mustParse(t, sql)
	sorted, err := s.Sort()
	require.NoError(t, err)
	require.Len(t, sorted, s.Len())

	seen := make(map[string]int)
	for _, line := range sorted {
		seen[line]++
	}
	for line, count := range seen {
		assert.Equal(t, 1, count, "line emitted %d times: %s", count, line)
	}
}

func TestSortIndependentTablesKeepDeterministicOrder(t *testing.T) {
	sql := `create table zebra (id int);
create table apple (id int);
`
	s := mustParse(t, sql)
	sorted, err := s.Sort()
	require.NoError(t, err)

	// Unconstrained tables come out alphabetically because the ready queue is
	// kept sorted.
	pos := positions(t, s, sorted)
	assert.Less(t, pos["apple"], pos["zebra"])
}

func TestSortCircularDependency(t *testing.T) {
	sql := `create table a (id int, b_id int references b(id));
create table b (id int, a_id int references a(id));
`
	s := mustParse(t, sql)
	_, err := s.Sort()

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"a", "b"}, unresolved.Stuck)
	assert.Empty(t, unresolved.Missing)
}

func TestSortMissingDependency(t *testing.T) {
	sql := `create table orders (id int, u int references users(id));
create table items (id int, o int references orders(id));
`
	s := mustParse(t, sql)
	_, err := s.Sort()

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	// orders is stuck on the undefined users table, items is stuck
	// transitively on orders.
	assert.Equal(t, []string{"items", "orders"}, unresolved.Stuck)
	assert.Equal(t, []string{"users"}, unresolved.Missing)
}

func TestSortSelfReference(t *testing.T) {
	sql := `create table employees (id int, manager_id int references employees(id));
create table teams (id int);
`
	s := mustParse(t, sql)
	_, err := s.Sort()

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"employees"}, unresolved.Stuck)
}

func TestSortTrimsDefinitions(t *testing.T) {
	sql := "create table t (id int);   \n"
	s := mustParse(t, sql)
	sorted, err := s.Sort()
	require.NoError(t, err)
	require.Len(t, sorted, 1)
	assert.Equal(t, "create table t (id int);", sorted[0])
}

func TestSortEmptyInput(t *testing.T) {
	s := mustParse(t, "")
	sorted, err := s.Sort()
	require.NoError(t, err)
	assert.Empty(t, sorted)
}

func TestSortErrorMessage(t *testing.T) {
	sql := `create table a (x int references ghost(id));
`
	s := mustParse(t, sql)
	_, err := s.Sort()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot sort dependencies")
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "never defined: ghost")
}
