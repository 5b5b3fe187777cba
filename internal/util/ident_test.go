package util

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", "TABLE_A", "table_a"},
		{"double quoted", `"TABLE_A"`, "table_a"},
		{"single quoted", "'TABLE_A'", "table_a"},
		{"backtick quoted", "`TABLE_A`", "table_a"},
		{"already normalized", "table_a", "table_a"},
		{"schema qualified", "public.table_x", "table_x"},
		{"quoted qualified", `"my_schema"."table_x"`, "table_x"},
		{"mixed quoting", `public."table_x"`, "table_x"},
		{"multiple qualifiers", "db.schema.table_x", "table_x"},
		{"empty", "", ""},
		{"only quotes", `""`, ""},
		{"trailing dot", "public.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIdent(tt.raw); got != tt.want {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdentIdempotent(t *testing.T) {
	inputs := []string{`"My_Schema"."Table_X"`, "`TABLE_B`", "plain", ""}
	for _, raw := range inputs {
		once := NormalizeIdent(raw)
		if twice := NormalizeIdent(once); twice != once {
			t.Errorf("NormalizeIdent not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("DDLSORT_TEST_VAR", "from-env")
	if got := GetEnvWithDefault("DDLSORT_TEST_VAR", "fallback"); got != "from-env" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := GetEnvWithDefault("DDLSORT_TEST_VAR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
