package dialect_test

import (
	"errors"
	"testing"

	"github.com/zhangjx/leimysql/dialect"
)

// compile parses a polymorphic condition and compiles it with the MySQL
// grammar, failing the test on unexpected errors.
func compile(t *testing.T, condition any) string {
	t.Helper()

	cond, err := dialect.Where(condition)
	if err != nil {
		t.Fatalf("Where(%v) error = %v", condition, err)
	}
	sql, err := dialect.MySQL().CompileCondition(cond, nil)
	if err != nil {
		t.Fatalf("CompileCondition(%v) error = %v", condition, err)
	}
	return sql
}

func TestCompileCondition_Polymorphic(t *testing.T) {
	tests := []struct {
		name      string
		condition any
		want      string
	}{
		{"nil is the sentinel", nil, ""},
		{"empty sequence is the sentinel", []any{}, ""},
		{"empty raw string is the sentinel", "", ""},
		{"empty map is the sentinel", map[string]any{}, ""},
		{"raw string used verbatim", "id=1 AND deleted=0", "id=1 AND deleted=0"},
		{"equality map", map[string]any{"a": 1, "b": "x"}, "`a`=1 AND `b`='x'"},
		{"pass-through fragment", []any{"`a`=`b`"}, "(`a`=`b`)"},
		{"field equality", []any{"a", 1}, "(`a`=1)"},
		{"field comparison", []any{"b", ">", 2}, "(`b` > 2)"},
		{"in with sequence", []any{"id", "IN", []any{1, 2, 3}}, "(`id` IN (1, 2, 3))"},
		{"not in", []any{"id", "NOT IN", []any{1, 2}}, "(`id` NOT IN (1, 2))"},
		{"like", []any{"name", "LIKE", "g%"}, "(`name` LIKE 'g%')"},
		{
			"and junction",
			[]any{"$and", []any{"a", 1}, []any{"b", ">", 2}},
			"((`a`=1) AND (`b` > 2))",
		},
		{
			"or junction",
			[]any{"$or", []any{"a", 1}, []any{"a", 2}},
			"((`a`=1) OR (`a`=2))",
		},
		{
			"not",
			[]any{"$not", []any{"a", 1}},
			"(NOT (`a`=1))",
		},
		{
			"nested junctions",
			[]any{"$or",
				[]any{"$and", []any{"a", 1}, []any{"b", 2}},
				map[string]any{"c": 3},
			},
			"(((`a`=1) AND (`b`=2)) OR `c`=3)",
		},
		{
			"junction skips empty branches",
			[]any{"$and", []any{}, []any{"a", 1}},
			"((`a`=1))",
		},
		{"not of nothing is the sentinel", []any{"$not", []any{}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compile(t, tt.condition); got != tt.want {
				t.Errorf("compile(%v) = %q, want %q", tt.condition, got, tt.want)
			}
		})
	}
}

func TestCompileCondition_TypedConstructors(t *testing.T) {
	tests := []struct {
		name string
		cond dialect.Cond
		want string
	}{
		{"eq", dialect.Eq("a", 1), "(`a`=1)"},
		{"cmp", dialect.Cmp("age", ">=", 18), "(`age` >= 18)"},
		{"fields", dialect.Fields(map[string]any{"a": 1, "b": 2}), "`a`=1 AND `b`=2"},
		{"raw", dialect.Raw("1=1"), "1=1"},
		{"fragment", dialect.Fragment("`a`=`b`"), "(`a`=`b`)"},
		{"empty fragment is the sentinel", dialect.Fragment("  "), ""},
		{
			"and of eq and cmp",
			dialect.And(dialect.Eq("a", 1), dialect.Cmp("b", ">", 2)),
			"((`a`=1) AND (`b` > 2))",
		},
		{"empty and is the sentinel", dialect.And(), ""},
		{"not of fields", dialect.Not(dialect.Fields(map[string]any{"a": 1})), "(NOT `a`=1)"},
		{
			"cmp with nested condition value",
			dialect.Cmp("a", "=", dialect.Fragment("SELECT MAX(`id`) FROM `t`")),
			"(`a` = (SELECT MAX(`id`) FROM `t`))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dialect.MySQL().CompileCondition(tt.cond, nil)
			if err != nil {
				t.Fatalf("CompileCondition() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CompileCondition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWhere_InvalidShapes(t *testing.T) {
	tests := []struct {
		name      string
		condition any
	}{
		{"unsupported type", 42},
		{"non-string field", []any{1, 2}},
		{"non-string operator", []any{"a", 1, 2}},
		{"non-string fragment", []any{42}},
		{"$not without inner", []any{"$not"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dialect.Where(tt.condition)
			if err == nil {
				t.Fatalf("Where(%v) expected error, got nil", tt.condition)
			}
			if !errors.Is(err, dialect.ErrInvalidCondition) {
				t.Errorf("Where(%v) error = %v, want ErrInvalidCondition", tt.condition, err)
			}
		})
	}
}

func TestCompileCondition_RejectsUnsafeInput(t *testing.T) {
	g := dialect.MySQL()

	// Invalid identifier in field position.
	if _, err := g.CompileCondition(dialect.Eq("id; DROP TABLE users", 1), nil); err == nil {
		t.Error("expected error for malicious field name")
	}

	// Operator outside the whitelist.
	if _, err := g.CompileCondition(dialect.Cmp("id", "= 1 OR 1", 1), nil); err == nil {
		t.Error("expected error for operator outside whitelist")
	}
}
