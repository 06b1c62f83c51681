package validation

import "testing"

func TestValidateOperator(t *testing.T) {
	valid := []string{"=", "!=", "<>", "<", ">", "<=", ">=", "<=>",
		"LIKE", "like", "NOT LIKE", "IS", "IS NOT",
		"IN", "in", "NOT IN", "BETWEEN", "NOT BETWEEN", " = "}

	for _, op := range valid {
		if err := ValidateOperator(op); err != nil {
			t.Errorf("ValidateOperator(%q) = %v, want nil", op, err)
		}
	}

	invalid := []string{"", "==", "=>", "DROP", "UNION", "= 1 OR 1", "; --", "REGEXP"}

	for _, op := range invalid {
		if err := ValidateOperator(op); err == nil {
			t.Errorf("ValidateOperator(%q) = nil, want error", op)
		}
	}
}

func TestNormalizeOperator(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"=", "="},
		{"in", "IN"},
		{" not like ", "NOT LIKE"},
		{"Between", "BETWEEN"},
	}

	for _, tt := range tests {
		got, err := NormalizeOperator(tt.op)
		if err != nil {
			t.Errorf("NormalizeOperator(%q) error = %v", tt.op, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeOperator(%q) = %q, want %q", tt.op, got, tt.want)
		}
	}

	if _, err := NormalizeOperator("DROP"); err == nil {
		t.Error("NormalizeOperator(\"DROP\") = nil, want error")
	}
}
