package validation

import (
	"strings"
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "users", false},
		{"underscore prefix", "_private", false},
		{"with digits", "table2", false},
		{"dotted", "users.id", false},
		{"empty", "", true},
		{"leading digit", "2users", true},
		{"space", "user name", true},
		{"semicolon", "users;", true},
		{"quote", "users'", true},
		{"backtick", "users`", true},
		{"double dot", "a.b.c", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTableWithAlias(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		wantName  string
		wantAlias string
		wantErr   bool
	}{
		{"plain", "users", "users", "", false},
		{"as alias", "users as u", "users", "u", false},
		{"upper AS", "users AS u", "users", "u", false},
		{"space alias", "users u", "users", "u", false},
		{"empty", "", "", "", true},
		{"injection", "users; DROP TABLE x", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, alias, err := ValidateTableWithAlias(tt.table)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTableWithAlias(%q) error = %v, wantErr %v", tt.table, err, tt.wantErr)
			}
			if name != tt.wantName || alias != tt.wantAlias {
				t.Errorf("ValidateTableWithAlias(%q) = (%q, %q), want (%q, %q)",
					tt.table, name, alias, tt.wantName, tt.wantAlias)
			}
		})
	}
}
