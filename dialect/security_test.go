package dialect_test

import (
	"testing"

	"github.com/zhangjx/leimysql/dialect"
)

// literalIsClosed reports whether s is a single-quoted SQL literal in which
// no unescaped quote terminates the string early.
func literalIsClosed(s string) bool {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return false
	}
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++ // escaped character, skip it
		case '\'':
			return false // bare quote inside the literal
		}
	}
	return true
}

// TestSQLInjection_Values feeds classic injection payloads through the
// escaper and verifies none of them can break out of the literal.
func TestSQLInjection_Values(t *testing.T) {
	payloads := []string{
		"'; DROP TABLE users;--",
		`"; DROP TABLE users;--`,
		"' OR '1'='1",
		"' OR 1=1--",
		"\\'; DELETE FROM users;--",
		"admin'--",
		"1' UNION SELECT password FROM users--",
		"'; WAITFOR DELAY '0:0:10'--",
		"Robert'); DROP TABLE students;--",
		"a\x00b",
		"a\x1ab",
		"a\nb'; --",
		"a\\\\' OR 1=1",
	}

	for _, payload := range payloads {
		t.Run(payload[:min(len(payload), 24)], func(t *testing.T) {
			got := dialect.EscapeString(payload)
			if !literalIsClosed(got) {
				t.Errorf("EscapeString(%q) = %q is not a closed literal", payload, got)
			}
		})
	}
}

// TestSQLInjection_Identifiers verifies malicious identifiers are rejected
// rather than quoted.
func TestSQLInjection_Identifiers(t *testing.T) {
	g := dialect.MySQL()

	payloads := []string{
		"users; DROP TABLE users;--",
		"users'; DROP TABLE users;--",
		"users`; DROP TABLE users;--",
		"users UNION SELECT * FROM passwords",
		"users--",
		"users#",
		"users/**/",
		"users OR 1=1",
		"users\x00",
		"users\n",
		"../../../etc/passwd",
	}

	for _, payload := range payloads {
		t.Run(payload[:min(len(payload), 24)], func(t *testing.T) {
			if _, err := g.Wrap(payload); err == nil {
				t.Errorf("Wrap(%q) should have returned an error", payload)
			}
			if _, err := g.WrapTable(payload); err == nil {
				t.Errorf("WrapTable(%q) should have returned an error", payload)
			}
		})
	}
}
