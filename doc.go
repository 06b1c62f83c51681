// Package leimysql provides a lightweight MySQL access layer for Go.
//
// leimysql manages a bounded pool of connections to a MySQL-compatible
// server and exposes table-oriented CRUD operations plus raw parameterized
// queries. Statements are compiled to complete SQL text: values are
// embedded as escaped literals following the MySQL escaping convention,
// and conditions are compiled from a small expression language.
//
// # Quick Start
//
// Connect to a database and start querying:
//
//	db, err := leimysql.Connect("user:pass@tcp(localhost:3306)/dbname")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	rows, err := db.Select(ctx, "users", "*", map[string]any{"status": "active"})
//
// # Conditions
//
// Conditions are polymorphic. A raw string is used verbatim, a map is a
// conjunction of equality tests, and a prefix-notation slice composes
// logical expressions:
//
//	db.Select(ctx, "users", "*", "id=1")                       // raw fragment
//	db.Select(ctx, "users", "*", map[string]any{"a": 1})       // `a`=1
//	db.Select(ctx, "users", "*", []any{"age", ">", 18})        // (`age` > 18)
//	db.Select(ctx, "users", "*", []any{"$and",
//	    []any{"age", ">", 18},
//	    []any{"role", "IN", []any{"admin", "staff"}},
//	})
//
// The same expressions can be built directly with the dialect package's
// typed constructors:
//
//	cond := dialect.And(
//	    dialect.Cmp("age", ">", 18),
//	    dialect.Eq("status", "active"),
//	)
//	db.Select(ctx, "users", []string{"id", "name"}, cond, "ORDER BY id DESC")
//
// # Insert, Update, Delete
//
//	// Insert one or many rows
//	result, err := db.Insert(ctx, "users",
//	    leimysql.Row{"name": "John", "email": "john@example.com"},
//	    leimysql.Row{"name": "Jane"},
//	)
//
//	// Update matching rows
//	result, err := db.Update(ctx, "users",
//	    []any{"id", 1},
//	    leimysql.Row{"status": "inactive"},
//	)
//
//	// Delete matching rows
//	result, err := db.Delete(ctx, "users", map[string]any{"status": "banned"})
//
// # Security
//
// leimysql protects against SQL injection through:
//   - MySQL backslash escaping for every embedded value
//   - Identifier validation (table/column names)
//   - Operator whitelisting
//
// Raw condition strings and tail clauses are trusted input by contract;
// never build them from user input.
//
// # Resource Discipline
//
// Exactly one connection is leased per in-flight statement, acquired
// lazily at call time and released unconditionally exactly once per call,
// on every exit path. The pool enforces its own connection limits and
// queuing; this layer adds no blocking, retry, or backpressure logic.
//
// # Thread Safety
//
// The escaping and compilation layers are pure, synchronous transforms
// with no shared mutable state. A *DB is safe for concurrent use by any
// number of goroutines.
package leimysql
