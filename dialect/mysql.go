package dialect

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zhangjx/leimysql/internal/validation"
)

// defaultDateFormat is the canonical MySQL date/time literal layout.
const defaultDateFormat = "2006-01-02 15:04:05"

// MySQLGrammar implements the Grammar interface for MySQL/MariaDB.
// Values are embedded as escaped literals following the MySQL backslash
// escaping convention, so the compiled text is a complete statement with
// no remaining placeholders.
type MySQLGrammar struct {
	BaseGrammar
}

// MySQL creates a new MySQL grammar instance.
func MySQL() *MySQLGrammar {
	return &MySQLGrammar{
		BaseGrammar: BaseGrammar{
			name:       "mysql",
			dateFormat: defaultDateFormat,
		},
	}
}

// NewMySQLGrammar is an alias of MySQL kept for symmetry with other dialects.
func NewMySQLGrammar() *MySQLGrammar {
	return MySQL()
}

// Wrap wraps an identifier with backticks.
func (g *MySQLGrammar) Wrap(identifier string) (string, error) {
	if identifier == "*" {
		return "*", nil
	}

	if err := validation.ValidateIdentifier(identifier); err != nil {
		return "", err
	}

	// Handle table.column format
	if strings.Contains(identifier, ".") {
		parts := strings.Split(identifier, ".")
		wrapped := make([]string, len(parts))
		for i, part := range parts {
			wrapped[i] = "`" + part + "`"
		}
		return strings.Join(wrapped, "."), nil
	}

	return "`" + identifier + "`", nil
}

// WrapTable wraps a table name, handling aliases.
func (g *MySQLGrammar) WrapTable(table string) (string, error) {
	name, alias, err := validation.ValidateTableWithAlias(table)
	if err != nil {
		return "", err
	}

	wrapped := "`" + name + "`"
	if alias != "" {
		wrapped += " AS `" + alias + "`"
	}

	return wrapped, nil
}

// ----------------------------------------------------------------------------
// Value Escaping
// ----------------------------------------------------------------------------

// Escape converts a single value into safe SQL literal text. Date/time
// values are formatted in loc (UTC when nil).
func (g *MySQLGrammar) Escape(value any, loc *time.Location) string {
	return escapeValue(value, loc, g.DateFormat())
}

// EscapeValue converts a value into safe SQL literal text using the
// canonical MySQL date format. It is the package-level form of
// (*MySQLGrammar).Escape for callers without a grammar at hand.
func EscapeValue(value any, loc *time.Location) string {
	return escapeValue(value, loc, defaultDateFormat)
}

func escapeValue(value any, loc *time.Location, dateFormat string) string {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return EscapeString(v)
	case []byte:
		return "X'" + hex.EncodeToString(v) + "'"
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return "'" + v.In(loc).Format(dateFormat) + "'"
	case []any:
		return escapeList(v, loc, dateFormat)
	case map[string]any:
		return escapeAssignments(v, loc, dateFormat)
	}

	// Typed slices and pointers fall through to reflection.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return escapeList(items, loc, dateFormat)
	case reflect.Pointer:
		if rv.IsNil() {
			return "NULL"
		}
		return escapeValue(rv.Elem().Interface(), loc, dateFormat)
	}

	return EscapeString(toString(value))
}

// escapeList renders a sequence as a parenthesized, comma-joined list,
// ready to pair with IN. Nested sequences recurse into the same rule.
func escapeList(items []any, loc *time.Location, dateFormat string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = escapeValue(item, loc, dateFormat)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// escapeAssignments renders a mapping as a comma-joined `key`=value list.
// Keys are sorted for deterministic output.
func escapeAssignments(m map[string]any, loc *time.Location, dateFormat string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = escapeKey(k) + "=" + escapeValue(m[k], loc, dateFormat)
	}
	return strings.Join(parts, ", ")
}

// escapeKey quotes a field name by doubling embedded backticks. Unlike
// Wrap it cannot fail, so it is safe in value position where no error
// channel exists.
func escapeKey(k string) string {
	return "`" + strings.ReplaceAll(k, "`", "``") + "`"
}

// EscapeString escapes a text value per the MySQL convention and wraps it
// in single quotes. NUL, newline, carriage return, backspace, tab, SUB
// (0x1A), backslash and both quote characters each map to their
// two-character escape, so no input can terminate the literal early.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case 0x1a:
			b.WriteString(`\Z`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func toString(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// ----------------------------------------------------------------------------
// Condition Compilation
// ----------------------------------------------------------------------------

// CompileCondition compiles a condition into a single boolean SQL
// expression. The empty string is the "no condition" sentinel: callers
// must omit the WHERE keyword entirely rather than emit it with empty
// content. Every non-sentinel branch other than a raw fragment or an
// equality mapping is wrapped in one layer of parentheses so nested
// logical combinations compose without precedence ambiguity.
func (g *MySQLGrammar) CompileCondition(c Cond, loc *time.Location) (string, error) {
	switch v := c.(type) {
	case nil:
		return "", nil

	case RawCond:
		return strings.TrimSpace(string(v)), nil

	case FragmentCond:
		frag := strings.TrimSpace(string(v))
		if frag == "" {
			return "", nil
		}
		return "(" + frag + ")", nil

	case MapCond:
		return g.compileMap(v, loc)

	case EqCond:
		field, err := g.Wrap(v.Field)
		if err != nil {
			return "", err
		}
		return "(" + field + "=" + g.Escape(v.Value, loc) + ")", nil

	case CmpCond:
		return g.compileCmp(v, loc)

	case AndCond:
		return g.compileJunction([]Cond(v), "AND", loc)

	case OrCond:
		return g.compileJunction([]Cond(v), "OR", loc)

	case NotCond:
		inner, err := g.CompileCondition(v.Inner, loc)
		if err != nil {
			return "", err
		}
		if inner == "" {
			return "", nil
		}
		return "(NOT " + inner + ")", nil

	default:
		return "", ErrInvalidCondition
	}
}

func (g *MySQLGrammar) compileMap(m MapCond, loc *time.Location) (string, error) {
	if len(m) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		field, err := g.Wrap(k)
		if err != nil {
			return "", err
		}
		parts[i] = field + "=" + g.Escape(m[k], loc)
	}
	return strings.Join(parts, " AND "), nil
}

func (g *MySQLGrammar) compileCmp(c CmpCond, loc *time.Location) (string, error) {
	field, err := g.Wrap(c.Field)
	if err != nil {
		return "", err
	}

	operator, err := validation.NormalizeOperator(c.Operator)
	if err != nil {
		return "", err
	}

	// A condition in value position compiles recursively; anything else is
	// escaped, which turns sequences into IN-ready parenthesized lists.
	var value string
	if nested, ok := c.Value.(Cond); ok && nested != nil {
		value, err = g.CompileCondition(nested, loc)
		if err != nil {
			return "", err
		}
	} else {
		value = g.Escape(c.Value, loc)
	}

	return "(" + field + " " + operator + " " + value + ")", nil
}

func (g *MySQLGrammar) compileJunction(conds []Cond, operator string, loc *time.Location) (string, error) {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		compiled, err := g.CompileCondition(c, loc)
		if err != nil {
			return "", err
		}
		if compiled == "" {
			continue
		}
		parts = append(parts, compiled)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " "+operator+" ") + ")", nil
}

// ----------------------------------------------------------------------------
// Statement Compilation
// ----------------------------------------------------------------------------

// CompileInsert compiles a multi-row INSERT statement. The column list is
// the union of keys across all rows, sorted for deterministic output; a
// row missing a column contributes '' for it, while a key present with a
// nil value escapes to NULL.
func (g *MySQLGrammar) CompileInsert(table string, rows []map[string]any, loc *time.Location) (string, error) {
	if table == "" {
		return "", ErrNoTable
	}
	if len(rows) == 0 {
		return "", ErrEmptyBatch
	}

	seen := make(map[string]bool)
	columns := make([]string, 0, len(rows[0]))
	for _, row := range rows {
		if row == nil {
			return "", ErrInvalidRow
		}
		for k := range row {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	if len(columns) == 0 {
		return "", ErrInvalidRow
	}
	sort.Strings(columns)

	wrappedTable, err := g.WrapTable(table)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(wrappedTable)

	sql.WriteString(" (")
	for i, col := range columns {
		wrapped, err := g.Wrap(col)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(wrapped)
	}
	sql.WriteString(") VALUES ")

	for i, row := range rows {
		if i > 0 {
			sql.WriteString(", ")
		}
		values := make([]string, len(columns))
		for j, col := range columns {
			if v, ok := row[col]; ok {
				values[j] = g.Escape(v, loc)
			} else {
				values[j] = "''"
			}
		}
		sql.WriteString("(" + strings.Join(values, ", ") + ")")
	}

	return sql.String(), nil
}

// CompileUpdate compiles an UPDATE statement. WHERE is omitted entirely
// when the condition compiles to the sentinel, which updates every row in
// the table; callers must pass an empty condition deliberately.
func (g *MySQLGrammar) CompileUpdate(table string, c Cond, data map[string]any, tail string, loc *time.Location) (string, error) {
	if table == "" {
		return "", ErrNoTable
	}
	if len(data) == 0 {
		return "", ErrNoColumns
	}

	wrappedTable, err := g.WrapTable(table)
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	setParts := make([]string, len(keys))
	for i, k := range keys {
		wrapped, err := g.Wrap(k)
		if err != nil {
			return "", err
		}
		setParts[i] = wrapped + "=" + g.Escape(data[k], loc)
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(wrappedTable)
	sql.WriteString(" SET ")
	sql.WriteString(strings.Join(setParts, ", "))

	if err := g.appendWhere(&sql, c, loc); err != nil {
		return "", err
	}
	appendTail(&sql, tail)

	return sql.String(), nil
}

// CompileDelete compiles a DELETE statement. A sentinel condition deletes
// every row in the table.
func (g *MySQLGrammar) CompileDelete(table string, c Cond, tail string, loc *time.Location) (string, error) {
	if table == "" {
		return "", ErrNoTable
	}

	wrappedTable, err := g.WrapTable(table)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(wrappedTable)

	if err := g.appendWhere(&sql, c, loc); err != nil {
		return "", err
	}
	appendTail(&sql, tail)

	return sql.String(), nil
}

// CompileSelect compiles a SELECT statement. fields may be a raw
// comma-separated string used verbatim, or a slice of column names that
// are individually wrapped; empty fields select *.
func (g *MySQLGrammar) CompileSelect(table string, fields any, c Cond, tail string, loc *time.Location) (string, error) {
	if table == "" {
		return "", ErrNoTable
	}

	fieldList, err := g.compileFields(fields)
	if err != nil {
		return "", err
	}

	wrappedTable, err := g.WrapTable(table)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(fieldList)
	sql.WriteString(" FROM ")
	sql.WriteString(wrappedTable)

	if err := g.appendWhere(&sql, c, loc); err != nil {
		return "", err
	}
	appendTail(&sql, tail)

	return sql.String(), nil
}

// CompileSelectOne delegates to CompileSelect, appending LIMIT 1 unless
// the tail already contains a case-insensitive "limit " token.
func (g *MySQLGrammar) CompileSelectOne(table string, fields any, c Cond, tail string, loc *time.Location) (string, error) {
	if !strings.Contains(strings.ToLower(tail), "limit ") {
		if tail == "" {
			tail = "LIMIT 1"
		} else {
			tail += " LIMIT 1"
		}
	}
	return g.CompileSelect(table, fields, c, tail, loc)
}

func (g *MySQLGrammar) compileFields(fields any) (string, error) {
	switch f := fields.(type) {
	case nil:
		return "*", nil
	case string:
		if f == "" {
			return "*", nil
		}
		return f, nil
	case []string:
		if len(f) == 0 {
			return "*", nil
		}
		wrapped := make([]string, len(f))
		for i, col := range f {
			w, err := g.Wrap(col)
			if err != nil {
				return "", err
			}
			wrapped[i] = w
		}
		return strings.Join(wrapped, ", "), nil
	case []any:
		cols := make([]string, len(f))
		for i, item := range f {
			s, ok := item.(string)
			if !ok {
				return "", ErrInvalidFields
			}
			cols[i] = s
		}
		return g.compileFields(cols)
	default:
		return "", ErrInvalidFields
	}
}

func (g *MySQLGrammar) appendWhere(sql *strings.Builder, c Cond, loc *time.Location) error {
	where, err := g.CompileCondition(c, loc)
	if err != nil {
		return err
	}
	if where != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(where)
	}
	return nil
}

func appendTail(sql *strings.Builder, tail string) {
	tail = strings.TrimSpace(tail)
	if tail != "" {
		sql.WriteString(" ")
		sql.WriteString(tail)
	}
}
