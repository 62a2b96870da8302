package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// statement accumulates SQL text and its positional ($n) arguments.
type statement struct {
	buf  strings.Builder
	args []any
}

func (s *statement) bind(value any) {
	s.args = append(s.args, value)
	s.buf.WriteString("$")
	s.buf.WriteString(strconv.Itoa(len(s.args)))
}

func (s *statement) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			s.buf.WriteString(" WHERE ")
		} else {
			s.buf.WriteString(" AND ")
		}
		c.write(s)
	}
}

type Condition interface {
	write(s *statement)
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition { return eq{column: column, value: value} }

func (c eq) write(s *statement) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" = ")
	s.bind(c.value)
}

type isNull struct{ column string }

func IsNull(column string) Condition { return isNull{column: column} }

func (c isNull) write(s *statement) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var s statement
	s.buf.WriteString("SELECT ")
	s.buf.WriteString(strings.Join(b.columns, ", "))
	s.buf.WriteString(" FROM ")
	s.buf.WriteString(b.table)
	s.where(b.where)
	if len(b.orderBy) > 0 {
		s.buf.WriteString(" ORDER BY ")
		s.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.buf.WriteString(" LIMIT ")
		s.buf.WriteString(strconv.Itoa(b.limit))
	}
	return s.buf.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row. Call it once per row for multi-row inserts.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var s statement
	s.args = make([]any, 0, len(b.rows)*len(b.columns))
	fmt.Fprintf(&s.buf, "INSERT INTO %s (%s) VALUES ", b.table, strings.Join(b.columns, ", "))
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			s.buf.WriteString(", ")
		}
		s.buf.WriteString("(")
		for j, value := range row {
			if j > 0 {
				s.buf.WriteString(", ")
			}
			s.bind(value)
		}
		s.buf.WriteString(")")
	}
	if b.suffix != "" {
		s.buf.WriteString(" ")
		s.buf.WriteString(b.suffix)
	}
	return s.buf.String(), s.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	var s statement
	s.buf.WriteString("DELETE FROM ")
	s.buf.WriteString(b.table)
	s.where(b.where)
	return s.buf.String(), s.args, nil
}
