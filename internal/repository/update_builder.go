package repository

import (
	"fmt"
	"strings"
)

// updateBuilder collects the present fields of a sparse update into a
// single parameterized UPDATE statement. Placeholders are assigned in the
// order fields are added (callers add them in a fixed order, so the
// resulting SQL is deterministic), and the row identifier is always bound
// last. An empty builder means no UPDATE should be executed at all.
type updateBuilder struct {
	table string
	sets  []string
	args  []interface{}
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set adds a plain column assignment: "col = $n".
func (b *updateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// SetExpr adds an assignment whose right-hand side is a SQL expression.
// The expr is a format string with one "$%d" verb per value; placeholders
// are numbered in value order. Used for the geography point, whose two
// components feed a single expression.
func (b *updateBuilder) SetExpr(expr string, values ...interface{}) {
	positions := make([]interface{}, len(values))
	for i, v := range values {
		b.args = append(b.args, v)
		positions[i] = len(b.args)
	}
	b.sets = append(b.sets, fmt.Sprintf(expr, positions...))
}

// Empty reports whether no fields were present. Callers must short-circuit
// and return the current row unchanged instead of building an UPDATE.
func (b *updateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Query returns the statement and its arguments in execution order, with
// the identifier appended as the final placeholder.
func (b *updateBuilder) Query(idColumn string, id interface{}) (string, []interface{}) {
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		b.table,
		strings.Join(b.sets, ", "),
		idColumn,
		len(args),
	)
	return query, args
}

// geoMergeExpr merges a partially supplied coordinate pair with the stored
// point inside the UPDATE itself. COALESCE against the stored component
// keeps the read and the write in one atomic statement, so interleaved
// coordinate updates cannot lose each other's component. Longitude is X,
// latitude is Y.
const geoMergeExpr = "location = ST_SetSRID(ST_MakePoint(" +
	"COALESCE($%d, ST_X(location::geometry)), " +
	"COALESCE($%d, ST_Y(location::geometry))), 4326)::geography"

// setLocation applies the coordinate merge policy: both components nil
// leaves the location untouched; otherwise the missing component falls
// back to the stored value via COALESCE.
func (b *updateBuilder) setLocation(lat, lon *float64) {
	if lat == nil && lon == nil {
		return
	}
	b.SetExpr(geoMergeExpr, lon, lat)
}
