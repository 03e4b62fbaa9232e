package mysql

import (
	"database/sql"
	"strconv"
)

// Row is one result record keyed by column name. Search queries project a
// caller-chosen column set, so rows are scanned dynamically instead of into
// fixed structs.
type Row map[string]any

// ScanRows drains rows into Row maps. MySQL text-protocol results arrive as
// []byte; those are converted to string so the JSON encoder does not
// base64-encode them.
func ScanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Int64 reads a numeric column regardless of how the driver surfaced it.
func (r Row) Int64(column string) (int64, bool) {
	switch v := r[column].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String reads a column as text, empty when absent or NULL.
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return ""
	}
}
