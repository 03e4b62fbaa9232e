package query

import (
	"strconv"
	"strings"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/pkg/logger"
)

// Reserved control keys stripped from the filter mapping before compilation.
const (
	keyMaxResults    = "max_results"
	keyFields        = "fields"
	keyIncludePhotos = "include_photos"
)

// Normalized is the sanitized form of a search request body.
type Normalized struct {
	// Filters holds only recognized-shape filter entries, empties removed,
	// control keys extracted.
	Filters *Params
	// MaxResults is 0 when absent or malformed.
	MaxResults int
	// Projection is nil when the caller gets every column.
	Projection []string
	// IncludePhotos mirrors the entity-specific enrichment flag.
	IncludePhotos bool
}

// Normalize strips empty values, extracts the control keys and resolves the
// requested projection against the entity catalog. Malformed control values
// degrade to their defaults; nothing here returns an error.
func Normalize(entity string, raw *Params) Normalized {
	filters := NewParams()
	for _, key := range raw.Keys() {
		value, _ := raw.Get(key)
		if isEmptyValue(value) {
			logger.Sugar().Debugf("parametro vacio ignorado: %s", key)
			continue
		}
		filters.Set(key, value)
	}

	n := Normalized{Filters: filters}

	if v, ok := filters.Get(keyMaxResults); ok {
		filters.Delete(keyMaxResults)
		n.MaxResults = parseMaxResults(v)
	}
	if v, ok := filters.Get(keyIncludePhotos); ok {
		filters.Delete(keyIncludePhotos)
		n.IncludePhotos = parseFlag(v)
	}
	if v, ok := filters.Get(keyFields); ok {
		filters.Delete(keyFields)
		n.Projection = resolveProjection(entity, v)
	}

	return n
}

// SelectColumns renders the projection as a SQL column list, optionally
// prefixing each column for joined queries.
func (n Normalized) SelectColumns(prefix string) string {
	if len(n.Projection) == 0 {
		if prefix != "" {
			return prefix + ".*"
		}
		return "*"
	}
	cols := make([]string, len(n.Projection))
	for i, f := range n.Projection {
		if prefix != "" {
			cols[i] = prefix + "." + f
		} else {
			cols[i] = f
		}
	}
	return strings.Join(cols, ", ")
}

// FieldsSelected is the envelope value: "all" or the resolved field list.
func (n Normalized) FieldsSelected() any {
	if len(n.Projection) == 0 {
		return "all"
	}
	return n.Projection
}

// isEmptyValue implements the "not specified" rule: null, empty string, the
// literal strings "null"/"undefined", and empty arrays are all treated as
// absent filters.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == "" || val == "null" || val == "undefined"
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

// parseMaxResults accepts a positive integer given as a JSON number or a
// numeric string. Anything else means "no limit".
func parseMaxResults(v any) int {
	switch val := v.(type) {
	case int64:
		if val > 0 {
			return int(val)
		}
	case float64:
		if val > 0 && val == float64(int64(val)) {
			return int(val)
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err == nil && n > 0 {
			return n
		}
	}
	logger.Sugar().Warnf("max_results invalido, ignorando limite: %v", v)
	return 0
}

func parseFlag(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}

// resolveProjection filters the requested field list against the catalog.
// Unknown fields are dropped with a warning; zero survivors falls back to
// every column.
func resolveProjection(entity string, v any) []string {
	requested, ok := v.([]any)
	if !ok || len(requested) == 0 {
		return nil
	}

	var valid []string
	var invalid []string
	for _, item := range requested {
		name, ok := item.(string)
		if !ok {
			continue
		}
		if catalog.IsProjectable(entity, name) {
			valid = append(valid, name)
		} else {
			invalid = append(invalid, name)
		}
	}

	if len(invalid) > 0 {
		logger.Sugar().Warnf("campos invalidos ignorados: %s", strings.Join(invalid, ", "))
	}
	if len(valid) == 0 {
		logger.Sugar().Warn("ningun campo valido especificado, usando todos los campos")
		return nil
	}
	return valid
}
