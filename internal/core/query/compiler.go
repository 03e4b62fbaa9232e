package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/motorlot/motorlot/internal/core/catalog"
	"github.com/motorlot/motorlot/pkg/logger"
)

// Compiled is a parameterized query ready for execution: SQL text plus the
// bind values in placeholder order. Built once per request, never cached.
type Compiled struct {
	SQL  string
	Args []any
}

// Compiler appends AND clauses for every recognized filter key. Keys absent
// from the spec table are dropped with a diagnostic, never an error; that is
// what keeps arbitrary client keys from reaching the SQL text.
type Compiler struct {
	// Strict pre-validates values against the spec kind and skips keys whose
	// values do not coerce. Default is lenient: bind as received and let the
	// store coerce.
	Strict bool
}

// Compile extends base (which must end in an always-true predicate such as
// "WHERE 1=1") with one clause per surviving filter, in insertion order.
func (c Compiler) Compile(base string, filters *Params, specs map[string]catalog.FieldSpec) Compiled {
	var sb strings.Builder
	sb.WriteString(base)
	var args []any

	for _, key := range filters.Keys() {
		spec, ok := specs[key]
		if !ok {
			logger.Sugar().Warnf("campo '%s' no valido, ignorado", key)
			continue
		}
		value, _ := filters.Get(key)

		if spec.Op == catalog.IN {
			list, ok := value.([]any)
			if !ok {
				logger.Sugar().Warnf("valor no-array para %s, ignorando campo", key)
				continue
			}
			if len(list) == 0 {
				logger.Sugar().Warnf("array vacio para %s, ignorando campo", key)
				continue
			}
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(list)), ",")
			sb.WriteString(fmt.Sprintf(" AND %s IN (%s)", spec.Column, placeholders))
			args = append(args, list...)
			continue
		}

		if c.Strict {
			coerced, ok := coerce(value, spec.Kind)
			if !ok {
				logger.Sugar().Warnf("valor invalido para %s (%v), ignorando campo", key, value)
				continue
			}
			value = coerced
		}

		if spec.Op == catalog.LIKE {
			sb.WriteString(fmt.Sprintf(" AND %s LIKE ?", spec.Column))
			args = append(args, "%"+fmt.Sprint(value)+"%")
			continue
		}

		sb.WriteString(fmt.Sprintf(" AND %s %s ?", spec.Column, spec.Op))
		args = append(args, value)
	}

	return Compiled{SQL: sb.String(), Args: args}
}

// coerce validates a scalar against the expected kind, converting string
// renditions of numbers and booleans along the way.
func coerce(v any, kind catalog.Kind) (any, bool) {
	switch kind {
	case catalog.Int:
		switch val := v.(type) {
		case int64:
			return val, true
		case float64:
			if val == float64(int64(val)) {
				return int64(val), true
			}
			return nil, false
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
			if err != nil {
				return nil, false
			}
			return n, true
		}
		return nil, false
	case catalog.Decimal:
		switch val := v.(type) {
		case int64:
			return val, true
		case float64:
			return val, true
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, false
			}
			return f, true
		}
		return nil, false
	case catalog.Bool:
		switch val := v.(type) {
		case bool:
			return val, true
		case int64:
			if val == 0 || val == 1 {
				return val, true
			}
			return nil, false
		case string:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return nil, false
			}
			return b, true
		}
		return nil, false
	case catalog.Date:
		val, ok := v.(string)
		if !ok {
			return nil, false
		}
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if _, err := time.Parse(layout, val); err == nil {
				return val, true
			}
		}
		return nil, false
	default:
		return v, true
	}
}
