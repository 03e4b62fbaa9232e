// Package catalog owns the closed vocabulary of filterable and projectable
// fields per searchable entity. The tables are fixed at startup and read
// concurrently without locking.
package catalog

// Operator is the comparison a filter key compiles to.
type Operator int

const (
	EQ Operator = iota
	IN
	LIKE
	GTE
	LTE
	NEQ
)

func (o Operator) String() string {
	switch o {
	case EQ:
		return "="
	case IN:
		return "IN"
	case LIKE:
		return "LIKE"
	case GTE:
		return ">="
	case LTE:
		return "<="
	case NEQ:
		return "!="
	default:
		return "?"
	}
}

// Kind is the value type a filter column expects. Only consulted when the
// compiler runs in strict mode.
type Kind int

const (
	Text Kind = iota
	Int
	Decimal
	Bool
	Date
)

// FieldSpec binds a logical filter key to one column and one operator.
type FieldSpec struct {
	Column string
	Op     Operator
	Kind   Kind
}

// Catalog is the per-entity registry: projectable output columns plus the
// accepted filter keys. The two lists are independent; a key can be
// filterable but not projectable (ids) and vice versa.
type Catalog struct {
	Available    []string
	Filters      map[string]FieldSpec
	DefaultOrder string
}

var registry = map[string]Catalog{
	"producto": {
		Available:    productoAvailable,
		Filters:      productoFilters,
		DefaultOrder: "id",
	},
	"ventas": {
		Available:    ventasAvailable,
		Filters:      ventasFilters,
		DefaultOrder: "id",
	},
	"estados": {
		Available:    estadosAvailable,
		Filters:      estadosFilters,
		DefaultOrder: "id",
	},
}

// Lookup returns the catalog for an entity. Unknown entities report ok=false
// but callers that only need fields can use the graceful-empty accessors.
func Lookup(entity string) (Catalog, bool) {
	c, ok := registry[entity]
	return c, ok
}

// AvailableFields returns the projectable columns for an entity, empty for
// unknown entities.
func AvailableFields(entity string) []string {
	return registry[entity].Available
}

// FilterSpecs returns the filter key table for an entity, empty for unknown
// entities.
func FilterSpecs(entity string) map[string]FieldSpec {
	return registry[entity].Filters
}

// DefaultOrder returns the entity's default sort column, "id" when unknown.
func DefaultOrder(entity string) string {
	if c, ok := registry[entity]; ok {
		return c.DefaultOrder
	}
	return "id"
}

func IsProjectable(entity, field string) bool {
	for _, f := range registry[entity].Available {
		if f == field {
			return true
		}
	}
	return false
}

// EntityStats summarizes one entity's catalog.
type EntityStats struct {
	AvailableFields  int `json:"campos_disponibles"`
	SearchableFields int `json:"campos_buscables"`
}

// Stats reports catalog sizes and the distinct operators in use, for the
// introspection surface.
func Stats() (map[string]EntityStats, []string) {
	perEntity := make(map[string]EntityStats, len(registry))
	seen := make(map[string]bool)
	var operators []string

	for name, c := range registry {
		perEntity[name] = EntityStats{
			AvailableFields:  len(c.Available),
			SearchableFields: len(c.Filters),
		}
		for _, spec := range c.Filters {
			op := spec.Op.String()
			if !seen[op] {
				seen[op] = true
				operators = append(operators, op)
			}
		}
	}
	return perEntity, operators
}
