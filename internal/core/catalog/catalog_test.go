package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownEntities(t *testing.T) {
	for _, entity := range []string{"producto", "ventas", "estados"} {
		c, ok := Lookup(entity)
		assert.True(t, ok, entity)
		assert.NotEmpty(t, c.Available, entity)
		assert.NotEmpty(t, c.Filters, entity)
		assert.Equal(t, "id", c.DefaultOrder, entity)
	}
}

func TestUnknownEntityDegradesToEmpty(t *testing.T) {
	_, ok := Lookup("clientes")
	assert.False(t, ok)

	assert.Empty(t, AvailableFields("clientes"))
	assert.Empty(t, FilterSpecs("clientes"))
	assert.False(t, IsProjectable("clientes", "id"))
	assert.Equal(t, "id", DefaultOrder("clientes"))
}

func TestIdsFilterableButNotProjectable(t *testing.T) {
	for _, entity := range []string{"producto", "ventas", "estados"} {
		spec, ok := FilterSpecs(entity)["ids"]
		assert.True(t, ok, entity)
		assert.Equal(t, IN, spec.Op, entity)
		assert.Equal(t, "id", spec.Column, entity)

		assert.False(t, IsProjectable(entity, "ids"), entity)
	}
}

func TestProductoOperatorSelection(t *testing.T) {
	specs := FilterSpecs("producto")

	cases := map[string]struct {
		column string
		op     Operator
	}{
		"marca":               {"marca", LIKE},
		"anio":                {"anio", EQ},
		"anio_desde":          {"anio", GTE},
		"anio_hasta":          {"anio", LTE},
		"km_minimo":           {"km", GTE},
		"km_maximo":           {"km", LTE},
		"precio_venta_minimo": {"precio_venta", GTE},
		"precio_venta_maximo": {"precio_venta", LTE},
		"habilitado":          {"habilitado", EQ},
	}
	for key, want := range cases {
		spec, ok := specs[key]
		assert.True(t, ok, key)
		assert.Equal(t, want.column, spec.Column, key)
		assert.Equal(t, want.op, spec.Op, key)
	}
}

func TestVentasDateRangeSplitsOnSameColumn(t *testing.T) {
	specs := FilterSpecs("ventas")

	assert.Equal(t, FieldSpec{Column: "fecha", Op: GTE, Kind: Date}, specs["fecha_desde"])
	assert.Equal(t, FieldSpec{Column: "fecha", Op: LTE, Kind: Date}, specs["fecha_hasta"])
	assert.Equal(t, "id_producto", specs["producto_id"].Column)
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "=", EQ.String())
	assert.Equal(t, "IN", IN.String())
	assert.Equal(t, "LIKE", LIKE.String())
	assert.Equal(t, ">=", GTE.String())
	assert.Equal(t, "<=", LTE.String())
	assert.Equal(t, "!=", NEQ.String())
}

func TestStats(t *testing.T) {
	perEntity, operators := Stats()

	assert.Len(t, perEntity, 3)
	assert.Equal(t, len(productoAvailable), perEntity["producto"].AvailableFields)
	assert.Equal(t, len(productoFilters), perEntity["producto"].SearchableFields)
	assert.Contains(t, operators, "LIKE")
	assert.Contains(t, operators, "IN")
}
