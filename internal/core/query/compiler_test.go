package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motorlot/motorlot/internal/core/catalog"
)

const productoBase = "SELECT * FROM producto WHERE 1=1"

func compileProducto(t *testing.T, body string, strict bool) Compiled {
	t.Helper()
	return Compiler{Strict: strict}.Compile(productoBase, parse(t, body), catalog.FilterSpecs("producto"))
}

func TestCompile_LikeAndRange(t *testing.T) {
	c := compileProducto(t, `{"marca": "Toyota", "anio_desde": 2015}`, false)

	assert.Equal(t, productoBase+" AND marca LIKE ? AND anio >= ?", c.SQL)
	assert.Equal(t, []any{"%Toyota%", int64(2015)}, c.Args)
}

func TestCompile_UnknownKeysLeaveBaseUntouched(t *testing.T) {
	c := compileProducto(t, `{"desconocido": "x", "otro": 1}`, false)

	assert.Equal(t, productoBase, c.SQL)
	assert.Empty(t, c.Args)
}

func TestCompile_InExpandsPlaceholders(t *testing.T) {
	c := compileProducto(t, `{"ids": [1, 2, 3]}`, false)

	assert.Equal(t, productoBase+" AND id IN (?,?,?)", c.SQL)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, c.Args)
}

func TestCompile_EmptyInSkipsKey(t *testing.T) {
	// an empty ids array survives normalization only if passed directly;
	// either way the compiler must not emit a clause for it
	p := NewParams()
	p.Set("ids", []any{})
	p.Set("marca", "Kia")

	c := Compiler{}.Compile(productoBase, p, catalog.FilterSpecs("producto"))

	assert.Equal(t, productoBase+" AND marca LIKE ?", c.SQL)
	assert.Equal(t, []any{"%Kia%"}, c.Args)
}

func TestCompile_NonArrayForInSkipsKey(t *testing.T) {
	c := compileProducto(t, `{"ids": 5}`, false)

	assert.Equal(t, productoBase, c.SQL)
	assert.Empty(t, c.Args)
}

func TestCompile_ClauseOrderFollowsInsertionOrder(t *testing.T) {
	a := compileProducto(t, `{"anio": 2020, "color": "Rojo"}`, false)
	b := compileProducto(t, `{"color": "Rojo", "anio": 2020}`, false)

	assert.Equal(t, productoBase+" AND anio = ? AND color LIKE ?", a.SQL)
	assert.Equal(t, productoBase+" AND color LIKE ? AND anio = ?", b.SQL)
}

func TestCompile_RangeAndExactOnSameColumn(t *testing.T) {
	c := compileProducto(t, `{"precio_venta": 150000, "precio_venta_minimo": 100000}`, false)

	assert.Equal(t, productoBase+" AND precio_venta = ? AND precio_venta >= ?", c.SQL)
	assert.Equal(t, []any{int64(150000), int64(100000)}, c.Args)
}

func TestCompile_LenientBindsValueAsReceived(t *testing.T) {
	c := compileProducto(t, `{"anio": "no-es-un-anio"}`, false)

	assert.Equal(t, productoBase+" AND anio = ?", c.SQL)
	assert.Equal(t, []any{"no-es-un-anio"}, c.Args)
}

func TestCompile_StrictSkipsUncoercibleValues(t *testing.T) {
	c := compileProducto(t, `{"anio": "no-es-un-anio", "marca": "Toyota"}`, true)

	assert.Equal(t, productoBase+" AND marca LIKE ?", c.SQL)
	assert.Equal(t, []any{"%Toyota%"}, c.Args)
}

func TestCompile_StrictCoercesNumericStrings(t *testing.T) {
	c := compileProducto(t, `{"anio": "2019", "habilitado": "true"}`, true)

	assert.Equal(t, productoBase+" AND anio = ? AND habilitado = ?", c.SQL)
	assert.Equal(t, []any{int64(2019), true}, c.Args)
}

func TestCompile_VentasScenario(t *testing.T) {
	base := "SELECT * FROM ventas WHERE 1=1"
	c := Compiler{}.Compile(base, parse(t, `{"productos_ids": [10, 20], "fecha_desde": "2024-01-01"}`), catalog.FilterSpecs("ventas"))

	assert.Equal(t, base+" AND id_producto IN (?,?) AND fecha >= ?", c.SQL)
	assert.Equal(t, []any{int64(10), int64(20), "2024-01-01"}, c.Args)
}

func TestRenderLimit(t *testing.T) {
	frag, args := RenderLimit(50)
	assert.Equal(t, " LIMIT ?", frag)
	assert.Equal(t, []any{50}, args)

	for _, n := range []int{0, -1, -100} {
		frag, args = RenderLimit(n)
		assert.Empty(t, frag)
		assert.Nil(t, args)
	}
}
