package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, body string) *Params {
	t.Helper()
	p, err := ParseParams([]byte(body))
	require.NoError(t, err)
	return p
}

func TestNormalize_DropsEmptyValues(t *testing.T) {
	raw := parse(t, `{
		"marca": "Toyota",
		"modelo": "",
		"color": "null",
		"placa": "undefined",
		"serie": null,
		"ids": []
	}`)

	n := Normalize("producto", raw)

	assert.Equal(t, []string{"marca"}, n.Filters.Keys())
}

func TestNormalize_ExtractsControlKeys(t *testing.T) {
	raw := parse(t, `{"max_results": 25, "fields": ["marca"], "include_photos": true, "anio": 2020}`)

	n := Normalize("producto", raw)

	assert.Equal(t, 25, n.MaxResults)
	assert.Equal(t, []string{"marca"}, n.Projection)
	assert.True(t, n.IncludePhotos)
	assert.Equal(t, []string{"anio"}, n.Filters.Keys())
}

func TestNormalize_MaxResultsLenient(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"numeric string": {`{"max_results": "25"}`, 25},
		"negative":       {`{"max_results": -5}`, 0},
		"zero":           {`{"max_results": 0}`, 0},
		"fractional":     {`{"max_results": 2.5}`, 0},
		"garbage":        {`{"max_results": "muchos"}`, 0},
		"boolean":        {`{"max_results": true}`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			n := Normalize("producto", parse(t, tc.body))
			assert.Equal(t, tc.want, n.MaxResults)
			// the control key never leaks into the filter set
			_, ok := n.Filters.Get("max_results")
			assert.False(t, ok)
		})
	}
}

func TestNormalize_ProjectionDropsUnknownFields(t *testing.T) {
	n := Normalize("producto", parse(t, `{"fields": ["marca", "no_such_field"]}`))

	assert.Equal(t, []string{"marca"}, n.Projection)
	assert.Equal(t, "marca", n.SelectColumns(""))
	assert.Equal(t, "p.marca", n.SelectColumns("p"))
}

func TestNormalize_ProjectionFallsBackToAllColumns(t *testing.T) {
	n := Normalize("producto", parse(t, `{"fields": ["nada", "tampoco"]}`))

	assert.Nil(t, n.Projection)
	assert.Equal(t, "*", n.SelectColumns(""))
	assert.Equal(t, "p.*", n.SelectColumns("p"))
	assert.Equal(t, "all", n.FieldsSelected())
}

func TestNormalize_UnknownEntityHasNoProjectableFields(t *testing.T) {
	n := Normalize("inexistente", parse(t, `{"fields": ["marca"]}`))

	assert.Nil(t, n.Projection)
}

func TestNormalize_IncludePhotosStringForm(t *testing.T) {
	n := Normalize("ventas", parse(t, `{"include_photos": "true"}`))
	assert.True(t, n.IncludePhotos)

	n = Normalize("ventas", parse(t, `{"include_photos": "yes"}`))
	assert.False(t, n.IncludePhotos)
}
