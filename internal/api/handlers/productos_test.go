package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlot/motorlot/internal/core/producto"
	"github.com/motorlot/motorlot/internal/core/query"
	"github.com/motorlot/motorlot/internal/core/validation"
	"github.com/motorlot/motorlot/internal/storage/mysql"
)

func newProductoTestRig(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := producto.NewRepository(&mysql.Client{DB: db}, query.Compiler{})
	handler := NewProductoHandler(producto.NewService(repo), validation.NewValidator(), false)

	engine := gin.New()
	engine.POST("/api/productos/search", handler.Search)
	engine.POST("/api/productos/estado-venta", handler.EstadoVenta)
	return engine, mock
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestProductoSearch_FilteredMatch(t *testing.T) {
	engine, mock := newProductoTestRig(t)

	mock.ExpectQuery("SELECT * FROM producto WHERE 1=1 AND marca LIKE ? ORDER BY id DESC").
		WithArgs("%Toyota%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "marca"}).AddRow(int64(1), "Toyota"))

	w := postJSON(engine, "/api/productos/search", `{"marca": "Toyota"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(1), body["count"])
	assert.Contains(t, body, "available_fields")
	assert.Nil(t, body["max_results_applied"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoSearch_FilteredNoRowsIs404(t *testing.T) {
	engine, mock := newProductoTestRig(t)

	mock.ExpectQuery("SELECT * FROM producto WHERE 1=1 AND marca LIKE ? ORDER BY id DESC").
		WithArgs("%Ferrari%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := postJSON(engine, "/api/productos/search", `{"marca": "Ferrari"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "fail", decodeBody(t, w)["status"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoSearch_UnfilteredEmptyIs200(t *testing.T) {
	engine, mock := newProductoTestRig(t)

	mock.ExpectQuery("SELECT * FROM producto WHERE 1=1 ORDER BY id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := postJSON(engine, "/api/productos/search", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Todos los productos", body["message"])
	assert.Equal(t, float64(0), body["count"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstadoVenta_RequiresCriteria(t *testing.T) {
	engine, mock := newProductoTestRig(t)

	w := postJSON(engine, "/api/productos/estado-venta", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Se requiere al menos un parámetro de búsqueda.", decodeBody(t, w)["message"])

	// empty-value filters normalize away and do not count as criteria
	w = postJSON(engine, "/api/productos/estado-venta", `{"marca": ""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
