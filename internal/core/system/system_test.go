package system

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlot/motorlot/internal/storage/mysql"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(NewRepository(&mysql.Client{DB: db})), mock
}

func TestTableStructure_RejectsInvalidNamesWithoutQuerying(t *testing.T) {
	svc, mock := newMockService(t)

	for _, name := range []string{"", "  ", "producto; DROP TABLE ventas", "1tabla", "tabla-x", "tabla fotos"} {
		_, err := svc.TableStructure(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidTableName, "name %q", name)
	}

	// no expectations were set: any query would fail the mock
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableStructure_DescribesTable(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("DESCRIBE producto").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment").
			AddRow("marca", "varchar(100)", "YES", "", []byte("Toyota"), ""))

	columns, err := svc.TableStructure(context.Background(), " producto ")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "id", columns[0].Field)
	assert.Nil(t, columns[0].Default)
	require.NotNil(t, columns[1].Default)
	assert.Equal(t, "Toyota", *columns[1].Default)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableStructure_UnknownTable(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("DESCRIBE fantasma").
		WillReturnError(assert.AnError)

	_, err := svc.TableStructure(context.Background(), "fantasma")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTableName)
}

func TestTableStructure_EmptyDescribeMeansNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("DESCRIBE vacia").
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

	_, err := svc.TableStructure(context.Background(), "vacia")
	assert.ErrorIs(t, err, ErrTableNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTables(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SHOW TABLES").
		WillReturnRows(sqlmock.NewRows([]string{"Tables_in_db"}).
			AddRow("estados").AddRow("producto").AddRow("ventas").AddRow("ventas_fotos"))

	tables, err := svc.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"estados", "producto", "ventas", "ventas_fotos"}, tables)

	assert.NoError(t, mock.ExpectationsWereMet())
}
