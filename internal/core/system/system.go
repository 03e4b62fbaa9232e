// Package system exposes store schema introspection: table listing and
// per-table structure. Identifiers cannot be bind-parameterized, so table
// names are allow-listed by regex before any SQL is built.
package system

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/motorlot/motorlot/internal/storage/mysql"
)

var (
	ErrInvalidTableName = errors.New("invalid table name")
	ErrTableNotFound    = errors.New("table not found")
)

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Column is one DESCRIBE row with lowercased field names for the envelope.
type Column struct {
	Field   string  `json:"field"`
	Type    string  `json:"type"`
	Null    string  `json:"null"`
	Key     string  `json:"key"`
	Default *string `json:"default"`
	Extra   string  `json:"extra"`
}

type Repository struct {
	db *mysql.Client
}

func NewRepository(db *mysql.Client) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.db.DB.QueryContext(ctx, "SHOW TABLES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *Repository) Describe(ctx context.Context, tableName string) ([]Column, error) {
	// tableName is validated upstream; DESCRIBE cannot take placeholders.
	rows, err := r.db.DB.QueryContext(ctx, "DESCRIBE "+tableName)
	if err != nil {
		if isUnknownTable(err) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		var def []byte
		if err := rows.Scan(&col.Field, &col.Type, &col.Null, &col.Key, &def, &col.Extra); err != nil {
			return nil, err
		}
		if def != nil {
			v := string(def)
			col.Default = &v
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// isUnknownTable matches MariaDB error 1146 without depending on the driver
// error type.
func isUnknownTable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "1146") || strings.Contains(msg, "doesn't exist")
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Tables(ctx context.Context) ([]string, error) {
	return s.repo.Tables(ctx)
}

func (s *Service) TableStructure(ctx context.Context, tableName string) ([]Column, error) {
	tableName = strings.TrimSpace(tableName)
	if tableName == "" || !tableNameRe.MatchString(tableName) {
		return nil, ErrInvalidTableName
	}

	columns, err := s.repo.Describe(ctx, tableName)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, ErrTableNotFound
	}
	return columns, nil
}
