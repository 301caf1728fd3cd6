package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "ux_stock_left_date_item"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestSchemaEmbebido(t *testing.T) {
	assert.Contains(t, schemaSQL, "ux_stock_left_date_item")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS stock_purchases")
}

func TestSchemaEmbebido_TotalSinEscalaFija(t *testing.T) {
	assert.Contains(t, schemaSQL, "weight      NUMERIC(12, 3)")
	assert.Contains(t, schemaSQL, "rate_per_kg NUMERIC(12, 2)")
	assert.Contains(t, schemaSQL, "total_cost  NUMERIC NOT NULL")
	assert.NotContains(t, schemaSQL, "NUMERIC(14, 2)")
}
