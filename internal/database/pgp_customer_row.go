package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hypernova-labs/payment-service/internal/models"
)

const pgpCustomersTable = "pgp_customers"

// pgpCustomerColumns es el orden de columnas usado en todos los RETURNING/SELECT
const pgpCustomerColumns = `id, legacy_id, pgp_code, pgp_resource_id, payer_id, currency,
	account_balance, default_payment_method, legacy_default_card, legacy_default_source,
	created_at, updated_at`

// pgpCustomerRow es la representación de una fila de pgp_customers
type pgpCustomerRow struct {
	ID                   string
	LegacyID             sql.NullInt64
	PgpCode              string
	PgpResourceID        string
	PayerID              string
	Currency             sql.NullString
	AccountBalance       sql.NullInt64
	DefaultPaymentMethod sql.NullString
	LegacyDefaultCard    sql.NullString
	LegacyDefaultSource  sql.NullString
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// scanTargets retorna los destinos de Scan en el orden de pgpCustomerColumns
func (r *pgpCustomerRow) scanTargets() []interface{} {
	return []interface{}{
		&r.ID, &r.LegacyID, &r.PgpCode, &r.PgpResourceID, &r.PayerID, &r.Currency,
		&r.AccountBalance, &r.DefaultPaymentMethod, &r.LegacyDefaultCard, &r.LegacyDefaultSource,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

// toPgpCustomer proyecta una fila al modelo, campo por campo
func toPgpCustomer(row pgpCustomerRow) *models.PgpCustomer {
	return &models.PgpCustomer{
		ID:                   row.ID,
		LegacyID:             row.LegacyID.Int64,
		PgpCode:              row.PgpCode,
		PgpResourceID:        row.PgpResourceID,
		PayerID:              row.PayerID,
		Currency:             nullStringPtr(row.Currency),
		DefaultPaymentMethod: nullStringPtr(row.DefaultPaymentMethod),
		LegacyDefaultCard:    nullStringPtr(row.LegacyDefaultCard),
		LegacyDefaultSource:  nullStringPtr(row.LegacyDefaultSource),
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}

// buildInsertPgpCustomer arma el INSERT ... RETURNING. La moneda se omite
// cuando no viene para que aplique el default de la columna.
func buildInsertPgpCustomer(in models.InsertPgpCustomerInput) (string, []interface{}) {
	columns := []string{
		"id", "pgp_code", "pgp_resource_id", "payer_id", "account_balance",
		"default_payment_method", "legacy_default_card", "legacy_default_source",
	}
	args := []interface{}{
		in.ID, in.PgpCode, in.PgpResourceID, in.PayerID, in.AccountBalance,
		in.DefaultPaymentMethod, in.LegacyDefaultCard, in.LegacyDefaultSource,
	}

	if in.Currency != nil && *in.Currency != "" {
		columns = append(columns, "currency")
		args = append(args, *in.Currency)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		pgpCustomersTable,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		pgpCustomerColumns,
	)

	return query, args
}
