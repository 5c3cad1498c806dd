package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements mirror the postgres migrations. Amounts are TEXT so decimals keep
// their exact representation; timestamps are fixed-width UTC TEXT so they sort.
func schemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS operators (
			operator_id     TEXT PRIMARY KEY,
			name            TEXT NOT NULL,
			pin_hash        TEXT NOT NULL,
			permissions     TEXT NOT NULL DEFAULT '[]',
			is_active       INTEGER NOT NULL DEFAULT 1,
			created_at      TEXT NOT NULL,
			created_by      TEXT NOT NULL,
			last_updated_at TEXT NOT NULL,
			last_updated_by TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS shifts (
			shift_id          TEXT PRIMARY KEY,
			operator_id       TEXT NOT NULL REFERENCES operators (operator_id),
			opened_at         TEXT NOT NULL,
			closed_at         TEXT,
			opening_balance   TEXT NOT NULL CHECK (CAST(opening_balance AS REAL) >= 0),
			status            TEXT NOT NULL CHECK (status IN ('open', 'closed')),
			closing_balance   TEXT,
			expected_balance  TEXT,
			cash_sales        TEXT,
			cash_refunds      TEXT,
			cash_expenses     TEXT,
			cash_drops        TEXT,
			total_sales       TEXT,
			payment_breakdown TEXT,
			notes             TEXT,
			created_at        TEXT NOT NULL,
			created_by        TEXT NOT NULL,
			last_updated_at   TEXT NOT NULL,
			last_updated_by   TEXT NOT NULL,
			CHECK (
				(status = 'open' AND closed_at IS NULL AND closing_balance IS NULL AND payment_breakdown IS NULL)
				OR
				(status = 'closed' AND closed_at IS NOT NULL AND closing_balance IS NOT NULL
					AND expected_balance IS NOT NULL AND cash_sales IS NOT NULL AND cash_refunds IS NOT NULL
					AND cash_expenses IS NOT NULL AND cash_drops IS NOT NULL AND total_sales IS NOT NULL
					AND payment_breakdown IS NOT NULL)
			)
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_shifts_one_open_per_operator ON shifts (operator_id) WHERE status = 'open'`,
		`CREATE INDEX IF NOT EXISTS ix_shifts_operator_opened ON shifts (operator_id, opened_at DESC, shift_id DESC)`,

		`CREATE TABLE IF NOT EXISTS shift_events (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id    TEXT NOT NULL UNIQUE,
			shift_id    TEXT NOT NULL REFERENCES shifts (shift_id),
			event_type  TEXT NOT NULL,
			amount      TEXT NOT NULL,
			notes       TEXT,
			occurred_at TEXT NOT NULL,
			created_by  TEXT NOT NULL,
			CHECK (event_type <> 'cash_drop' OR CAST(amount AS REAL) > 0)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_shift_events_shift_seq ON shift_events (shift_id, seq)`,
		`CREATE TRIGGER IF NOT EXISTS trg_shift_events_no_update BEFORE UPDATE ON shift_events
		BEGIN
			SELECT RAISE(ABORT, 'shift_events is append-only');
		END`,
		`CREATE TRIGGER IF NOT EXISTS trg_shift_events_no_delete BEFORE DELETE ON shift_events
		BEGIN
			SELECT RAISE(ABORT, 'shift_events is append-only');
		END`,

		`CREATE TABLE IF NOT EXISTS sales (
			sale_id    TEXT PRIMARY KEY,
			shift_id   TEXT NOT NULL REFERENCES shifts (shift_id),
			total      TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_sales_shift ON sales (shift_id)`,
		`CREATE TABLE IF NOT EXISTS sale_payments (
			payment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			sale_id    TEXT NOT NULL REFERENCES sales (sale_id),
			method     TEXT NOT NULL,
			amount     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_sale_payments_sale ON sale_payments (sale_id)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			expense_id            TEXT PRIMARY KEY,
			shift_id              TEXT NOT NULL REFERENCES shifts (shift_id),
			amount                TEXT NOT NULL,
			paid_from_cash_drawer INTEGER NOT NULL DEFAULT 0,
			description           TEXT,
			created_at            TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS ix_expenses_shift ON expenses (shift_id)`,
	}
}

// ApplySchema creates every table, index and trigger that does not exist yet.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range schemaStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return tx.Commit()
}
