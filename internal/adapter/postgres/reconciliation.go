package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.ReconciliationLog = (*ReconciliationLog)(nil)

// ReconciliationLog persists discrepancies left by failed compensations.
type ReconciliationLog struct {
	pool *pgxpool.Pool
}

// NewReconciliationLog returns a log backed by the reconciliation_flags table.
func NewReconciliationLog(pool *pgxpool.Pool) *ReconciliationLog {
	return &ReconciliationLog{pool: pool}
}

// Record inserts d. Recording the same discrepancy twice is a no-op.
func (r *ReconciliationLog) Record(ctx context.Context, d domain.Discrepancy) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reconciliation_flags
		    (id, operation_id, operation, campaign_id, amount, reason, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		d.ID, d.OperationID, string(d.Operation), d.CampaignID, d.Amount.String(), d.Reason, d.Resolved, d.CreatedAt)
	if err != nil {
		return classify(fmt.Errorf("record discrepancy: %w", err))
	}
	return nil
}

// List returns all discrepancies, oldest first.
func (r *ReconciliationLog) List(ctx context.Context) ([]domain.Discrepancy, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, operation_id, operation, campaign_id, amount, reason, resolved, created_at
		FROM reconciliation_flags
		ORDER BY created_at, id`)
	if err != nil {
		return nil, classify(fmt.Errorf("list discrepancies: %w", err))
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Discrepancy, error) {
		var (
			d  domain.Discrepancy
			op string
		)
		err := row.Scan(&d.ID, &d.OperationID, &op, &d.CampaignID, &d.Amount, &d.Reason, &d.Resolved, &d.CreatedAt)
		d.Operation = domain.Operation(op)
		return d, err
	})
	if err != nil {
		return nil, classify(fmt.Errorf("scan discrepancies: %w", err))
	}
	return out, nil
}

// Resolve sets the resolved flag on the discrepancy with the given id.
func (r *ReconciliationLog) Resolve(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reconciliation_flags SET resolved = true WHERE id = $1`, id)
	if err != nil {
		return classify(fmt.Errorf("resolve discrepancy: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.DiscrepancyNotFound(id)
	}
	return nil
}
