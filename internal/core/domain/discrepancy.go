package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation names a funding operation in logs and reconciliation records.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Discrepancy records a ledger movement whose compensation could not be
// applied. Amount is the signed wallet adjustment that is still owed:
// positive means the wallet must be debited, negative means credited.
type Discrepancy struct {
	ID          uuid.UUID
	OperationID uuid.UUID
	Operation   Operation
	CampaignID  int64
	Amount      decimal.Decimal
	Reason      string
	Resolved    bool
	CreatedAt   time.Time
}
