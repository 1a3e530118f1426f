package shared

import (
	"context"

	"github.com/steven-the-qa/coach-wire/internal/infra/db"
)

// TxManager scopes a unit of work to one database transaction. The retry
// variant re-runs the closure on serialization failures and deadlocks, so
// closures must be side-effect free outside the transaction.
type TxManager interface {
	Within(ctx context.Context, fn func(tx db.DBTX) error) error
	WithinRetry(ctx context.Context, fn func(tx db.DBTX) error) error
}
