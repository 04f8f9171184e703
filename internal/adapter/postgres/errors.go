package postgres

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"adwallet/internal/core/domain"
)

// classify marks errors that may succeed on retry as domain.ErrTransient:
// lost or refused connections, timeouts, serialization failures and
// deadlocks. Everything else is returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return domain.Transient(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"), // connection exception
			pgErr.Code == "40001", // serialization_failure
			pgErr.Code == "40P01", // deadlock_detected
			pgErr.Code == "57P01": // admin_shutdown
			return domain.Transient(err)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return domain.Transient(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.Transient(err)
	}
	return err
}
