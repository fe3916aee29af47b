package errors

import "errors"

// Shared sentinels used across repositories and services.
var (
	// ErrOptimisticLock indicates the row was modified by another operation.
	ErrOptimisticLock = errors.New("record was modified by another operation, refresh and retry")

	// ErrDuplicateLedgerEntry indicates a second earnings ledger posting for
	// the same source row; raised by the unique index on
	// earnings_ledger(source_table, source_id).
	ErrDuplicateLedgerEntry = errors.New("ledger entry already posted for this source")

	// ErrDateTaken indicates the pegawai already holds an active transport
	// allocation on that calendar date; raised by the partial unique index
	// on task_transport_allocations(user_id, allocation_date).
	ErrDateTaken = errors.New("an active transport allocation already exists on this date")
)
