package assay

import "errors"

// Request-level errors. Field-level problems (missing or non-numeric
// readings) are never errors; they degrade the affected result fields
// and are recorded as notes.
var (
	// ErrInvalidProtocolSetting rejects a non-positive final volume or a
	// negative target concentration outright.
	ErrInvalidProtocolSetting = errors.New("invalid protocol setting")
	// ErrUnresolvedColumn reports a required column that could not be
	// reconciled in batch mode.
	ErrUnresolvedColumn = errors.New("unresolved column")
)
