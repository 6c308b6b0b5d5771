package apperror

import "errors"

// Startup failures. Any of these ends the process with a non-zero status.
var (
	ErrWindow        = errors.New("unable to create window")
	ErrNoAdapter     = errors.New("could not find any suitable GPU adapter")
	ErrDeviceRequest = errors.New("could not request device")
)

// Frame failures.
var (
	ErrSurfaceOutdated = errors.New("outdated or lost surface, needs to be reconfigured")
	ErrSurface         = errors.New("surface error")
)

// Rejected input. The round state machine treats these as no-ops.
var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrRoundOver        = errors.New("round is already over")
	ErrNoAvailableMoves = errors.New("no available moves")
)
