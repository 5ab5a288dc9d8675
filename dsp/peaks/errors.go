package peaks

import "errors"

// Errors returned by the peak-finding functions.
var (
	ErrInvalidWidthRange        = errors.New("peaks: invalid width range")
	ErrInvalidWindows           = errors.New("peaks: windows must be positive and ascending")
	ErrScaleMismatch            = errors.New("peaks: scale count mismatch")
	ErrNoiseLength              = errors.New("peaks: noise estimate length mismatch")
	ErrPositionRange            = errors.New("peaks: position outside signal")
	ErrUnknownHeightMethod      = errors.New("peaks: unknown height method")
	ErrUnknownIntegrationMethod = errors.New("peaks: unknown integration method")
	ErrUnknownEdgePolicy        = errors.New("peaks: unknown edge policy")
	ErrUnknownBaseMethod        = errors.New("peaks: unknown base method")
	ErrEdgeMismatch             = errors.New("peaks: lefts and rights differ in length")
	ErrInvalidLag               = errors.New("peaks: z-score lag must be > 0")
	ErrInvalidBins              = errors.New("peaks: invalid bin layout")
)
