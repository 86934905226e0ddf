package toolbox

import "errors"

var (
	ErrUnknownCategory         = errors.New("unknown conversion category")
	ErrUnknownUnit             = errors.New("unknown unit for category")
	ErrDegenerateInterpolation = errors.New("x1 and x2 cannot be equal")
	ErrUnknownProduct          = errors.New("unknown product type")
	ErrInvalidDensity          = errors.New("density must be greater than zero")
	ErrInvalidDiameter         = errors.New("inside diameter must be greater than zero")
	ErrResultOutOfRange        = errors.New("result is not a finite number")
	ErrNoCalibrationRuns       = errors.New("at least one calibration run is required")
)
