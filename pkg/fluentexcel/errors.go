package fluentexcel

import "errors"

// Configuration errors surfaced by MappingBuilder.Build and Profile.Build.
// Type mismatches between constants/defaults and the mapped field cannot be
// detected here; they surface as conversion errors in the consuming engine.
var (
	ErrInvalidIndex    = errors.New("fluentexcel: column index must be positive")
	ErrDuplicateIndex  = errors.New("fluentexcel: duplicate column index")
	ErrFieldNotFound   = errors.New("fluentexcel: field not found on target type")
	ErrUnknownResolver = errors.New("fluentexcel: resolver name not registered")
	ErrNilResolver     = errors.New("fluentexcel: resolver must not be nil")
)
