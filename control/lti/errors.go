package lti

import "errors"

// Errors returned by system constructors and evaluators.
var (
	ErrInvalidSystem = errors.New("lti: invalid system")
	ErrNotSISO       = errors.New("lti: system is not single-input single-output")
	ErrSingular      = errors.New("lti: response is singular")
	ErrNotOnGrid     = errors.New("lti: frequency not in tabulated grid")
)
