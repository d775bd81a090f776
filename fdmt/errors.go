package fdmt

import "errors"

// Errors returned by block construction and transform validation.
var (
	ErrBandOrder             = errors.New("fdmt: upper band edge must not be below lower band edge")
	ErrDMRange               = errors.New("fdmt: dm range must satisfy 0 <= dm min <= dm max")
	ErrInvalidSampleInterval = errors.New("fdmt: sampling interval must be positive")
	ErrNoChannels            = errors.New("fdmt: block must contain at least one channel")
	ErrNoSamples             = errors.New("fdmt: block must contain at least one time sample")
	ErrSizeMismatch          = errors.New("fdmt: data length does not match channel and sample counts")
)
