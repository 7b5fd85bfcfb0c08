package synthesizer

import "errors"

var (
	// ErrSynthesisFailed wraps every upstream failure returned by Generate.
	ErrSynthesisFailed = errors.New("image synthesis failed")

	ErrUpstreamStatus = errors.New("unexpected upstream status")
	ErrEmptyResponse  = errors.New("empty upstream response")
	ErrNoImage        = errors.New("upstream response contains no image")
)
