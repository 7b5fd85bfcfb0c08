package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier for correlating the log
// entries of one request. Falls back to a random v4 id.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewRandomToken returns an unpredictable token suitable for anti-forgery
// cookies.
func NewRandomToken() (string, error) {
	v4, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return v4.String(), nil
}
