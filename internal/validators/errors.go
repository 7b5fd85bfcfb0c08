package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username must not contain '@'")
	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not a valid address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrEmptyCredential = errors.New("credential is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyPurpose    = errors.New("purpose is required")
	ErrEmptyPrompt     = errors.New("prompt is required")
	ErrTooLong         = errors.New("value is too long")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidProjectID  = errors.New("invalid project ID")
	ErrInvalidCampaignID = errors.New("invalid campaign ID")
)
