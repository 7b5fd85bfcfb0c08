package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrProviderConflict   = errors.New("an account with this email already exists; sign in with username and password")

	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrNotFound is wrapped by every "entity not found" error of the package.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrCampaignNotFound = fmt.Errorf("campaign %w", ErrNotFound)
	ErrAssetNotFound    = fmt.Errorf("asset %w", ErrNotFound)
)
