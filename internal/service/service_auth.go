package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

// maxUsernameSuffix bounds the search for a free federated username.
const maxUsernameSuffix = 1000

// authService is the concrete implementation of AuthService.
// Passwords are hashed with bcrypt; uniqueness of username and email is
// left to the database constraints.
type authService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. The service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// RegisterUser creates a LOCAL account.
//
// Returns the persisted user or:
//   - ErrUsernameExists if the username is taken (also when a concurrent
//     registration wins the race).
//   - ErrEmailExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if exists {
		log.Debug().Str("username", req.Username).Msg("username already exists")
		return models.User{}, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	hashed := string(hash)

	user, err := a.userRepository.Create(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hashed,
		Provider:     models.ProviderLocal,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return models.User{}, ErrUsernameExists
		case errors.Is(err, store.ErrEmailTaken):
			return models.User{}, ErrEmailExists
		default:
			log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
			return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
		}
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates a LOCAL user. Unknown users, federated users and wrong
// passwords all yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug().Str("username", req.Username).Msg("unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.PasswordHash == nil {
		log.Debug().Int64("user_id", user.ID).Msg("password login attempted for federated user")
		return models.User{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// FindOrCreateFederated implements sign-in through an identity provider.
//
//   - existing GOOGLE user: returned; the display name becomes the username
//     when it is free, and the provider subject is recorded.
//   - existing LOCAL user: ErrProviderConflict.
//   - no user: a GOOGLE user without password is created. Its username is the
//     display name (or the email's local part), suffixed with a number when
//     taken.
func (a *authService) FindOrCreateFederated(ctx context.Context, identity models.FederatedIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		return a.refreshFederated(ctx, user, identity)
	case !errors.Is(err, store.ErrNotFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	base := federatedUsername(identity.Name)
	if base == "" {
		base = federatedUsername(identity.Email)
	}

	for suffix := 0; suffix < maxUsernameSuffix; suffix++ {
		username := base
		if suffix > 0 {
			username = base + strconv.Itoa(suffix)
		}

		taken, err := a.userRepository.ExistsByUsername(ctx, username)
		if err != nil {
			return models.User{}, fmt.Errorf("username lookup failed: %w", err)
		}
		if taken {
			continue
		}

		user, err = a.userRepository.Create(ctx, models.User{
			Username:   username,
			Email:      identity.Email,
			Provider:   models.ProviderGoogle,
			ProviderID: optional(identity.Subject),
		})
		switch {
		case err == nil:
			log.Info().Int64("user_id", user.ID).Msg("federated user created")
			return user, nil
		case errors.Is(err, store.ErrEmailTaken):
			// created concurrently by another sign-in with the same email
			return a.FindOrCreateFederated(ctx, identity)
		case errors.Is(err, store.ErrUsernameTaken):
			continue
		default:
			return models.User{}, fmt.Errorf("federated user creation failed: %w", err)
		}
	}

	return models.User{}, fmt.Errorf("%w: no free username for %q", ErrUsernameExists, base)
}

func (a *authService) refreshFederated(ctx context.Context, user models.User, identity models.FederatedIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Provider != models.ProviderGoogle {
		log.Info().Int64("user_id", user.ID).Str("provider", string(user.Provider)).Msg("federated login for non-federated account")
		return models.User{}, ErrProviderConflict
	}

	updated := user
	if name := federatedUsername(identity.Name); name != "" && name != user.Username {
		taken, err := a.userRepository.ExistsByUsername(ctx, name)
		if err != nil {
			return models.User{}, fmt.Errorf("username lookup failed: %w", err)
		}
		if !taken {
			updated.Username = name
		}
	}
	if identity.Subject != "" && (user.ProviderID == nil || *user.ProviderID != identity.Subject) {
		updated.ProviderID = optional(identity.Subject)
	}

	if updated.Username == user.Username && updated.ProviderID == user.ProviderID {
		return user, nil
	}

	saved, err := a.userRepository.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			log.Debug().Err(err).Int64("user_id", user.ID).Msg("federated profile not refreshed")
			return user, nil
		}
		return models.User{}, fmt.Errorf("federated user update failed: %w", err)
	}

	return saved, nil
}

func (a *authService) LoadForAuthentication(ctx context.Context, principal string) (models.User, error) {
	user, err := a.userRepository.FindByUsername(ctx, principal)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	user, err = a.userRepository.FindByEmail(ctx, principal)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

// federatedUsername derives a username from a display name or an email. The
// result never contains '@', so it cannot shadow the email subject of
// federated tokens.
func federatedUsername(s string) string {
	local, _, _ := strings.Cut(s, "@")
	return strings.TrimSpace(local)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
