package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/models"
)

var userColumns = []string{"id", "username", "password", "email", "provider", "provider_id", "created_at"}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts user and returns it with the server-assigned id. CreatedAt
// is set to the current time when zero.
//
// Error handling:
//   - unique violation on username -> [ErrUsernameTaken]
//   - unique violation on email    -> [ErrEmailTaken]
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder.
		Insert(user.TableName()).
		Columns("username", "password", "email", "provider", "provider_id", "created_at").
		Values(user.Username, user.PasswordHash, user.Email, string(user.Provider), user.ProviderID, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.Create").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return models.User{}, r.wrapError(ctx, "userRepository.Create", err)
	}

	return user, nil
}

// FindByID returns the user with the given id or [ErrNotFound].
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByID", sq.Eq{"id": id})
}

// FindByUsername returns the user with the given username or [ErrNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByUsername", sq.Eq{"username": username})
}

// FindByEmail returns the user with the given email or [ErrNotFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "userRepository.FindByEmail", sq.Eq{"email": email})
}

// ExistsByUsername reports whether the username is taken.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("COUNT(*)").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.ExistsByUsername").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, r.wrapError(ctx, "userRepository.ExistsByUsername", err)
	}

	return count > 0, nil
}

// Update overwrites every mutable column of the user identified by user.ID.
func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("password", user.PasswordHash).
		Set("email", user.Email).
		Set("provider", string(user.Provider)).
		Set("provider_id", user.ProviderID).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.Update").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return models.User{}, r.wrapError(ctx, "userRepository.Update", err)
	}

	if err = requireAffected(result); err != nil {
		return models.User{}, fmt.Errorf("userRepository.Update: %w", err)
	}

	return user, nil
}

func (r *userRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Provider,
		&user.ProviderID,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, r.wrapError(ctx, op, err)
	}

	return user, nil
}
