package models

import "time"

// AuthProvider identifies where a user's credentials come from.
type AuthProvider string

const (
	// ProviderLocal users authenticate with a password hashed by the server.
	ProviderLocal AuthProvider = "LOCAL"
	// ProviderGoogle users authenticate with a Google identity credential and
	// never have a password hash.
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an account entity used for authentication and ownership of
// projects. The password hash is never serialized.
type User struct {
	// ID is the server-assigned unique identifier.
	ID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users and is the principal of federated logins.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. It is nil for
	// federated users.
	PasswordHash *string `json:"-"`

	// Provider is the origin of the user's credential.
	Provider AuthProvider `json:"provider"`

	// ProviderID is the subject issued by the identity provider, if any.
	ProviderID *string `json:"providerId"`

	// CreatedAt is set when the user is first persisted.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FederatedIdentity carries the claims extracted from an identity provider
// credential.
type FederatedIdentity struct {
	Email   string
	Name    string
	Subject string
}
