package models

import (
	"database/sql"
	"time"
)

// User represents a user of the application.
// Includes username and password hash for local authentication plus the
// provider columns for OAuth sign-ins.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"` // NULL for OAuth-only users
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	IsVerified     bool           `db:"is_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}
