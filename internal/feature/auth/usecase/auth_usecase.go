package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"task_backend/internal/feature/auth/domain/entity"
)

const (
	// minEmailLength and maxEmailLength bound the login identifier.
	minEmailLength = 6
	maxEmailLength = 50

	// minPasswordLength and maxPasswordLength bound the raw password.
	minPasswordLength = 6
	maxPasswordLength = 50

	// sessionIDBytes is the entropy of a session token (hex-encoded to 64 chars).
	sessionIDBytes = 32
)

// dummyHash is a bcrypt hash compared against when the user does not exist,
// so that Authenticate takes the same time for unknown emails and wrong passwords.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// SessionRepository abstracts the persistence layer for session entities.
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (cookie token value).
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	Revoke(ctx context.Context, id string) error

	// RevokeAllByUserID revokes all sessions for a given user.
	RevokeAllByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes all expired sessions from storage.
	// Returns the number of deleted sessions.
	DeleteExpired(ctx context.Context) (int64, error)
}

// TokenGenerator defines the interface for signed API token generation.
type TokenGenerator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase implements registration, credential verification and session
// lifecycle on top of the user and session repositories.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, sessionTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// validateEmail checks the length bounds on the login identifier.
func validateEmail(email string) error {
	if len(email) < minEmailLength {
		return fmt.Errorf("email must be at least %d characters", minEmailLength)
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email should not exceed %d characters", maxEmailLength)
	}
	return nil
}

// validatePassword checks the length bounds on the raw password.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password should not exceed %d characters", maxPasswordLength)
	}
	return nil
}

// Signup registers a new user with a bcrypt-hashed password and returns it.
func (u *AuthUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed), IsActive: true}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair against the stored hash.
// It returns ErrInvalidCredentials for unknown emails, wrong passwords and
// inactive accounts alike, and always runs a bcrypt comparison so that the
// unknown-email path is not distinguishable by timing.
func (u *AuthUsecase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken authenticates the user and returns a signed API token.
func (u *AuthUsecase) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := u.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// StartSession creates and persists a new session for the given user.
func (u *AuthUsecase) StartSession(ctx context.Context, userID uint, userAgent, ipAddress string) (*entity.Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SessionUser resolves a session ID to its user.
// Expired and revoked sessions yield ErrInvalidSession.
func (u *AuthUsecase) SessionUser(ctx context.Context, sessionID string) (*entity.User, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrInvalidSession
	}
	return u.users.FindByID(ctx, session.UserID)
}

// EndSession revokes the session with the given ID.
// A missing session is not an error: logout must succeed unconditionally.
func (u *AuthUsecase) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// newSessionID returns a cryptographically random 64-character hex token.
func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
