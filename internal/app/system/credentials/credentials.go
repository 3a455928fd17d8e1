// Package credentials implements registration, login and the password
// reset flow on top of the user store.
//
// Reset tokens move through three states: absent, issued (token and expiry
// stored on the user), and consumed (cleared by a successful reset). An
// issued token whose expiry has passed simply stops matching; it is
// overwritten by the next issuance.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userstore "github.com/dalemusser/propertyhub/internal/app/store/users"
	"github.com/dalemusser/propertyhub/internal/app/system/authutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/mailer"
	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultTokenTTL is how long a reset link stays valid.
const DefaultTokenTTL = time.Hour

var (
	ErrNotFound       = errors.New("no record existed")
	ErrUnauthorized   = errors.New("the credentials are incorrect")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	ErrUnknownEmail   = errors.New("user with this email does not exist")
	ErrInvalidToken   = errors.New("password reset token is invalid or has expired")
	ErrMailFailed     = errors.New("error sending password reset email")
)

// Users is the persistence the manager needs. *userstore.Store satisfies it.
type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	ConsumeResetToken(ctx context.Context, token string, now time.Time, hash string) (primitive.ObjectID, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Email) error
}

// Manager owns password hashing and reset-token issuance.
type Manager struct {
	Users        Users
	Mailer       Mailer
	SiteName     string
	ResetURLBase string
	TokenTTL     time.Duration
	Now          func() time.Time
	Log          *zap.Logger
}

// NewManager returns a Manager with default TTL and clock.
func NewManager(users Users, m Mailer, resetURLBase string, ttl time.Duration, logger *zap.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Manager{
		Users:        users,
		Mailer:       m,
		SiteName:     "PropertyHub",
		ResetURLBase: resetURLBase,
		TokenTTL:     ttl,
		Now:          time.Now,
		Log:          logger,
	}
}

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	FName    string `json:"fname" validate:"required,max=100" label:"First name"`
	LName    string `json:"lname" validate:"required,max=100" label:"Last name"`
	Email    string `json:"email" validate:"required,email,max=254" label:"Email"`
	Password string `json:"password" validate:"required,max=200" label:"Password"`
	Username string `json:"username" validate:"max=100" label:"Username"`
	Phone    string `json:"phone" validate:"max=50" label:"Phone"`
	Address  string `json:"address" validate:"max=500" label:"Address"`
}

// Register validates in, hashes the password and creates the user.
// A validation failure is returned as an inputval.Result.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (models.PublicUser, error) {
	in.Email = normalize.Email(in.Email)
	in.FName = strings.TrimSpace(in.FName)
	in.LName = strings.TrimSpace(in.LName)
	if res := inputval.Validate(in); res.HasErrors() {
		return models.PublicUser{}, res
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		return models.PublicUser{}, err
	}

	u, err := m.Users.Create(ctx, models.User{
		FName:        in.FName,
		LName:        in.LName,
		Email:        in.Email,
		PasswordHash: hash,
		Username:     in.Username,
		Phone:        in.Phone,
		Address:      in.Address,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return models.PublicUser{}, ErrDuplicateEmail
		}
		return models.PublicUser{}, fmt.Errorf("create user: %w", err)
	}
	return u.Public(), nil
}

// Login checks password against the stored hash for email.
func (m *Manager) Login(ctx context.Context, email, password string) (models.PublicUser, error) {
	u, err := m.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.PublicUser{}, ErrNotFound
		}
		return models.PublicUser{}, fmt.Errorf("load user: %w", err)
	}
	if !authutil.CheckPassword(password, u.PasswordHash) {
		return models.PublicUser{}, ErrUnauthorized
	}
	return u.Public(), nil
}

// ForgotPassword issues a fresh reset token for email and mails the link.
// It returns the address the link was sent to.
func (m *Manager) ForgotPassword(ctx context.Context, email string) (string, error) {
	u, err := m.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return "", ErrUnknownEmail
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	token, err := authutil.NewResetToken()
	if err != nil {
		return "", err
	}
	expires := m.now().Add(m.ttl())
	if err := m.Users.SetResetToken(ctx, u.ID, token, expires); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	msg := mailer.BuildPasswordResetEmail(mailer.PasswordResetEmailData{
		SiteName:  m.SiteName,
		ResetURL:  m.ResetURL(token),
		ExpiresIn: humanDuration(m.ttl()),
	})
	msg.To = u.Email
	if err := m.Mailer.Send(ctx, msg); err != nil {
		if m.Log != nil {
			m.Log.Error("password reset email failed", zap.String("to", u.Email), zap.Error(err))
		}
		return "", fmt.Errorf("%w: %v", ErrMailFailed, err)
	}
	return u.Email, nil
}

// ResetPassword consumes token and stores newPassword. Checking the token
// and writing the password happen in one store update, so a token is
// accepted at most once even under concurrent requests.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := authutil.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := m.Users.ConsumeResetToken(ctx, token, m.now(), hash); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}

// ChangePassword replaces the password of userID after verifying current.
func (m *Manager) ChangePassword(ctx context.Context, userID primitive.ObjectID, current, next string) error {
	u, err := m.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}
	if !authutil.CheckPassword(current, u.PasswordHash) {
		return ErrUnauthorized
	}
	hash, err := authutil.HashPassword(next)
	if err != nil {
		return err
	}
	if err := m.Users.SetPassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}

// ResetURL is the link mailed for token.
func (m *Manager) ResetURL(token string) string {
	return strings.TrimRight(m.ResetURLBase, "/") + "/" + token
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now().UTC()
	}
	return time.Now().UTC()
}

func (m *Manager) ttl() time.Duration {
	if m.TokenTTL > 0 {
		return m.TokenTTL
	}
	return DefaultTokenTTL
}

func humanDuration(d time.Duration) string {
	switch {
	case d == time.Hour:
		return "1 hour"
	case d%time.Hour == 0:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return d.String()
}
