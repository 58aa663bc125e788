package auth

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sharjeel-22/request-management-system/internal/config"
	"github.com/Sharjeel-22/request-management-system/internal/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/models"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The
// message is deliberately the same for both cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthContext is the authenticated role handed to page-level handlers.
// Pages receive it as a value; nothing in the request/workflow core
// reads ambient session storage.
type AuthContext struct {
	SessionID string
	Role      models.Role
	Email     string
	Name      string
	LoginTime time.Time
}

type ctxKey string

const ctxKeyAuth ctxKey = "authContext"

// NewContext attaches the AuthContext to a context.
func NewContext(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, ctxKeyAuth, ac)
}

// FromContext extracts the AuthContext, if any.
func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(ctxKeyAuth).(AuthContext)
	return ac, ok
}

// AuthService owns the mock login lifecycle: bcrypt-checked login,
// a signed token per session, session rows persisted through the
// repositories, logout clearing the row.
type AuthService struct {
	users    UserRepo
	sessions SessionRepo
	clock    core.Clock
	secret   []byte
}

func NewAuthService(users UserRepo, sessions SessionRepo, clock core.Clock) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		clock:    clock,
		secret:   []byte(config.GetSystemSettingString(config.SESSION_JWT_SECRET)),
	}
}

type sessionClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Login checks the password, persists a fresh session and returns the
// signed token for it.
func (s *AuthService) Login(email string, password string) (AuthContext, string, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return AuthContext{}, "", err
	}
	if u == nil || (u.Enabled.Valid && !u.Enabled.Bool) {
		return AuthContext{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return AuthContext{}, "", ErrInvalidCredentials
	}

	now := s.clock.Now().UTC()
	expiryHours := config.GetSystemSettingInteger(config.SESSION_EXPIRY_HOURS)
	if expiryHours <= 0 {
		expiryHours = 1
	}
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Role:      u.Role,
		Email:     u.Email,
		Name:      u.Name,
		LoginTime: now,
		Expiry:    now.Add(time.Duration(expiryHours) * time.Hour),
	}
	if err := s.sessions.Save(session); err != nil {
		return AuthContext{}, "", err
	}

	claims := sessionClaims{
		Role: u.Role,
		Name: u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.Expiry),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return AuthContext{}, "", err
	}

	slog.Info("Login", "email", u.Email, "role", u.Role)
	return AuthContext{
		SessionID: session.ID,
		Role:      models.Role(u.Role),
		Email:     u.Email,
		Name:      u.Name,
		LoginTime: now,
	}, token, nil
}

// Resolve returns the AuthContext for a live session token. Unknown,
// tampered or expired tokens all come back as ErrNotFound.
func (s *AuthService) Resolve(token string) (AuthContext, error) {
	claims, err := s.parse(token)
	if err != nil {
		return AuthContext{}, models.ErrNotFound
	}
	session, err := s.sessions.FindLive(claims.ID, s.clock.Now().UTC())
	if err != nil {
		return AuthContext{}, err
	}
	if session == nil {
		return AuthContext{}, models.ErrNotFound
	}
	return AuthContext{
		SessionID: session.ID,
		Role:      models.Role(session.Role),
		Email:     session.Email,
		Name:      session.Name,
		LoginTime: session.LoginTime,
	}, nil
}

// Logout clears the session row for the token. Logging out an already
// dead session is not an error.
func (s *AuthService) Logout(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(claims.ID); err != nil {
		slog.Warn("Failed to clear session during logout", "error", err)
		return err
	}
	slog.Info("Logout", "email", claims.Subject)
	return nil
}

// PruneExpired removes sessions past their expiry.
func (s *AuthService) PruneExpired() (int64, error) {
	return s.sessions.DeleteExpired(s.clock.Now().UTC())
}

func (s *AuthService) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.clock.Now().UTC() }))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.ID == "" {
		return nil, errors.New("malformed session claims")
	}
	return claims, nil
}

// demo accounts from the login screen
var demoAccounts = []struct {
	email    string
	name     string
	role     models.Role
	password string
}{
	{"admin@company.com", "Admin User", models.RoleAdmin, "admin123"},
	{"finance@company.com", "Finance Team", models.RoleFinance, "finance123"},
	{"user@company.com", "Regular User", models.RoleUser, "user123"},
}

// EnsureDemoAccounts seeds the demo logins when their rows are missing.
// Passwords are hashed here rather than shipped as fixed hashes.
func EnsureDemoAccounts(users UserRepo) error {
	for _, acc := range demoAccounts {
		existing, err := users.FindByEmail(acc.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &domain.User{
			Email:    acc.email,
			Name:     acc.name,
			Password: string(hashed),
			Role:     string(acc.role),
			Enabled:  sql.NullBool{Bool: true, Valid: true},
		}
		if _, err := users.Save(u); err != nil {
			return err
		}
		slog.Info("Seeded demo account", "email", acc.email, "role", acc.role)
	}
	return nil
}
