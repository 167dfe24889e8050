package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hopkinton-cheetahs/rosterd/internal/common/clock"
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	authRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/auth"
	sessionRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/session"
	"golang.org/x/crypto/bcrypt"
)

// Define errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrNoSession          = errors.New("no active session")
)

// Config holds dependencies for the auth service. Default credentials come
// from the deployment, not from source constants; stored overrides win over
// defaults per role.
type Config struct {
	// AuthRepo persists per-role password overrides
	AuthRepo authRepo.Repository

	// SessionRepo persists the session document
	SessionRepo sessionRepo.Repository

	// Clock supplies the current time for the default selected year
	Clock clock.Clock

	// DefaultPasswords maps each role to its default password
	DefaultPasswords map[models.Role]string
}

// service implements the Service interface
type service struct {
	authRepo    authRepo.Repository
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	defaults    map[models.Role]string
}

// New creates a new auth service. Default passwords are hashed at
// construction; only hashes are kept.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthRepo == nil {
		return nil, errors.New("auth repository cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	defaults := make(map[models.Role]string, len(cfg.DefaultPasswords))
	for role, password := range cfg.DefaultPasswords {
		if !role.Valid() {
			return nil, fmt.Errorf("default password for unknown role %q", role)
		}
		if password == "" {
			return nil, fmt.Errorf("default password for role %q cannot be empty", role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash default password: %w", err)
		}
		defaults[role] = string(hash)
	}

	if _, ok := defaults[models.RoleCaptain]; !ok {
		return nil, errors.New("default password for captain is required")
	}

	if _, ok := defaults[models.RolePlayer]; !ok {
		return nil, errors.New("default password for player is required")
	}

	return &service{
		authRepo:    cfg.AuthRepo,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		defaults:    defaults,
	}, nil
}

// Login checks the password for a role against its stored override, falling
// back to the default, and establishes the session on success. The selected
// year carries over from any previous session.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if !input.Role.Valid() {
		return nil, ErrUnknownRole
	}

	overrides, err := s.authRepo.GetOverrides(ctx, &authRepo.GetOverridesInput{})
	if err != nil {
		return nil, err
	}

	hash, ok := overrides.Hashes[input.Role]
	if !ok {
		hash = s.defaults[input.Role]
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	year := s.clock.Now().Year()
	existing, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{})
	if err != nil {
		return nil, err
	}
	if existing.Session != nil && existing.Session.Year > 0 {
		year = existing.Session.Year
	}

	session := &models.Session{
		Role: input.Role,
		Year: year,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	return &LoginOutput{Session: session}, nil
}

// Logout clears the session
func (s *service) Logout(ctx context.Context, input *LogoutInput) error {
	return s.sessionRepo.ClearSession(ctx, &sessionRepo.ClearSessionInput{})
}

// CurrentSession returns the session, nil when nobody is signed in
func (s *service) CurrentSession(ctx context.Context, input *CurrentSessionInput) (*CurrentSessionOutput, error) {
	out, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{})
	if err != nil {
		return nil, err
	}

	return &CurrentSessionOutput{Session: out.Session}, nil
}

// SelectYear changes the session's partition year
func (s *service) SelectYear(ctx context.Context, input *SelectYearInput) (*SelectYearOutput, error) {
	if input.Year <= 0 {
		return nil, fmt.Errorf("invalid year %d", input.Year)
	}

	out, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{})
	if err != nil {
		return nil, err
	}

	if out.Session == nil {
		return nil, ErrNoSession
	}

	out.Session.Year = input.Year

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: out.Session}); err != nil {
		return nil, err
	}

	return &SelectYearOutput{Session: out.Session}, nil
}

// SetPassword stores a new password for a role as a bcrypt override
func (s *service) SetPassword(ctx context.Context, input *SetPasswordInput) error {
	if !input.Role.Valid() {
		return ErrUnknownRole
	}

	if strings.TrimSpace(input.Password) == "" {
		return ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.authRepo.SetOverride(ctx, &authRepo.SetOverrideInput{
		Role: input.Role,
		Hash: string(hash),
	})
}
