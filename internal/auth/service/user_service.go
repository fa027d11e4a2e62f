package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/PrincyBhingradiya/auth-posts-api/config"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/domain"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/auth/dto"
	autherror "github.com/PrincyBhingradiya/auth-posts-api/internal/errors"
	"github.com/PrincyBhingradiya/auth-posts-api/internal/mail"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	mailer mail.Mailer
	cfg    *config.Config
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, mailer mail.Mailer, cfg *config.Config) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, autherror.ErrNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, autherror.ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, autherror.ErrInvalidEmail
	}

	if input.Password == "" {
		return nil, autherror.ErrPasswordRequired
	}
	if len(input.Password) < 6 {
		return nil, autherror.ErrPasswordTooShort
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.UserOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.UserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" && input.Password == "" {
		return nil, autherror.ErrEmailAndPasswordRequired
	}
	if email == "" {
		return nil, autherror.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, autherror.ErrPasswordRequired
	}

	// Unknown email and wrong password fail identically.
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	match, err := VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.UserOutput{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Token:        token,
		LastLoginAt:  &now,
		LastLogoutAt: user.LastLogoutAt,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    now,
	}, nil
}

// Logout blacklists the presented token until its natural expiry and records
// the logout time. Re-blacklisting the same token is a no-op.
func (s *UserService) Logout(ctx context.Context, userID, token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, autherror.ErrNoToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	if user == nil {
		return time.Time{}, autherror.ErrUserNotFound
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return time.Time{}, autherror.ErrInvalidToken
	}

	now := time.Now()

	if err := s.repo.BlacklistToken(ctx, &domain.BlacklistedToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: now,
	}); err != nil {
		return time.Time{}, err
	}

	if err := s.repo.UpdateLastLogout(ctx, user.ID, now); err != nil {
		return time.Time{}, err
	}

	return now, nil
}

// ForgotPassword stores a hashed one-time reset secret and emails the
// plaintext link. The response is uniform whether or not the account exists,
// so the endpoint cannot be used to enumerate emails.
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return autherror.ErrEmailRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		log.Printf("password reset requested for unknown email")
		return nil
	}

	plain, digest, err := newResetToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.ResetTokenTTLMinutes) * time.Minute)
	if err := s.repo.SetResetToken(ctx, user.ID, digest, expiresAt); err != nil {
		return err
	}

	// The token is already persisted at this point; a delivery failure leaves
	// a valid but unreferenced reset secret behind, which simply expires.
	body := resetEmailBody(user.Name, s.cfg.ResetURL(plain), s.cfg.ResetTokenTTLMinutes)
	if err := s.mailer.Send(user.Email, "Password Reset Request", body); err != nil {
		log.Printf("email sending failed: %v", err)
		return autherror.ErrEmailDelivery
	}

	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, plainToken string, input dto.ResetPasswordInput) error {
	// A fabricated token and an expired one fail identically.
	user, err := s.repo.GetByResetTokenHash(ctx, hashResetToken(plainToken), time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidResetToken
	}

	if len(input.Password) < 6 {
		return autherror.ErrPasswordTooShort
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordAndClearReset(ctx, user.ID, hashedPassword, time.Now())
}

func resetEmailBody(name, resetURL string, ttlMinutes int) string {
	return fmt.Sprintf(`
        <p>Hello %s,</p>
        <p>You requested a password reset. Click the link below to reset your password:</p>
        <a href="%s" style="color: blue; text-decoration: underline;">Reset Password</a>
        <p>This link will expire in %d minutes.</p>
      `, name, resetURL, ttlMinutes)
}
