package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/platform/config"
	"backoffice/internal/platform/email"
)

type Service struct {
	store  *Store
	mailer email.Mailer
	cfg    config.Config
}

func NewService(store *Store, mailer email.Mailer, cfg config.Config) *Service {
	return &Service{store: store, mailer: mailer, cfg: cfg}
}

type LoginResult struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Service) Login(ctx context.Context, emailAddr, password string) (LoginResult, error) {
	user, err := s.store.FindUserByEmail(ctx, emailAddr)
	if err == pgx.ErrNoRows {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}
	if err := CheckPassword(user.Password, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.cfg.JWTSecret, Claims{UserID: user.ID, Email: user.Email}, 24*time.Hour)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// RequestReset always reports success to the caller so the endpoint does not
// reveal whether an email address has an account.
func (s *Service) RequestReset(ctx context.Context, emailAddr string) error {
	user, err := s.store.FindUserByEmail(ctx, emailAddr)
	if err == pgx.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	ttl := time.Duration(s.cfg.ResetTokenTTLHours) * time.Hour
	if err := s.store.CreatePasswordReset(ctx, user.ID, hashToken(token), time.Now().Add(ttl)); err != nil {
		return err
	}

	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset token: %s\n\nThe token expires in %d hours. If you did not request this, ignore this email.", token, s.cfg.ResetTokenTTLHours)
	if err := s.mailer.Send(ctx, s.cfg.EmailFrom, user.Email, "Password reset", body); err != nil {
		slog.Warn("password reset email failed", "error", err)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.store.PasswordResetUserID(ctx, hashToken(token))
	if err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdateUserPassword(ctx, userID, hash); err != nil {
		return err
	}
	return s.store.MarkPasswordResetUsed(ctx, hashToken(token))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
