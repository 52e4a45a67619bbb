package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"backoffice/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type AuthUser struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT user_id, email_id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(pass, '')
    FROM app.m_user
    WHERE email_id = $1 AND deleted_on IS NULL
  `, email).Scan(&out.ID, &out.Email, &out.FirstName, &out.LastName, &out.Password)
	return out, err
}

func (s *Store) CreatePasswordReset(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO app.password_resets (user_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) PasswordResetUserID(ctx context.Context, tokenHash string) (string, error) {
	var userID string
	err := s.DB.QueryRow(ctx, `
    SELECT user_id
    FROM app.password_resets
    WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
  `, tokenHash).Scan(&userID)
	if err == pgx.ErrNoRows {
		return "", ErrResetTokenInvalid
	}
	return userID, err
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID, hash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE app.m_user SET pass = $2 WHERE user_id = $1", userID, hash)
	return err
}

func (s *Store) MarkPasswordResetUsed(ctx context.Context, tokenHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE app.password_resets SET used_at = now() WHERE token_hash = $1", tokenHash)
	return err
}
