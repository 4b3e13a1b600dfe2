package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *Store) CreateAdminUser(ctx context.Context, email, name, password string) (*AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := AdminUser{Email: email, Name: name, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetAdminUser(ctx context.Context, id uint) (*AdminUser, error) {
	return getByID[AdminUser](ctx, s.db, id)
}

func (s *Store) GetAdminUserByEmail(ctx context.Context, email string) (*AdminUser, error) {
	var user AdminUser
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*AdminUser, error) {
	user, err := s.GetAdminUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetAdminUserBySession resolves a session token. Expired sessions count
// as missing.
func (s *Store) GetAdminUserBySession(ctx context.Context, token string) (*AdminUser, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var user AdminUser
	err := s.db.WithContext(ctx).Where("session_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if user.SessionExpiresAt != nil && time.Now().After(*user.SessionExpiresAt) {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Store) SetAdminSession(ctx context.Context, id uint, token string, ttl time.Duration) error {
	expiresAt := time.Now().Add(ttl)
	return s.db.WithContext(ctx).
		Model(&AdminUser{ID: id}).
		Updates(map[string]any{"session_token": token, "session_expires_at": expiresAt}).Error
}

func (s *Store) ClearAdminSession(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).
		Model(&AdminUser{ID: id}).
		Updates(map[string]any{"session_token": "", "session_expires_at": nil}).Error
}

func (s *Store) CountAdminUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&AdminUser{}).Count(&count).Error
	return count, err
}
