// Package account registers users, verifies credentials and authenticates bearer tokens.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"bet_wallet/internal/domain"
	"bet_wallet/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service owns users and issues tokens.
type Service struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
	cost     int
}

// NewService creates a Service. Tokens are signed with secret and expire after tokenTTL.
func NewService(db *gorm.DB, secret string, tokenTTL time.Duration) *Service {
	return &Service{db: db, secret: secret, tokenTTL: tokenTTL, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

// Register creates the user and its wallet with the starting balance in one transaction,
// and returns a token for the new user.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if !validEmail(email) || password == "" || len(password) > 72 { // bcrypt rejects longer inputs
		return nil, "", domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost) // Hash password
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{Email: email, Password: string(hash)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil { // Check if email exists
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyExists
		}
		if err := tx.Create(&user).Error; err != nil { // Create user
			return err
		}
		return tx.Create(&domain.Wallet{UserID: user.ID, Balance: domain.StartingBalance}).Error // Create wallet
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, "", domain.ErrAlreadyExists
	case err != nil:
		return nil, "", fmt.Errorf("%w: register: %w", domain.ErrTransient, err)
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"balance": domain.StartingBalance,
	}).Info("User registered")
	return &user, token, nil
}

// Login verifies the password and returns a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrInvalidCredentials
	} else if err != nil {
		return "", fmt.Errorf("%w: login: %w", domain.ErrTransient, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil { // Check password
		return "", domain.ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
}

// Authenticate maps a bearer token to the id of an existing user.
func (s *Service) Authenticate(ctx context.Context, token string) (uint, error) {
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}
	if _, err := s.User(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, err
	}
	return claims.UserID, nil
}

// User loads a user by id.
func (s *Service) User(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: load user: %w", domain.ErrTransient, err)
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
