package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"study-rag/ent"
	"study-rag/ent/user"
	"study-rag/internal/auth"
)

// Service handles account creation and login.
type Service struct {
	Client *ent.Client
}

func (s *Service) CreateUser(ctx context.Context, email, password string) (*ent.User, error) {
	log := logrus.WithField("email", email)
	log.Debug("service: creating new user")

	if !isValidEmail(email) {
		return nil, fmt.Errorf("invalid email")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password too short")
	}

	exists, err := s.Client.User.Query().Where(user.EmailEQ(email)).Exist(ctx)
	if err != nil {
		log.WithError(err).Error("service: failed to check for existing user")
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("service: failed to hash password")
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	u, err := s.Client.User.
		Create().
		SetEmail(email).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		log.WithError(err).Error("service: failed to save user to database")
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	log.WithField("user_id", u.ID).Info("service: user created successfully")
	return u, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	log := logrus.WithField("email", email)
	log.Debug("user login attempt")

	u, err := s.Client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		log.WithError(err).Warn("login: failed to find user")
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		log.Warn("login: invalid password provided")
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(u.ID, 24*time.Hour)
	if err != nil {
		log.WithError(err).Error("login: failed to generate access token")
		return "", fmt.Errorf("could not process login: %w", err)
	}

	log.WithField("user_id", u.ID).Info("user logged in successfully")
	return token, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return s.Client.User.Get(ctx, id)
}

func isValidEmail(e string) bool {
	_, err := mail.ParseAddress(e)
	return err == nil
}
