package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dvergara/finanzas-service/internal/config"
	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Service-level validation errors.
var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrUnknownKind   = errors.New("unknown payment kind")
)

// Service handles business logic
type Service struct {
	store  Store
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, log: log, config: cfg, now: time.Now}
}

// Register creates a new user, their space, and a hashed password
func (s *Service) Register(username, email, password, spaceName string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if spaceName == "" {
		spaceName = fmt.Sprintf("Espacio de %s", username)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(user, spaceName); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s (space %d)", user.Email, user.SpaceID)
	return user, nil
}

// Login authenticates a user and returns a JWT token carrying their space
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"space": user.SpaceID,
		"exp":   jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}
