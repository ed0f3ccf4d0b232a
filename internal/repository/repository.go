package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dvergara/finanzas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a write targets a row that does not exist in
// the space, or that is already past the requested transition.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB, log *logrus.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// CreateUser creates the user together with their space in one transaction.
func (r *Repository) CreateUser(user *models.User, spaceName string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO finanzas.spaces (name, created_at)
		VALUES ($1, CURRENT_TIMESTAMP)
		RETURNING id`, spaceName).Scan(&user.SpaceID)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}

	err = tx.QueryRow(`
		INSERT INTO finanzas.users (username, email, password_hash, space_id, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`,
		user.Username, user.Email, user.PasswordHash, user.SpaceID).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, space_id, created_at
		FROM finanzas.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.SpaceID, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
