package models

// User represents a user in the system
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Not serialized
	SpaceID      int64  `json:"space_id"`
	CreatedAt    string `json:"created_at"`
}
