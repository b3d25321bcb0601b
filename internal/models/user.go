package models

import "time"

// User represents a user in the system
type User struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"` // Not serialized
	ProfileType   string     `json:"financial_profile_type,omitempty"`
	SelectedBanks []string   `json:"selected_banks,omitempty"`
	Overrides     *Overrides `json:"overrides,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
