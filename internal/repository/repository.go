package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/growai/fincoach/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	return r.findUser("email = $1", email)
}

// FindUserByID retrieves a user by primary key
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	return r.findUser("id = $1", id)
}

func (r *Repository) findUser(where string, arg any) (*models.User, error) {
	user := &models.User{}
	var profileType sql.NullString
	var selectedBanks, overrides []byte
	query := `
		SELECT id, username, email, password_hash, profile_type, selected_banks, overrides, created_at, updated_at
		FROM users
		WHERE ` + where
	err := r.db.QueryRow(query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
			&profileType, &selectedBanks, &overrides, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user.ProfileType = profileType.String
	if len(selectedBanks) > 0 {
		if err := json.Unmarshal(selectedBanks, &user.SelectedBanks); err != nil {
			return nil, fmt.Errorf("failed to decode selected banks: %w", err)
		}
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &user.Overrides); err != nil {
			return nil, fmt.Errorf("failed to decode overrides: %w", err)
		}
	}
	return user, nil
}

// UpdateProfile stores the financial-profile setup for a user.
func (r *Repository) UpdateProfile(userID int64, profileType string, selectedBanks []string, overrides *models.Overrides) error {
	banksJSON, err := json.Marshal(selectedBanks)
	if err != nil {
		return fmt.Errorf("failed to encode selected banks: %w", err)
	}
	var overridesJSON []byte
	if overrides != nil {
		overridesJSON, err = json.Marshal(overrides)
		if err != nil {
			return fmt.Errorf("failed to encode overrides: %w", err)
		}
	}
	query := `
		UPDATE users
		SET profile_type = $2, selected_banks = $3, overrides = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	result, err := r.db.Exec(query, userID, profileType, banksJSON, overridesJSON)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveSnapshot stores a snapshot document for a user, replacing any prior
// one (last-write-wins).
func (r *Repository) SaveSnapshot(userID int64, snap *models.FinancialSnapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	query := `
		INSERT INTO snapshots (user_id, doc, generated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, generated_at = EXCLUDED.generated_at`
	if _, err := r.db.Exec(query, userID, doc, snap.GeneratedAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// FindSnapshot retrieves the stored snapshot for a user.
func (r *Repository) FindSnapshot(userID int64) (*models.FinancialSnapshot, error) {
	var doc []byte
	err := r.db.QueryRow(`SELECT doc FROM snapshots WHERE user_id = $1`, userID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}
	snap := &models.FinancialSnapshot{}
	if err := json.Unmarshal(doc, snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// SnapshotOwner pairs a user with their stored snapshot, for scheduled jobs.
type SnapshotOwner struct {
	UserID   int64
	Username string
	Email    string
	Snapshot *models.FinancialSnapshot
}

// ListSnapshots returns every user that has a stored snapshot.
func (r *Repository) ListSnapshots() ([]SnapshotOwner, error) {
	query := `
		SELECT u.id, u.username, u.email, s.doc
		FROM users u
		JOIN snapshots s ON s.user_id = u.id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var owners []SnapshotOwner
	for rows.Next() {
		var owner SnapshotOwner
		var doc []byte
		if err := rows.Scan(&owner.UserID, &owner.Username, &owner.Email, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		owner.Snapshot = &models.FinancialSnapshot{}
		if err := json.Unmarshal(doc, owner.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}
