package repositories

import (
	"github.com/okabanov/socialite/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id uint) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	GetProfileByHandle(handle string) (*models.Profile, error)
	GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
	DeleteProfile(id uint) error
	SearchProfiles(query string) ([]models.Profile, error)
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile creates a new profile
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetProfileByID retrieves a profile by ID
func (r *PostgresProfileRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByEmail retrieves a profile by email
func (r *PostgresProfileRepository) GetProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByHandle retrieves a profile by its unique handle
func (r *PostgresProfileRepository) GetProfileByHandle(handle string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("handle = ?", handle).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByFirebaseUID retrieves a profile by Firebase UID
func (r *PostgresProfileRepository) GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates an existing profile
func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// DeleteProfile deletes a profile by ID
func (r *PostgresProfileRepository) DeleteProfile(id uint) error {
	return r.db.Delete(&models.Profile{}, id).Error
}

// SearchProfiles searches for profiles by handle or display name (case-insensitive)
func (r *PostgresProfileRepository) SearchProfiles(query string) ([]models.Profile, error) {
	var profiles []models.Profile
	pattern := "%" + query + "%"
	if err := r.db.Where("LOWER(handle) LIKE LOWER(?) OR LOWER(display_name) LIKE LOWER(?)", pattern, pattern).
		Limit(50).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
