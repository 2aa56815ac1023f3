package postgres

import (
	"context"
	"time"

	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// identityRepository implements repository.IdentityRepository using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var m model.IdentityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&m), nil
}

// FindByEmail reads from the primary so a just-verified identity can sign in
// before replicas catch up.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var m model.IdentityModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&m), nil
}

func (repo *identityRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.IdentityModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check identity email")
	}

	return count > 0, nil
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	m := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrIdentityEmailTaken)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = m.ID
	identity.CreatedAt = m.CreatedAt
	identity.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *identityRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func toIdentityDomain(m *model.IdentityModel) *entity.Identity {
	prefs := []string(m.Preferences)
	if prefs == nil {
		prefs = []string{}
	}

	return &entity.Identity{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Phone:          m.Phone,
		DateOfBirth:    time.Time(m.DateOfBirth),
		ProfilePicture: m.ProfilePicture,
		Preferences:    prefs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromIdentityDomain(e *entity.Identity) *model.IdentityModel {
	prefs := e.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	return &model.IdentityModel{
		ID:             e.ID,
		Email:          e.Email,
		PasswordHash:   e.PasswordHash,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Phone:          e.Phone,
		DateOfBirth:    datatypes.Date(e.DateOfBirth),
		ProfilePicture: e.ProfilePicture,
		Preferences:    datatypes.JSONSlice[string](prefs),
	}
}
