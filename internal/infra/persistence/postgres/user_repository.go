package postgres

import (
	"context"

	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/repository"
	"gazette/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM := &model.UserModel{}

	err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM := &model.UserModel{}

	err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(userM), nil
}

// FindByProvider retrieves the single user owning the (provider, providerID) pair.
func (repo *userRepository) FindByProvider(ctx context.Context, provider entity.Provider, providerID string) (*entity.User, error) {
	userM := &model.UserModel{}

	err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("auth_provider = ? AND provider_id = ?", provider.String(), providerID).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(userM), nil
}

// UsernameExists reports whether the username is already taken.
func (repo *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email or username already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Carry generated values back onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":         userM.Email,
			"display_name":  userM.DisplayName,
			"avatar_url":    userM.AvatarURL,
			"auth_provider": userM.AuthProvider,
			"provider_id":   userM.ProviderID,
			"confirmed":     userM.Confirmed,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("email already taken")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		AvatarURL:    data.AvatarURL,
		Bio:          data.Bio,
		AuthProvider: entity.Provider(data.AuthProvider),
		ProviderID:   data.ProviderID,
		Confirmed:    data.Confirmed,
		Blocked:      data.Blocked,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Role != nil {
		user.Role = &entity.Role{
			ID:   data.Role.ID,
			Name: data.Role.Name,
			Code: data.Role.Code,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		DisplayName:  data.DisplayName,
		AvatarURL:    data.AvatarURL,
		Bio:          data.Bio,
		AuthProvider: data.AuthProvider.String(),
		ProviderID:   data.ProviderID,
		Confirmed:    data.Confirmed,
		Blocked:      data.Blocked,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Role != nil {
		roleID := data.Role.ID
		userM.RoleID = &roleID
	}

	return userM
}
