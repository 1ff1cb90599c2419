package postgres

import (
	"context"
	"time"

	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/repository"
	"gazette/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the repository.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("refresh token hash collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByHash retrieves a refresh token record by its securely stored hash.
func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	tokenM := &model.RefreshTokenModel{}

	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(tokenM), nil
}

// FindByID retrieves a refresh token record by its unique ID.
func (repo *refreshTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	tokenM := &model.RefreshTokenModel{}

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(tokenM), nil
}

// FindActiveByUserID retrieves all live sessions for a user, most recent first.
func (repo *refreshTokenRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var tokenModels []*model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND revoked = false AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&tokenModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make([]*entity.RefreshToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toRefreshTokenDomain(tokenM))
	}

	return tokens, nil
}

// Revoke conditionally marks the row with the given hash revoked. The
// `revoked = false` guard makes the update a compare-and-set: of two racing
// rotations only one observes an affected row.
func (repo *refreshTokenRepository) Revoke(ctx context.Context, tokenHash string, reason entity.RevocationReason) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked = false", tokenHash).
		Updates(map[string]any{
			"revoked":        true,
			"revoked_at":     time.Now(),
			"revoked_reason": reason.String(),
		})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// RevokeByID marks a single session revoked by its record ID.
func (repo *refreshTokenRepository) RevokeByID(ctx context.Context, id uuid.UUID, reason entity.RevocationReason) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("id = ? AND revoked = false", id).
		Updates(map[string]any{
			"revoked":        true,
			"revoked_at":     time.Now(),
			"revoked_reason": reason.String(),
		})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// RevokeAllByUserID marks every live session of the user revoked.
func (repo *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uuid.UUID, reason entity.RevocationReason) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND revoked = false", userID).
		Updates(map[string]any{
			"revoked":        true,
			"revoked_at":     time.Now(),
			"revoked_reason": reason.String(),
		}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// TouchLastUsed advances lastUsedAt on the row with the given hash.
func (repo *refreshTokenRepository) TouchLastUsed(ctx context.Context, tokenHash string, usedAt time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Update("last_used_at", usedAt).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:            data.ID,
		UserID:        data.UserID,
		TokenHash:     data.TokenHash,
		DeviceType:    entity.DeviceType(data.DeviceType),
		DeviceInfo:    data.DeviceInfo,
		IPAddress:     data.IPAddress,
		ExpiresAt:     data.ExpiresAt,
		LastUsedAt:    data.LastUsedAt,
		Revoked:       data.Revoked,
		RevokedAt:     data.RevokedAt,
		RevokedReason: entity.RevocationReason(data.RevokedReason),
		CreatedAt:     data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:            data.ID,
		UserID:        data.UserID,
		TokenHash:     data.TokenHash,
		DeviceType:    data.DeviceType.String(),
		DeviceInfo:    data.DeviceInfo,
		IPAddress:     data.IPAddress,
		ExpiresAt:     data.ExpiresAt,
		LastUsedAt:    data.LastUsedAt,
		Revoked:       data.Revoked,
		RevokedAt:     data.RevokedAt,
		RevokedReason: data.RevokedReason.String(),
		CreatedAt:     data.CreatedAt,
	}
}
