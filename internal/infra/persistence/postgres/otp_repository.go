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

// otpRepository implements the repository.OtpRepository interface.
type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{db: db}
}

// Create persists a freshly generated code row.
func (repo *otpRepository) Create(ctx context.Context, code *entity.OtpCode) error {
	codeM := fromOtpCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestUnusedByEmail retrieves the most recently created unused row for
// the email, regardless of expiry or attempt count.
func (repo *otpRepository) FindLatestUnusedByEmail(ctx context.Context, email string) (*entity.OtpCode, error) {
	codeM := &model.OtpCodeModel{}

	err := repo.db.WithContext(ctx).
		Where("email = ? AND used = false", email).
		Order("created_at DESC").
		First(codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOtpCodeDomain(codeM), nil
}

// IncrementAttempts bumps attemptCount in a single UPDATE ... RETURNING
// statement, so two concurrent wrong guesses cannot both read the same
// pre-increment count.
func (repo *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	var newCount int

	err := repo.db.WithContext(ctx).
		Raw(`UPDATE otp_codes
		     SET attempt_count = attempt_count + 1
		     WHERE id = ?
		     RETURNING attempt_count`, id).
		Scan(&newCount).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return newCount, nil
}

// MarkUsed consumes the row if it is still unused. A replayed success
// observes zero affected rows.
func (repo *otpRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OtpCodeModel{}).
		Where("id = ? AND used = false", id).
		Updates(map[string]any{
			"used":    true,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// CountCreatedSince counts rows created for the email after the given instant.
func (repo *otpRepository) CountCreatedSince(ctx context.Context, email string, since time.Time) (int, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.OtpCodeModel{}).
		Where("email = ? AND created_at > ?", email, since).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toOtpCodeDomain converts a GORM OtpCodeModel to a domain OtpCode entity.
func toOtpCodeDomain(data *model.OtpCodeModel) *entity.OtpCode {
	if data == nil {
		return nil
	}

	return &entity.OtpCode{
		ID:           data.ID,
		Email:        data.Email,
		CodeHash:     data.CodeHash,
		ExpiresAt:    data.ExpiresAt,
		AttemptCount: data.AttemptCount,
		Used:         data.Used,
		UsedAt:       data.UsedAt,
		CreatedAt:    data.CreatedAt,
	}
}

// fromOtpCodeDomain converts a domain OtpCode entity to a GORM OtpCodeModel.
func fromOtpCodeDomain(data *entity.OtpCode) *model.OtpCodeModel {
	if data == nil {
		return nil
	}

	return &model.OtpCodeModel{
		ID:           data.ID,
		Email:        data.Email,
		CodeHash:     data.CodeHash,
		ExpiresAt:    data.ExpiresAt,
		AttemptCount: data.AttemptCount,
		Used:         data.Used,
		UsedAt:       data.UsedAt,
		CreatedAt:    data.CreatedAt,
	}
}
