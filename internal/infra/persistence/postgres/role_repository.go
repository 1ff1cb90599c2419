package postgres

import (
	"context"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByCode retrieves a role by its stable machine code.
func (repo *roleRepository) FindByCode(ctx context.Context, code string) (*entity.Role, error) {
	roleM := &model.RoleModel{}

	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Role{
		ID:   roleM.ID,
		Name: roleM.Name,
		Code: roleM.Code,
	}, nil
}
