package usecase

import (
	"context"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
)

// IdentityUsecase materializes a verified provider identity onto a user
// account: provider-key lookup first, then email merge, then creation.
// Resolve runs inside the caller's transaction so the username uniqueness
// probe and the insert commit or roll back together.
type IdentityUsecase interface {
	// Resolve finds or creates the user for the identity and refreshes
	// provider metadata. It returns the user and whether it was created.
	Resolve(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.ProviderIdentity) (*entity.User, bool, error)
}
