// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	"gazette/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// usernameSuffixLimit caps the numeric suffix probing; collisions past this
// point indicate something badly wrong with the data, not an unlucky name.
const usernameSuffixLimit = 1000

// identityService implements the IdentityUsecase interface. One person may
// authenticate through several providers sharing an email; they converge onto
// a single user row instead of fragmenting into provider-specific accounts.
type identityService struct {
	logger *slog.Logger
}

// IdentityServiceParams holds dependencies for the identity service, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{logger: params.Logger}
}

// Resolve finds or creates the user for a verified provider identity.
// Lookup order: (provider, providerID) first as the stable key, then email
// for cross-provider merge, then creation.
func (srv *identityService) Resolve(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.ProviderIdentity) (*entity.User, bool, error) {
	userRepo := repoFactory.UserRepo()

	user, err := userRepo.FindByProvider(ctx, identity.Provider, identity.ProviderID)
	if err == nil {
		if err := srv.refreshProviderFields(ctx, userRepo, user, identity); err != nil {
			return nil, false, err
		}

		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, errors.Wrap(err, "failed to find user by provider")
	}

	if identity.Email != "" {
		user, err = userRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			srv.logger.Info("Merging provider onto existing account",
				slog.String("provider", identity.Provider.String()),
				slog.Any("user_id", user.ID))

			if err := srv.refreshProviderFields(ctx, userRepo, user, identity); err != nil {
				return nil, false, err
			}

			return user, false, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, errors.Wrap(err, "failed to find user by email")
		}
	}

	user, err = srv.createUser(ctx, repoFactory, identity)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// refreshProviderFields advances the provider key to the method just used,
// backfills the display name without overwriting user edits, and refreshes
// the avatar whenever the provider supplies one.
func (srv *identityService) refreshProviderFields(ctx context.Context, userRepo repository.UserRepository, user *entity.User, identity *service.ProviderIdentity) error {
	user.AuthProvider = identity.Provider
	user.ProviderID = identity.ProviderID

	if user.DisplayName == "" && identity.Name != "" {
		user.DisplayName = identity.Name
	}
	if identity.AvatarURL != "" {
		user.AvatarURL = identity.AvatarURL
	}
	if identity.EmailVerified {
		user.Confirmed = true
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to refresh provider fields")
	}

	return nil
}

// createUser materializes a first-time identity as a new account with the
// baseline authenticated role.
func (srv *identityService) createUser(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.ProviderIdentity) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()

	username, err := srv.generateUsername(ctx, userRepo, identity.Email)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        identity.Email,
		Username:     username,
		DisplayName:  identity.Name,
		AvatarURL:    identity.AvatarURL,
		AuthProvider: identity.Provider,
		ProviderID:   identity.ProviderID,
		Confirmed:    identity.EmailVerified,
	}

	role, err := repoFactory.RoleRepo().FindByCode(ctx, entity.DefaultRoleName)
	if err != nil {
		if !errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(err, "failed to find default role")
		}
		// No role registry entry; the claim falls back to the default name.
	} else {
		user.Role = role
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("Created user",
		slog.Any("user_id", user.ID),
		slog.String("provider", identity.Provider.String()))

	return user, nil
}

// generateUsername derives a unique handle from the email local part,
// appending a numeric suffix until the name is free.
func (srv *identityService) generateUsername(ctx context.Context, userRepo repository.UserRepository, email string) (string, error) {
	base := usernameBase(email)

	candidate := base
	for i := 0; i < usernameSuffixLimit; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s%d", base, i)
		}

		taken, err := userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check username")
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", errors.Errorf("could not derive a free username from %q", base)
}

// usernameBase lowercases the email local part and replaces everything
// outside [a-z0-9] with underscores.
func usernameBase(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.ToLower(local)

	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	if b.Len() == 0 {
		return "user"
	}

	return b.String()
}
