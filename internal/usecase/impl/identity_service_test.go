package impl

import (
	"context"
	"testing"

	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	mockRepo "gazette/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIdentityService() *identityService {
	return &identityService{logger: newDiscardLogger()}
}

func appleIdentity() *service.ProviderIdentity {
	return &service.ProviderIdentity{
		Provider:      entity.ProviderApple,
		ProviderID:    "001234.abcdef",
		Email:         "reader@example.com",
		Name:          "Ada Lovelace",
		EmailVerified: true,
	}
}

func TestIdentityService_Resolve_ProviderKeyHit(t *testing.T) {
	srv := newIdentityService()
	ctx := context.Background()
	identity := appleIdentity()

	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "reader@example.com",
		Username:     "reader",
		AuthProvider: entity.ProviderApple,
		ProviderID:   "001234.abcdef",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockUserRepo.EXPECT().FindByProvider(ctx, entity.ProviderApple, "001234.abcdef").Return(existing, nil)
	mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, created, err := srv.Resolve(ctx, mockFactory, identity)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, user.ID)
	assert.True(t, user.Confirmed)
	assert.Equal(t, "Ada Lovelace", user.DisplayName)
}

func TestIdentityService_Resolve_EmailMerge(t *testing.T) {
	srv := newIdentityService()
	ctx := context.Background()
	identity := appleIdentity()

	// The account was created through Google; signing in with Apple on the
	// same inbox must converge onto it instead of forking a second account.
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "reader@example.com",
		Username:     "reader",
		AuthProvider: entity.ProviderGoogle,
		ProviderID:   "110248495921238986420",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockUserRepo.EXPECT().FindByProvider(ctx, entity.ProviderApple, "001234.abcdef").Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(existing, nil)
	mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, created, err := srv.Resolve(ctx, mockFactory, identity)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, entity.ProviderApple, user.AuthProvider)
	assert.Equal(t, "001234.abcdef", user.ProviderID)
}

func TestIdentityService_Resolve_CreatesUser(t *testing.T) {
	srv := newIdentityService()
	ctx := context.Background()
	identity := appleIdentity()
	identity.Email = "ada.lovelace+news@example.com"

	role := &entity.Role{ID: uuid.New(), Name: "Authenticated", Code: "authenticated"}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

	mockUserRepo.EXPECT().FindByProvider(ctx, entity.ProviderApple, "001234.abcdef").Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().FindByEmail(ctx, identity.Email).Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().UsernameExists(ctx, "ada_lovelace_news").Return(false, nil)
	mockRoleRepo.EXPECT().FindByCode(ctx, entity.DefaultRoleName).Return(role, nil)

	var createdUser *entity.User
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			createdUser = user
		}).
		Return(nil)

	user, created, err := srv.Resolve(ctx, mockFactory, identity)

	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, createdUser)
	assert.Equal(t, "ada_lovelace_news", user.Username)
	assert.Equal(t, "Ada Lovelace", user.DisplayName)
	assert.Equal(t, role, user.Role)
	assert.True(t, user.Confirmed)
}

func TestIdentityService_Resolve_UsernameCollisionProbesSuffix(t *testing.T) {
	srv := newIdentityService()
	ctx := context.Background()
	identity := appleIdentity()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockRoleRepo := mockRepo.NewMockRoleRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

	mockUserRepo.EXPECT().FindByProvider(ctx, entity.ProviderApple, "001234.abcdef").Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().FindByEmail(ctx, "reader@example.com").Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().UsernameExists(ctx, "reader").Return(true, nil)
	mockUserRepo.EXPECT().UsernameExists(ctx, "reader1").Return(true, nil)
	mockUserRepo.EXPECT().UsernameExists(ctx, "reader2").Return(false, nil)
	mockRoleRepo.EXPECT().FindByCode(ctx, entity.DefaultRoleName).Return(nil, repository.ErrRoleNotFound)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, created, err := srv.Resolve(ctx, mockFactory, identity)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "reader2", user.Username)
	assert.Nil(t, user.Role)
}

func TestIdentityService_Resolve_DisplayNameIsBackfillOnly(t *testing.T) {
	srv := newIdentityService()
	ctx := context.Background()

	identity := appleIdentity()
	identity.Provider = entity.ProviderGoogle
	identity.ProviderID = "110248495921238986420"
	identity.Name = "Provider Name"
	identity.AvatarURL = "https://example.com/new-avatar.png"

	existing := &entity.User{
		ID:          uuid.New(),
		Email:       "reader@example.com",
		DisplayName: "Chosen By User",
		AvatarURL:   "https://example.com/old-avatar.png",
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

	mockUserRepo.EXPECT().FindByProvider(ctx, entity.ProviderGoogle, "110248495921238986420").Return(existing, nil)
	mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, _, err := srv.Resolve(ctx, mockFactory, identity)

	require.NoError(t, err)
	assert.Equal(t, "Chosen By User", user.DisplayName)
	assert.Equal(t, "https://example.com/new-avatar.png", user.AvatarURL)
}

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "ada.lovelace@example.com", want: "ada_lovelace"},
		{email: "Reader+News@example.com", want: "reader_news"},
		{email: "reader42@example.com", want: "reader42"},
		{email: "", want: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameBase(tt.email))
		})
	}
}
