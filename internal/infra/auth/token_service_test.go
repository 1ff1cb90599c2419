package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	mockRepo "gazette/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, refreshRepo repository.RefreshTokenRepository, txManager repository.TransactionManager, rotation bool) service.TokenService {
	t.Helper()

	cfg := newSignerConfig(&config.JWTConfig{
		Secret:          "test-secret",
		Issuer:          "gazette",
		Audience:        "gazette-clients",
		AccessTTL:       15 * time.Minute,
		RefreshTTL:      7 * 24 * time.Hour,
		RotationEnabled: rotation,
	})

	svc, err := NewTokenService(TokenServiceParams{
		Config:      cfg,
		RefreshRepo: refreshRepo,
		TxManager:   txManager,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return svc
}

func TestTokenService_GenerateRefreshToken_StoresHashOnly(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	svc := newTokenService(t, refreshRepo, mockRepo.NewMockTransactionManager(t), true)

	ctx := context.Background()
	user := testUser()
	device := service.DeviceContext{DeviceType: entity.DeviceIOS, DeviceInfo: "app/1.0", IPAddress: "203.0.113.7"}

	var stored *entity.RefreshToken
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			stored = token
		}).
		Return(nil)

	plaintext, err := svc.GenerateRefreshToken(ctx, user, device)

	require.NoError(t, err)
	require.NotEmpty(t, plaintext)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, HashToken(plaintext), stored.TokenHash)
	assert.NotContains(t, stored.TokenHash, plaintext)
	assert.Equal(t, entity.DeviceIOS, stored.DeviceType)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), stored.ExpiresAt, time.Minute)
}

func TestTokenService_ValidateRefreshToken_ReturnsLiveSession(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	svc := newTokenService(t, refreshRepo, mockRepo.NewMockTransactionManager(t), true)

	ctx := context.Background()
	plaintext := "opaque-token"
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: HashToken(plaintext),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	refreshRepo.EXPECT().FindByHash(ctx, HashToken(plaintext)).Return(token, nil)

	found, err := svc.ValidateRefreshToken(ctx, plaintext)

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, token.ID, found.ID)
}

func TestTokenService_ValidateRefreshToken_UniformNil(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name  string
		token *entity.RefreshToken
		err   error
	}{
		{
			name: "absent",
			err:  repository.ErrRefreshTokenNotFound,
		},
		{
			name: "revoked",
			token: &entity.RefreshToken{
				TokenHash: HashToken("opaque-token"),
				ExpiresAt: now.Add(time.Hour),
				Revoked:   true,
			},
		},
		{
			name: "expired",
			token: &entity.RefreshToken{
				TokenHash: HashToken("opaque-token"),
				ExpiresAt: now.Add(-time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			svc := newTokenService(t, refreshRepo, mockRepo.NewMockTransactionManager(t), true)

			refreshRepo.EXPECT().FindByHash(ctx, HashToken("opaque-token")).Return(tt.token, tt.err)

			found, err := svc.ValidateRefreshToken(ctx, "opaque-token")

			require.NoError(t, err)
			assert.Nil(t, found)
		})
	}
}

func TestTokenService_RotateRefreshToken_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := newTokenService(t, mockRepo.NewMockRefreshTokenRepository(t), txManager, true)

	ctx := context.Background()
	user := testUser()
	oldPlaintext := "stale-token"
	device := service.DeviceContext{DeviceType: entity.DeviceWeb}

	var replacement *entity.RefreshToken
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
			txRefreshRepo.EXPECT().Revoke(ctx, HashToken(oldPlaintext), entity.RevokedRotated).Return(int64(1), nil)
			txRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					replacement = token
				}).
				Return(nil)

			return fn(mockFactory)
		})

	plaintext, err := svc.RotateRefreshToken(ctx, oldPlaintext, user, device)

	require.NoError(t, err)
	require.NotEmpty(t, plaintext)
	require.NotNil(t, replacement)
	assert.Equal(t, HashToken(plaintext), replacement.TokenHash)
	assert.NotEqual(t, HashToken(oldPlaintext), replacement.TokenHash)
}

func TestTokenService_RotateRefreshToken_LosesRace(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := newTokenService(t, mockRepo.NewMockRefreshTokenRepository(t), txManager, true)

	ctx := context.Background()
	oldPlaintext := "stale-token"

	// A concurrent refresh already revoked the row, so the conditional
	// revoke reports zero affected rows and no replacement is created.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
			txRefreshRepo.EXPECT().Revoke(ctx, HashToken(oldPlaintext), entity.RevokedRotated).Return(int64(0), nil)

			return fn(mockFactory)
		})

	_, err := svc.RotateRefreshToken(ctx, oldPlaintext, testUser(), service.DeviceContext{})

	assert.Error(t, err)
}

func TestTokenService_RevokeRefreshToken_MissingRowIsNoop(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	svc := newTokenService(t, refreshRepo, mockRepo.NewMockTransactionManager(t), true)

	ctx := context.Background()
	refreshRepo.EXPECT().Revoke(ctx, HashToken("unknown"), entity.RevokedLogout).Return(int64(0), nil)

	err := svc.RevokeRefreshToken(ctx, "unknown", entity.RevokedLogout)

	assert.NoError(t, err)
}

func TestTokenService_RevokeAllUserRefreshTokens(t *testing.T) {
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	svc := newTokenService(t, refreshRepo, mockRepo.NewMockTransactionManager(t), true)

	ctx := context.Background()
	userID := uuid.New()
	refreshRepo.EXPECT().RevokeAllByUserID(ctx, userID, entity.RevokedLogout).Return(nil)

	err := svc.RevokeAllUserRefreshTokens(ctx, userID)

	assert.NoError(t, err)
}

func TestTokenService_TTLsAndRotationPolicy(t *testing.T) {
	svc := newTokenService(t, mockRepo.NewMockRefreshTokenRepository(t), mockRepo.NewMockTransactionManager(t), false)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenTTL())
	assert.False(t, svc.RotationEnabled())
}
