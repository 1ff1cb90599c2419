package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"time"

	"gazette/config"
	deliverycontext "gazette/internal/delivery/context"
	"gazette/internal/domain/entity"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// refreshTokenBytes gives 256 bits of entropy per opaque token.
const refreshTokenBytes = 32

// tokenService implements service.TokenService on top of the JWT signer and
// the refresh token store.
type tokenService struct {
	signer          *jwtSigner
	refreshRepo     repository.RefreshTokenRepository
	txManager       repository.TransactionManager
	refreshTTL      time.Duration
	rotationEnabled bool
	logger          *slog.Logger
}

// TokenServiceParams holds dependencies for the token service, injected by Fx.
type TokenServiceParams struct {
	fx.In

	Config      *config.Config
	RefreshRepo repository.RefreshTokenRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) (service.TokenService, error) {
	signer, err := newJWTSigner(params.Config)
	if err != nil {
		return nil, err
	}

	return &tokenService{
		signer:          signer,
		refreshRepo:     params.RefreshRepo,
		txManager:       params.TxManager,
		refreshTTL:      params.Config.JWT.RefreshTTL,
		rotationEnabled: params.Config.JWT.RotationEnabled,
		logger:          params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateAccessToken creates a short-lived signed token for the user.
func (srv *tokenService) GenerateAccessToken(user *entity.User) (string, error) {
	return srv.signer.Sign(user)
}

// ValidateAccessToken verifies signature and expiry and returns the claims.
func (srv *tokenService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	return srv.signer.Verify(tokenString)
}

// GenerateRefreshToken mints a random opaque token and persists its hash.
// The plaintext is returned exactly once and never stored.
func (srv *tokenService) GenerateRefreshToken(ctx context.Context, user *entity.User, device service.DeviceContext) (string, error) {
	plaintext, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := &entity.RefreshToken{
		UserID:     user.ID,
		TokenHash:  HashToken(plaintext),
		DeviceType: device.DeviceType,
		DeviceInfo: device.DeviceInfo,
		IPAddress:  device.IPAddress,
		ExpiresAt:  now.Add(srv.refreshTTL),
		LastUsedAt: now,
	}

	if err := srv.refreshRepo.Create(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to persist refresh token")
	}

	srv.log(ctx).Debug("Issued refresh token",
		slog.Any("user_id", user.ID),
		slog.String("device_type", device.DeviceType.String()))

	return plaintext, nil
}

// ValidateRefreshToken returns the live session for the plaintext, or nil.
// Absent, revoked and expired rows all yield the same nil result so a caller
// probing tokens learns nothing about session state.
func (srv *tokenService) ValidateRefreshToken(ctx context.Context, plaintext string) (*entity.RefreshToken, error) {
	token, err := srv.refreshRepo.FindByHash(ctx, HashToken(plaintext))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	if !token.Active(time.Now()) {
		return nil, nil
	}

	return token, nil
}

// RotateRefreshToken revokes the presented token and mints a replacement in
// one transaction. The conditional revoke decides refresh races: a second
// rotation with the same stale plaintext observes zero affected rows and
// fails instead of producing a second live token.
func (srv *tokenService) RotateRefreshToken(ctx context.Context, oldPlaintext string, user *entity.User, device service.DeviceContext) (string, error) {
	plaintext, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	oldHash := HashToken(oldPlaintext)
	now := time.Now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		affected, err := refreshRepo.Revoke(ctx, oldHash, entity.RevokedRotated)
		if err != nil {
			return errors.Wrap(err, "failed to revoke superseded refresh token")
		}
		if affected == 0 {
			return errors.New("refresh token already rotated or revoked")
		}

		replacement := &entity.RefreshToken{
			UserID:     user.ID,
			TokenHash:  HashToken(plaintext),
			DeviceType: device.DeviceType,
			DeviceInfo: device.DeviceInfo,
			IPAddress:  device.IPAddress,
			ExpiresAt:  now.Add(srv.refreshTTL),
			LastUsedAt: now,
		}

		return refreshRepo.Create(ctx, replacement)
	})
	if err != nil {
		return "", err
	}

	srv.log(ctx).Debug("Rotated refresh token", slog.Any("user_id", user.ID))

	return plaintext, nil
}

// RevokeRefreshToken marks the matching session revoked. A missing row is a
// no-op, not an error.
func (srv *tokenService) RevokeRefreshToken(ctx context.Context, plaintext string, reason entity.RevocationReason) error {
	if _, err := srv.refreshRepo.Revoke(ctx, HashToken(plaintext), reason); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// RevokeAllUserRefreshTokens bulk-revokes every live session of the user.
func (srv *tokenService) RevokeAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	if err := srv.refreshRepo.RevokeAllByUserID(ctx, userID, entity.RevokedLogout); err != nil {
		return errors.Wrap(err, "failed to revoke user refresh tokens")
	}

	return nil
}

// TouchRefreshToken advances lastUsedAt; used when rotation is disabled.
func (srv *tokenService) TouchRefreshToken(ctx context.Context, plaintext string) error {
	if err := srv.refreshRepo.TouchLastUsed(ctx, HashToken(plaintext), time.Now()); err != nil {
		return errors.Wrap(err, "failed to touch refresh token")
	}

	return nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (srv *tokenService) AccessTokenTTL() time.Duration {
	return srv.signer.AccessTTL()
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (srv *tokenService) RefreshTokenTTL() time.Duration {
	return srv.refreshTTL
}

// RotationEnabled reports the deployment's rotation policy.
func (srv *tokenService) RotationEnabled() bool {
	return srv.rotationEnabled
}

// newOpaqueToken draws a URL-safe random token from a cryptographically
// secure source.
func newOpaqueToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken returns the SHA-256 hex digest stored in place of a plaintext
// token or OTP code.
func HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))

	return hex.EncodeToString(sum[:])
}
