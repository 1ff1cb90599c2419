package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignerConfig(jwtCfg *config.JWTConfig) *config.Config {
	cfg := &config.Config{}
	cfg.JWT = jwtCfg

	return cfg
}

func testUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "reader@example.com",
		AuthProvider: entity.ProviderGoogle,
		Role:         &entity.Role{ID: uuid.New(), Name: "Authenticated", Code: "authenticated"},
	}
}

func TestJWTSigner_HS256_SignAndVerify(t *testing.T) {
	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	user := testUser()
	tokenString, err := signer.Sign(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "Authenticated", claims.Role)
	assert.Equal(t, "google", claims.Provider)
	assert.Equal(t, "gazette", claims.Issuer)
}

func TestJWTSigner_RS256_SignAndVerify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		PrivateKey: string(privatePEM),
		Issuer:     "gazette",
		Audience:   "gazette-clients",
		AccessTTL:  15 * time.Minute,
	}))
	require.NoError(t, err)

	user := testUser()
	tokenString, err := signer.Sign(user)
	require.NoError(t, err)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestJWTSigner_RejectsWrongSecret(t *testing.T) {
	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "first-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	other, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "second-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	tokenString, err := signer.Sign(testUser())
	require.NoError(t, err)

	_, err = other.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTSigner_RejectsExpiredToken(t *testing.T) {
	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: -time.Minute,
	}))
	require.NoError(t, err)

	tokenString, err := signer.Sign(testUser())
	require.NoError(t, err)

	_, err = signer.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTSigner_RejectsWrongAudience(t *testing.T) {
	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "gazette",
		Audience:  "someone-else",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	verifier, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	tokenString, err := signer.Sign(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestJWTSigner_RoleFallsBackToDefault(t *testing.T) {
	signer, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Secret:    "test-secret",
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	require.NoError(t, err)

	user := testUser()
	user.Role = nil

	tokenString, err := signer.Sign(user)
	require.NoError(t, err)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRoleName, claims.Role)
}

func TestNewJWTSigner_RequiresKeyMaterial(t *testing.T) {
	_, err := newJWTSigner(newSignerConfig(&config.JWTConfig{
		Issuer:    "gazette",
		Audience:  "gazette-clients",
		AccessTTL: 15 * time.Minute,
	}))
	assert.Error(t, err)
}
