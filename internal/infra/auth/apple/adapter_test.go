package apple

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrivateKeyPEM(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der}))
}

func newTestAdapter(t *testing.T, endpoint string) service.ProviderVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.Apple = &config.AppleConfig{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		ServicesID:    "com.example.gazette",
		PrivateKey:    testPrivateKeyPEM(t),
		TokenEndpoint: endpoint,
	}

	verifier, err := NewAdapter(AdapterParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return verifier
}

// fakeIdentityToken builds a compact JWS carrying the given claims. The
// adapter only decodes the payload, so the signature part is arbitrary.
func fakeIdentityToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","kid":"test"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func TestAdapter_Verify_Success(t *testing.T) {
	idToken := fakeIdentityToken(t, map[string]any{
		"sub":            "001234.abcdef",
		"email":          "Reader@Privaterelay.Appleid.COM",
		"email_verified": true,
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "com.example.gazette", r.PostForm.Get("client_id"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.NotEmpty(t, r.PostForm.Get("client_secret"))

		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": idToken})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	identity, err := verifier.Verify(context.Background(), service.Credentials{
		Code:       "auth-code",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderApple, identity.Provider)
	assert.Equal(t, "001234.abcdef", identity.ProviderID)
	assert.Equal(t, "reader@privaterelay.appleid.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Ada Lovelace", identity.Name)
}

func TestAdapter_Verify_EmailVerifiedAsString(t *testing.T) {
	idToken := fakeIdentityToken(t, map[string]any{
		"sub":            "001234.abcdef",
		"email":          "reader@example.com",
		"email_verified": "true",
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": idToken})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	identity, err := verifier.Verify(context.Background(), service.Credentials{Code: "auth-code"})

	require.NoError(t, err)
	assert.True(t, identity.EmailVerified)
}

func TestAdapter_Verify_RejectedCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{Code: "stale-code"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdapter_Verify_MalformedIdentityToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": "not-a-jws"})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{Code: "auth-code"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAdapter_Verify_MissingSubject(t *testing.T) {
	idToken := fakeIdentityToken(t, map[string]any{"email": "reader@example.com"})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": idToken})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{Code: "auth-code"})

	assert.Error(t, err)
}

func TestAdapter_Verify_RequiresCode(t *testing.T) {
	verifier := newTestAdapter(t, "http://unreachable.invalid")

	_, err := verifier.Verify(context.Background(), service.Credentials{})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
}

func TestNewAdapter_RequiresCompleteConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Apple = &config.AppleConfig{TeamID: "TEAM123456"}

	_, err := NewAdapter(AdapterParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestClientSecretSigner_Sign(t *testing.T) {
	signer, err := newClientSecretSigner("TEAM123456", "KEY1234567", "com.example.gazette", testPrivateKeyPEM(t))
	require.NoError(t, err)

	now := time.Now()
	secret, err := signer.Sign(now)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(secret, &claims)
	require.NoError(t, err)

	assert.Equal(t, "ES256", token.Header["alg"])
	assert.Equal(t, "KEY1234567", token.Header["kid"])
	assert.Equal(t, "TEAM123456", claims.Issuer)
	assert.Equal(t, "com.example.gazette", claims.Subject)
	assert.Contains(t, claims.Audience, appleAudience)
	assert.WithinDuration(t, now.Add(clientSecretTTL), claims.ExpiresAt.Time, time.Second)
}
