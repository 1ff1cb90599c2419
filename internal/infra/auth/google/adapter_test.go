package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "gazette.apps.googleusercontent.com"

func newTestAdapter(t *testing.T, endpoint string) service.ProviderVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.Google = &config.GoogleConfig{
		ClientID:          testClientID,
		TokenInfoEndpoint: endpoint,
	}

	verifier, err := NewAdapter(AdapterParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return verifier
}

func validTokenInfo() map[string]string {
	return map[string]string{
		"sub":            "110248495921238986420",
		"aud":            testClientID,
		"iss":            "https://accounts.google.com",
		"exp":            strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10),
		"email":          "Reader@Gmail.COM",
		"email_verified": "true",
		"name":           "Ada Lovelace",
		"picture":        "https://lh3.googleusercontent.com/a/photo",
	}
}

func serveTokenInfo(t *testing.T, info map[string]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the-id-token", r.URL.Query().Get("id_token"))
		_ = json.NewEncoder(w).Encode(info)
	}))
}

func TestAdapter_Verify_Success(t *testing.T) {
	server := serveTokenInfo(t, validTokenInfo())
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	identity, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, identity.Provider)
	assert.Equal(t, "110248495921238986420", identity.ProviderID)
	assert.Equal(t, "reader@gmail.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Ada Lovelace", identity.Name)
	assert.Equal(t, "https://lh3.googleusercontent.com/a/photo", identity.AvatarURL)
}

func TestAdapter_Verify_RejectsForeignAudience(t *testing.T) {
	info := validTokenInfo()
	info["aud"] = "someone-else.apps.googleusercontent.com"

	server := serveTokenInfo(t, info)
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	assertProviderValidationFailed(t, err)
}

func TestAdapter_Verify_RejectsUnknownIssuer(t *testing.T) {
	info := validTokenInfo()
	info["iss"] = "https://evil.example.com"

	server := serveTokenInfo(t, info)
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	assertProviderValidationFailed(t, err)
}

func TestAdapter_Verify_RejectsExpiredToken(t *testing.T) {
	info := validTokenInfo()
	info["exp"] = strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10)

	server := serveTokenInfo(t, info)
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	assertProviderValidationFailed(t, err)
}

func TestAdapter_Verify_RejectsIntrospectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_token"})
	}))
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	_, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	assertProviderValidationFailed(t, err)
}

func TestAdapter_Verify_UnverifiedEmailIsCarried(t *testing.T) {
	info := validTokenInfo()
	info["email_verified"] = "false"

	server := serveTokenInfo(t, info)
	defer server.Close()

	verifier := newTestAdapter(t, server.URL)

	identity, err := verifier.Verify(context.Background(), service.Credentials{IDToken: "the-id-token"})

	require.NoError(t, err)
	assert.False(t, identity.EmailVerified)
}

func TestAdapter_Verify_RequiresIDToken(t *testing.T) {
	verifier := newTestAdapter(t, "http://unreachable.invalid")

	_, err := verifier.Verify(context.Background(), service.Credentials{})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_REQUEST", appErr.ErrorCode())
}

func TestNewAdapter_RequiresClientID(t *testing.T) {
	cfg := &config.Config{}
	cfg.Google = &config.GoogleConfig{}

	_, err := NewAdapter(AdapterParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func assertProviderValidationFailed(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_VALIDATION_FAILED", appErr.ErrorCode())
}
