// Package google verifies Google ID tokens through Google's public
// tokeninfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gazette/config"
	deliverycontext "gazette/internal/delivery/context"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"

const introspectTimeout = 10 * time.Second

// acceptedIssuers are the two issuer strings Google signs with.
var acceptedIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// adapter delegates signature verification to Google's tokeninfo endpoint
// and enforces audience, issuer and expiry locally.
type adapter struct {
	clientID   string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// AdapterParams holds dependencies for the Google verifier, injected by Fx.
type AdapterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAdapter is the constructor for the Google verifier.
func NewAdapter(params AdapterParams) (service.ProviderVerifier, error) {
	cfg := params.Config.Google
	if cfg == nil || cfg.ClientID == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("google client id missing")
	}

	endpoint := cfg.TokenInfoEndpoint
	if endpoint == "" {
		endpoint = defaultTokenInfoEndpoint
	}

	return &adapter{
		clientID:   cfg.ClientID,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: introspectTimeout},
		logger:     params.Logger,
	}, nil
}

// Provider identifies this verifier.
func (a *adapter) Provider() entity.Provider {
	return entity.ProviderGoogle
}

// tokenInfo is the subset of the tokeninfo response we consume. All numeric
// fields arrive as strings.
type tokenInfo struct {
	Subject       string `json:"sub"`
	Audience      string `json:"aud"`
	Issuer        string `json:"iss"`
	Expiry        string `json:"exp"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Verify introspects the ID token and returns the normalized identity. An
// audience mismatch means a token minted for another application is being
// replayed here, and fails like any other inconsistency.
func (a *adapter) Verify(ctx context.Context, creds service.Credentials) (*service.ProviderIdentity, error) {
	if creds.IDToken == "" {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("id token is required")
	}

	endpoint := a.endpoint + "?id_token=" + url.QueryEscape(creds.IDToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tokeninfo request")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call tokeninfo endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tokeninfo response")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Google rejected ID token", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.ErrProviderValidationFailed.WithDetails("google rejected the id token")
	}

	var info tokenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.Wrap(err, "failed to decode tokeninfo response")
	}

	if info.Audience != a.clientID {
		logger.Warn("Google ID token audience mismatch", slog.String("aud", info.Audience))

		return nil, domainerrors.ErrProviderValidationFailed.WithDetails("id token audience mismatch")
	}
	if _, ok := acceptedIssuers[info.Issuer]; !ok {
		return nil, domainerrors.ErrProviderValidationFailed.WithDetails("unexpected id token issuer")
	}

	exp, err := strconv.ParseInt(info.Expiry, 10, 64)
	if err != nil || time.Now().Unix() >= exp {
		return nil, domainerrors.ErrProviderValidationFailed.WithDetails("id token expired")
	}

	if info.Subject == "" {
		return nil, domainerrors.ErrProviderValidationFailed.WithDetails("id token missing subject")
	}

	return &service.ProviderIdentity{
		Provider:      entity.ProviderGoogle,
		ProviderID:    info.Subject,
		Email:         strings.ToLower(info.Email),
		Name:          info.Name,
		AvatarURL:     info.Picture,
		EmailVerified: info.EmailVerified == "true",
	}, nil
}
