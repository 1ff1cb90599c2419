package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gazette/config"
	"gazette/internal/delivery/http/middleware"
	"gazette/internal/delivery/http/validator"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	mockUsecase "gazette/internal/mocks/usecase"
	"gazette/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockAuthUsecase(t)

	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{RefreshTTL: 7 * 24 * time.Hour}
	cfg.Cookie = &config.CookieConfig{Domain: "example.com"}

	e := echo.New()
	e.Validator = validator.New()

	h := NewAuthHandler(uc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	return envelope.Data
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func sessionOutput(created bool) *usecase.SessionOutput {
	return &usecase.SessionOutput{
		AccessToken:  "signed-access-token",
		ExpiresIn:    900,
		RefreshToken: "opaque-refresh-token",
		User: &entity.User{
			ID:           uuid.New(),
			Email:        "reader@example.com",
			Username:     "reader",
			AuthProvider: entity.ProviderGoogle,
		},
		Created: created,
	}
}

func TestGoogleSignIn_WebGetsCookieNotBodyToken(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("usecase.SignInInput")).
		RunAndReturn(func(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
			assert.Equal(t, entity.ProviderGoogle, input.Provider)
			assert.Equal(t, "the-id-token", input.Credentials.IDToken)
			assert.Equal(t, entity.DeviceWeb, input.Device.DeviceType)

			return sessionOutput(false), nil
		})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/google", `{"idToken":"the-id-token"}`)

	require.NoError(t, h.GoogleSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-refresh-token", cookie.Value)
	assert.Equal(t, "/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "signed-access-token", data["accessToken"])
	assert.NotContains(t, data, "refreshToken")
}

func TestGoogleSignIn_NativeGetsBodyToken(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("usecase.SignInInput")).
		RunAndReturn(func(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
			assert.Equal(t, entity.DeviceIOS, input.Device.DeviceType)

			return sessionOutput(true), nil
		})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/google", `{"idToken":"the-id-token","platform":"ios"}`)

	require.NoError(t, h.GoogleSignIn(c))
	// A first sign-in creates the account.
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Nil(t, findCookie(t, rec, "refresh_token"))

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "opaque-refresh-token", data["refreshToken"])
}

func TestGoogleSignIn_UnknownPlatform(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/google", `{"idToken":"the-id-token","platform":"desktop"}`)

	err := h.GoogleSignIn(c)

	assertHandlerErrorCode(t, err, "INVALID_REQUEST")
}

func TestGoogleSignIn_RequiresIDToken(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/google", `{}`)

	err := h.GoogleSignIn(c)

	assertHandlerErrorCode(t, err, "INVALID_REQUEST")
}

func TestAppleSignIn_CarriesClientName(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("usecase.SignInInput")).
		RunAndReturn(func(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
			assert.Equal(t, entity.ProviderApple, input.Provider)
			assert.Equal(t, "auth-code", input.Credentials.Code)
			assert.Equal(t, "Ada", input.Credentials.GivenName)
			assert.Equal(t, "Lovelace", input.Credentials.FamilyName)

			return sessionOutput(false), nil
		})

	body := `{"code":"auth-code","user":{"name":{"firstName":"Ada","lastName":"Lovelace"}}}`
	c, rec := newJSONContext(e, http.MethodPost, "/auth/apple", body)

	require.NoError(t, h.AppleSignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyOtp_SignsInWithEmailProvider(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("usecase.SignInInput")).
		RunAndReturn(func(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
			assert.Equal(t, entity.ProviderEmail, input.Provider)
			assert.Equal(t, "reader@example.com", input.Credentials.Email)
			assert.Equal(t, "482916", input.Credentials.Otp)

			return sessionOutput(false), nil
		})

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/verify", `{"email":"reader@example.com","otp":"482916"}`)

	require.NoError(t, h.VerifyOtp(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendOtp(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		SendOtp(mock.Anything, usecase.SendOtpInput{Email: "reader@example.com", AgreedToTerms: true}).
		Return(&usecase.SendOtpOutput{
			Message:   "A verification code has been sent if the address is valid",
			ExpiresIn: 600,
		}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{"email":"reader@example.com","agreedToTerms":true}`)

	require.NoError(t, h.SendOtp(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "A verification code has been sent if the address is valid", data["message"])
}

func TestSendOtp_RejectsMalformedEmail(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{"email":"not-an-address","agreedToTerms":true}`)

	err := h.SendOtp(c)

	assertHandlerErrorCode(t, err, "INVALID_REQUEST")
}

func TestRefresh_FromCookieRotatesCookie(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		Refresh(mock.Anything, mock.AnythingOfType("usecase.RefreshInput")).
		RunAndReturn(func(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
			assert.Equal(t, "old-plaintext", input.RefreshToken)

			return &usecase.RefreshOutput{
				AccessToken:  "fresh-access-token",
				ExpiresIn:    900,
				RefreshToken: "new-plaintext",
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-plaintext"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, "new-plaintext", cookie.Value)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "fresh-access-token", data["accessToken"])
	assert.NotContains(t, data, "refreshToken")
}

func TestRefresh_FromBodyReturnsBodyToken(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		Refresh(mock.Anything, mock.AnythingOfType("usecase.RefreshInput")).
		Return(&usecase.RefreshOutput{
			AccessToken:  "fresh-access-token",
			ExpiresIn:    900,
			RefreshToken: "new-plaintext",
		}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/refresh", `{"refreshToken":"old-plaintext"}`)

	require.NoError(t, h.Refresh(c))

	assert.Nil(t, findCookie(t, rec, "refresh_token"))

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "new-plaintext", data["refreshToken"])
}

func TestRefresh_RejectionClearsCookie(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().
		Refresh(mock.Anything, mock.AnythingOfType("usecase.RefreshInput")).
		Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh rejected"))

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "dead-plaintext"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Refresh(c)

	assertHandlerErrorCode(t, err, "TOKEN_INVALID")

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestLogout_AlwaysSucceedsAndClearsCookie(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().Logout(mock.Anything, "the-plaintext").Return(assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "the-plaintext"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, "refresh_token")
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestLogout_WithoutToken(t *testing.T) {
	h, uc, e := newTestHandler(t)

	uc.EXPECT().Logout(mock.Anything, "").Return(nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/logout", `{}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe(t *testing.T) {
	h, uc, e := newTestHandler(t)
	userID := uuid.New()
	createdAt := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(48 * time.Hour)

	uc.EXPECT().CurrentUser(mock.Anything, userID).Return(&entity.User{
		ID:           userID,
		Email:        "reader@example.com",
		Username:     "reader",
		AuthProvider: entity.ProviderGoogle,
		Confirmed:    true,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/auth/me", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, "reader@example.com", data["email"])
	assert.Equal(t, "google", data["authProvider"])
	assert.Equal(t, entity.DefaultRoleName, data["role"])
	assert.Equal(t, createdAt.Format(time.RFC3339), data["createdAt"])
	assert.Equal(t, updatedAt.Format(time.RFC3339), data["updatedAt"])
	assert.NotContains(t, data, "provider")
}

func TestMe_WithoutCallerIdentity(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodGet, "/auth/me", "")

	err := h.Me(c)

	assertHandlerErrorCode(t, err, "UNAUTHORIZED")
}

func TestListSessions(t *testing.T) {
	h, uc, e := newTestHandler(t)
	userID := uuid.New()
	sessionID := uuid.New()

	uc.EXPECT().ListSessions(mock.Anything, userID).Return([]*usecase.SessionInfo{
		{ID: sessionID, DeviceType: entity.DeviceWeb, IPAddress: "203.0.113.7"},
	}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/auth/sessions", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, sessionID.String(), envelope.Data[0]["id"])
	assert.Equal(t, "web", envelope.Data[0]["deviceType"])
}

func TestRevokeSession_MalformedID(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newJSONContext(e, http.MethodDelete, "/auth/sessions/nonsense", "")
	c.Set(middleware.ContextKeyUserID, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nonsense")

	err := h.RevokeSession(c)

	assertHandlerErrorCode(t, err, "INVALID_REQUEST")
}

func TestRevokeSession(t *testing.T) {
	h, uc, e := newTestHandler(t)
	userID := uuid.New()
	sessionID := uuid.New()

	uc.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/auth/sessions/"+sessionID.String(), "")
	c.Set(middleware.ContextKeyUserID, userID)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	require.NoError(t, h.RevokeSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func assertHandlerErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
