// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gazette/config"
	"gazette/internal/delivery/http/middleware"
	"gazette/internal/delivery/http/response"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/service"
	"gazette/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the cookie web clients hold their refresh token in.
const refreshCookieName = "refresh_token"

// refreshCookiePath scopes the cookie to the auth endpoints, so it never
// rides along on ordinary API traffic.
const refreshCookiePath = "/auth"

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// --- Request / response DTOs ---

type appleSignInRequest struct {
	Code     string `json:"code" validate:"required"`
	Platform string `json:"platform"`
	User     *struct {
		Name struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"name"`
	} `json:"user"`
}

type googleSignInRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	Platform string `json:"platform"`
}

type sendOtpRequest struct {
	Email         string `json:"email" validate:"required,email"`
	AgreedToTerms bool   `json:"agreedToTerms"`
}

type verifyOtpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Otp      string `json:"otp" validate:"required"`
	Platform string `json:"platform"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type userView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName,omitempty"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AuthProvider string    `json:"authProvider"`
	Role         string    `json:"role"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type sessionResponse struct {
	AccessToken  string    `json:"accessToken"`
	ExpiresIn    int64     `json:"expiresIn"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	User         *userView `json:"user"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

type sessionView struct {
	ID         uuid.UUID `json:"id"`
	DeviceType string    `json:"deviceType"`
	DeviceInfo string    `json:"deviceInfo,omitempty"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastUsedAt time.Time `json:"lastUsedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// --- Sign-in endpoints ---

// AppleSignIn exchanges an Apple authorization code for a session.
func (h *AuthHandler) AppleSignIn(c echo.Context) error {
	var req appleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid Apple sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	creds := service.Credentials{Code: req.Code}
	if req.User != nil {
		creds.GivenName = req.User.Name.FirstName
		creds.FamilyName = req.User.Name.LastName
	}

	return h.signIn(c, entity.ProviderApple, creds, req.Platform)
}

// GoogleSignIn verifies a Google ID token and opens a session.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.signIn(c, entity.ProviderGoogle, service.Credentials{IDToken: req.IDToken}, req.Platform)
}

// SendOtp mails a verification code to the address.
func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req sendOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid OTP request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SendOtp(c.Request().Context(), usecase.SendOtpInput{
		Email:         req.Email,
		AgreedToTerms: req.AgreedToTerms,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":   output.Message,
		"expiresIn": output.ExpiresIn,
	}, "Verification code requested")
}

// VerifyOtp verifies a mailed code and opens a session.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req verifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid OTP verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.signIn(c, entity.ProviderEmail, service.Credentials{Email: req.Email, Otp: req.Otp}, req.Platform)
}

// signIn runs the shared sign-in flow and delivers tokens per platform:
// web clients get the refresh token in a scoped cookie, native clients get
// it in the body. The access token always travels in the body.
func (h *AuthHandler) signIn(c echo.Context, provider entity.Provider, creds service.Credentials, platform string) error {
	deviceType, err := parsePlatform(platform)
	if err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Provider:    provider,
		Credentials: creds,
		Device: service.DeviceContext{
			DeviceType: deviceType,
			DeviceInfo: c.Request().UserAgent(),
			IPAddress:  c.RealIP(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := &sessionResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
		User:        toUserView(output.User),
	}

	if deviceType == entity.DeviceWeb {
		h.setRefreshCookie(c, output.RefreshToken)
	} else {
		resp.RefreshToken = output.RefreshToken
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, resp, "Signed in")
}

// --- Session endpoints ---

// Refresh exchanges a refresh token, from body or cookie, for new credentials.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid refresh input")
	}

	plaintext, fromCookie := h.refreshTokenFromRequest(c, req.RefreshToken)

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		RefreshToken: plaintext,
		Device: service.DeviceContext{
			DeviceInfo: c.Request().UserAgent(),
			IPAddress:  c.RealIP(),
		},
	})
	if err != nil {
		if fromCookie {
			h.clearRefreshCookie(c)
		}

		return errors.WithStack(err)
	}

	resp := &refreshResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
	}

	if output.RefreshToken != "" {
		if fromCookie {
			h.setRefreshCookie(c, output.RefreshToken)
		} else {
			resp.RefreshToken = output.RefreshToken
		}
	}

	return response.Success(c, http.StatusOK, resp, "Token refreshed")
}

// Logout revokes the presented session and clears the cookie. It reports
// success unconditionally; the client-side token discard is the primary
// guarantee.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		// A malformed body must not keep the user logged in.
		req.RefreshToken = ""
	}

	plaintext, _ := h.refreshTokenFromRequest(c, req.RefreshToken)

	if err := h.uc.Logout(c.Request().Context(), plaintext); err != nil {
		h.logger.Warn("Logout failed", slog.String("error", err.Error()))
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

// LogoutAll revokes every session of the caller.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.uc.LogoutAll(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Logout successful")
}

// Me returns the caller's sanitized profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile retrieved")
}

// ListSessions returns the caller's active sessions.
func (h *AuthHandler) ListSessions(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*sessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, &sessionView{
			ID:         s.ID,
			DeviceType: s.DeviceType.String(),
			DeviceInfo: s.DeviceInfo,
			IPAddress:  s.IPAddress,
			CreatedAt:  s.CreatedAt,
			LastUsedAt: s.LastUsedAt,
			ExpiresAt:  s.ExpiresAt,
		})
	}

	return response.Success(c, http.StatusOK, views, "Sessions retrieved")
}

// RevokeSession revokes one of the caller's sessions.
func (h *AuthHandler) RevokeSession(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("malformed session id")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked")
}

// --- Helpers ---

// refreshTokenFromRequest prefers the body token and falls back to the
// cookie, reporting which source supplied it.
func (h *AuthHandler) refreshTokenFromRequest(c echo.Context, bodyToken string) (string, bool) {
	if bodyToken != "" {
		return bodyToken, false
	}

	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, plaintext string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    plaintext,
		Path:     refreshCookiePath,
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   int(h.cfg.JWT.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// parsePlatform maps the request's platform field onto a device type,
// defaulting to web.
func parsePlatform(platform string) (entity.DeviceType, error) {
	if platform == "" {
		return entity.DeviceWeb, nil
	}

	deviceType := entity.DeviceType(platform)
	if !deviceType.IsValid() {
		return "", domainerrors.ErrInvalidRequest.WithDetails("unknown platform")
	}

	return deviceType, nil
}

// callerID reads the authenticated user ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("caller identity missing")
	}

	return userID, nil
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		AvatarURL:    user.AvatarURL,
		Bio:          user.Bio,
		AuthProvider: user.AuthProvider.String(),
		Role:         user.RoleName(),
		Confirmed:    user.Confirmed,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
