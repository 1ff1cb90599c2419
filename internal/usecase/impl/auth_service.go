package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gazette/config"
	deliverycontext "gazette/internal/delivery/context"
	"gazette/internal/domain/entity"
	domainerrors "gazette/internal/domain/errors"
	"gazette/internal/domain/repository"
	"gazette/internal/domain/service"
	"gazette/internal/infra/metrics"
	"gazette/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It orchestrates provider
// verification, identity resolution and session issuance.
type authService struct {
	verifiers    map[entity.Provider]service.ProviderVerifier
	tokenService service.TokenService
	otpStore     service.OtpStore
	mailer       service.Mailer
	identity     usecase.IdentityUsecase
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	refreshRepo  repository.RefreshTokenRepository
	collector    metrics.Collector
	otpTTL       time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config       *config.Config
	Verifiers    []service.ProviderVerifier `group:"verifiers"`
	TokenService service.TokenService
	OtpStore     service.OtpStore
	Mailer       service.Mailer
	Identity     usecase.IdentityUsecase
	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RefreshRepo  repository.RefreshTokenRepository
	Collector    metrics.Collector
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	verifiers := make(map[entity.Provider]service.ProviderVerifier, len(params.Verifiers))
	for _, v := range params.Verifiers {
		verifiers[v.Provider()] = v
	}

	return &authService{
		verifiers:    verifiers,
		tokenService: params.TokenService,
		otpStore:     params.OtpStore,
		mailer:       params.Mailer,
		identity:     params.Identity,
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		refreshRepo:  params.RefreshRepo,
		collector:    params.Collector,
		otpTTL:       params.Config.Otp.CodeTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn verifies the credentials, resolves the identity onto an account and
// opens a session.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("unsupported provider")
	}

	identity, err := verifier.Verify(ctx, input.Credentials)
	if err != nil {
		srv.collector.RecordSignInFailure(input.Provider.String())
		if input.Provider == entity.ProviderEmail {
			if reason := otpRejectionReason(err); reason != "" {
				srv.collector.RecordOtpRejected(reason)
			}
		}
		srv.log(ctx).Warn("Provider verification failed",
			slog.String("provider", input.Provider.String()),
			slog.String("error", err.Error()))

		return nil, err
	}

	var user *entity.User
	var created bool

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resolved, isNew, err := srv.identity.Resolve(ctx, repoFactory, identity)
		if err != nil {
			return err
		}
		if resolved.Blocked {
			return domainerrors.ErrUserBlocked.WrapMessage("sign-in rejected")
		}
		user, created = resolved, isNew

		return nil
	})
	if err != nil {
		srv.collector.RecordSignInFailure(input.Provider.String())

		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(ctx, user, input.Device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	srv.collector.RecordSignIn(input.Provider.String())
	srv.log(ctx).Info("User signed in",
		slog.Any("user_id", user.ID),
		slog.String("provider", input.Provider.String()),
		slog.Bool("created", created))

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenTTL().Seconds()),
		RefreshToken: refreshToken,
		User:         user,
		Created:      created,
	}, nil
}

// otpRejectionReason maps an OTP verification failure onto the reason label
// of the rejection counter. Non-OTP failures yield an empty reason.
func otpRejectionReason(err error) string {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return ""
	}

	switch appErr.ErrorCode() {
	case "OTP_NOT_FOUND":
		return "not_found"
	case "OTP_EXPIRED":
		return "expired"
	case "OTP_EXHAUSTED":
		return "exhausted"
	case "OTP_MISMATCH":
		return "mismatch"
	}

	return ""
}

// SendOtp generates a verification code and mails it. The acknowledgement is
// identical whether or not an account exists for the address.
func (srv *authService) SendOtp(ctx context.Context, input usecase.SendOtpInput) (*usecase.SendOtpOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("email is required")
	}
	if !input.AgreedToTerms {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("terms must be accepted")
	}

	limited, err := srv.otpStore.IsRateLimited(ctx, email)
	if err != nil {
		return nil, err
	}
	if limited {
		srv.collector.RecordOtpRejected("rate_limited")

		return nil, domainerrors.ErrRateLimited.WrapMessage("otp issuance capped")
	}

	code, err := srv.otpStore.GenerateAndStore(ctx, email)
	if err != nil {
		return nil, err
	}

	subject := "Your verification code"
	text := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(srv.otpTTL.Minutes()))
	html := fmt.Sprintf("<p>Your verification code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>",
		code, int(srv.otpTTL.Minutes()))

	if err := srv.mailer.Send(ctx, email, subject, text, html); err != nil {
		return nil, errors.Wrap(err, "failed to send otp mail")
	}

	srv.collector.RecordOtpIssued()
	srv.log(ctx).Info("OTP issued", slog.String("email", email))

	return &usecase.SendOtpOutput{
		Message:   "A verification code has been sent if the address is valid",
		ExpiresIn: int64(srv.otpTTL.Seconds()),
	}, nil
}

// Refresh exchanges a live refresh token for new credentials. Whether the
// refresh token itself rotates is the deployment's policy.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("no refresh token presented")
	}

	token, err := srv.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh rejected")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("session owner vanished")
		}

		return nil, errors.Wrap(err, "failed to load session owner")
	}
	if user.Blocked {
		return nil, domainerrors.ErrUserBlocked.WrapMessage("refresh rejected")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	output := &usecase.RefreshOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
	}

	device := service.DeviceContext{
		DeviceType: token.DeviceType,
		DeviceInfo: token.DeviceInfo,
		IPAddress:  token.IPAddress,
	}
	if input.Device.IPAddress != "" {
		device.IPAddress = input.Device.IPAddress
	}

	if srv.tokenService.RotationEnabled() {
		newToken, err := srv.tokenService.RotateRefreshToken(ctx, input.RefreshToken, user, device)
		if err != nil {
			// A concurrent refresh already consumed this plaintext.
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh rejected")
		}
		output.RefreshToken = newToken
		srv.collector.RecordTokenRotation()
	} else {
		if err := srv.tokenService.TouchRefreshToken(ctx, input.RefreshToken); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Logout revokes the presented session. The caller is told the logout
// succeeded even when the revoke fails: the client discards its tokens
// either way, and the stale session dies at its natural expiry.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := srv.tokenService.RevokeRefreshToken(ctx, refreshToken, entity.RevokedLogout); err != nil {
		srv.log(ctx).Warn("Logout revoke failed, reporting success anyway",
			slog.String("error", err.Error()))

		return nil
	}

	srv.collector.RecordRevocation(entity.RevokedLogout.String())

	return nil
}

// LogoutAll revokes every session of the user.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.tokenService.RevokeAllUserRefreshTokens(ctx, userID); err != nil {
		return err
	}

	srv.collector.RecordRevocation(entity.RevokedLogout.String())
	srv.log(ctx).Info("Revoked all sessions", slog.Any("user_id", userID))

	return nil
}

// CurrentUser returns the caller's profile.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// ListSessions returns the caller's active sessions, most recent first.
func (srv *authService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*usecase.SessionInfo, error) {
	tokens, err := srv.refreshRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*usecase.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &usecase.SessionInfo{
			ID:         token.ID,
			DeviceType: token.DeviceType,
			DeviceInfo: token.DeviceInfo,
			IPAddress:  token.IPAddress,
			CreatedAt:  token.CreatedAt,
			LastUsedAt: token.LastUsedAt,
			ExpiresAt:  token.ExpiresAt,
		})
	}

	return sessions, nil
}

// RevokeSession revokes one of the caller's sessions with reason security.
func (srv *authService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	token, err := srv.refreshRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("session not found")
		}

		return errors.Wrap(err, "failed to find session")
	}
	if token.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("session does not belong to caller")
	}

	affected, err := srv.refreshRepo.RevokeByID(ctx, sessionID, entity.RevokedSecurity)
	if err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}
	if affected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("session already revoked")
	}

	srv.collector.RecordRevocation(entity.RevokedSecurity.String())

	return nil
}
