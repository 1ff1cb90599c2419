package main

import (
	"context"
	"log/slog"
	"os"

	"gazette/config"
	"gazette/internal/delivery"
	"gazette/internal/delivery/http"
	"gazette/internal/delivery/http/middleware"
	"gazette/internal/delivery/http/router/handler"
	"gazette/internal/infra/auth"
	"gazette/internal/infra/auth/apple"
	"gazette/internal/infra/auth/google"
	"gazette/internal/infra/auth/otp"
	logs "gazette/internal/infra/log"
	"gazette/internal/infra/mail"
	"gazette/internal/infra/metrics"
	"gazette/internal/infra/persistence/postgres"
	"gazette/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		mail.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOtpRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenService,
			otp.NewStore,
			fx.Annotate(
				apple.NewAdapter,
				fx.ResultTags(`group:"verifiers"`),
			),
			fx.Annotate(
				google.NewAdapter,
				fx.ResultTags(`group:"verifiers"`),
			),
			fx.Annotate(
				otp.NewAdapter,
				fx.ResultTags(`group:"verifiers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
