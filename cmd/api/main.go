package main

import (
	"context"
	"log/slog"
	"os"

	"medlink/config"
	"medlink/internal/delivery"
	"medlink/internal/delivery/http"
	"medlink/internal/delivery/http/middleware"
	"medlink/internal/delivery/http/router/handler"
	"medlink/internal/infra/auth"
	logs "medlink/internal/infra/log"
	"medlink/internal/infra/persistence/postgres"
	"medlink/internal/infra/pubsub"
	"medlink/internal/infra/qrcode"
	"medlink/internal/infra/storage"
	"medlink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewResetTokenRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewAppointmentRepository,
			postgres.NewReminderRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			auth.NewLogSecretDelivery,
			pubsub.NewEventPublisher,
			storage.NewBlobStorage,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotifier,
			impl.NewAuthService,
			impl.NewConversationService,
			impl.NewNotificationService,
			impl.NewAppointmentService,
			impl.NewReminderService,
			impl.NewProfileService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewConversationHandler,
			handler.NewNotificationHandler,
			handler.NewAppointmentHandler,
			handler.NewReminderHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewHealthHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
