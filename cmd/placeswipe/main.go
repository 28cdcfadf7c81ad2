package main

import (
	"context"
	"log/slog"
	"os"

	"placeswipe/config"
	"placeswipe/internal/delivery"
	"placeswipe/internal/delivery/api"
	"placeswipe/internal/delivery/api/middleware"
	"placeswipe/internal/delivery/api/router/handler"
	"placeswipe/internal/delivery/api/rpc"
	"placeswipe/internal/delivery/job"
	"placeswipe/internal/infra/auth"
	"placeswipe/internal/infra/geocoding"
	logs "placeswipe/internal/infra/log"
	"placeswipe/internal/infra/persistence/postgres"
	"placeswipe/internal/infra/qrcode"
	"placeswipe/internal/infra/storage"
	"placeswipe/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLocationPreferenceRepository,
			postgres.NewPlaceRepository,
			postgres.NewImageRepository,
			postgres.NewSwipeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionVerifier,
			storage.NewBlobStorage,
			geocoding.NewReverseGeocoder,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewExplorerService,
			impl.NewBusinessService,
			impl.NewImageService,
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
			rpc.NewHandler,
			handler.NewPlaceHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				job.NewCleanupJob,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start delivery", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
