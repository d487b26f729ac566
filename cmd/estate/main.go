package main

import (
	"context"
	"log/slog"
	"os"

	"estate/config"
	"estate/internal/delivery"
	"estate/internal/delivery/http"
	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/router/handler"
	"estate/internal/domain/service"
	"estate/internal/infra/auth"
	logs "estate/internal/infra/log"
	"estate/internal/infra/persistence/postgres"
	"estate/internal/infra/qrcode"
	"estate/internal/infra/storage"
	"estate/internal/usecase/impl"
	"estate/pkg/assets"

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
		newAssetResolver,
	)
}

// newAssetResolver builds the resolver that turns stored image paths into
// public URLs for API responses.
func newAssetResolver(cfg *config.Config) *assets.Resolver {
	origin := ""
	if cfg.Assets != nil {
		origin = cfg.Assets.PublicBaseURL
	}

	return assets.NewResolver(origin)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewPropertyRepository,
			postgres.NewInquiryRepository,
			postgres.NewContactRepository,
			postgres.NewFeedbackRepository,
			postgres.NewBlogRepository,
			postgres.NewGalleryRepository,
			postgres.NewTeamRepository,
			postgres.NewSocialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPropertyService,
			impl.NewInquiryService,
			impl.NewContactService,
			impl.NewFeedbackService,
			impl.NewBlogService,
			impl.NewGalleryService,
			impl.NewTeamService,
			impl.NewSocialService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPropertyHandler,
			handler.NewInquiryHandler,
			handler.NewContactHandler,
			handler.NewFeedbackHandler,
			handler.NewBlogHandler,
			handler.NewGalleryHandler,
			handler.NewTeamHandler,
			handler.NewSocialHandler,
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
