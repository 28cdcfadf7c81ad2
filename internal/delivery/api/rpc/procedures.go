package rpc

import (
	"context"
	"log/slog"

	"placeswipe/internal/delivery/api/validator"
	"placeswipe/internal/domain/entity"
	"placeswipe/internal/usecase"

	"go.uber.org/fx"
)

// HandlerParams holds dependencies for the RPC endpoint, injected by Fx.
type HandlerParams struct {
	fx.In

	Logger          *slog.Logger
	UserUsecase     usecase.UserUsecase
	ExplorerUsecase usecase.ExplorerUsecase
	BusinessUsecase usecase.BusinessUsecase
	ImageUsecase    usecase.ImageUsecase
}

// NewHandler builds the dispatcher serving every procedure of the API.
func NewHandler(params HandlerParams) *Dispatcher {
	d := NewDispatcher(validator.New().Validate, params.Logger)
	d.Use(Logging(params.Logger))

	registerUser(d, params.UserUsecase)
	registerExplorer(d, params.ExplorerUsecase)
	registerBusiness(d, params.BusinessUsecase, params.ImageUsecase)

	return d
}

func registerUser(d *Dispatcher, users usecase.UserUsecase) {
	d.Register("user.completeOnboarding", Handle(users.CompleteOnboarding))
	d.Register("user.me", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) (*entity.User, error) {
		return users.Me(ctx, s)
	}))
}

func registerExplorer(d *Dispatcher, explorer usecase.ExplorerUsecase) {
	d.Register("explorer.swipe", Handle(explorer.Swipe))
	d.Register("explorer.getSavedPlaces", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) ([]*entity.SavedPlace, error) {
		return explorer.GetSavedPlaces(ctx, s)
	}))
	d.Register("explorer.unsavePlace", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.PlaceIDInput) (*usecase.UnsaveOutput, error) {
		removed, err := explorer.UnsavePlace(ctx, s, in.PlaceID)
		if err != nil {
			return nil, err
		}

		return &usecase.UnsaveOutput{Removed: removed}, nil
	}))
	d.Register("explorer.getRecommended", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) ([]*entity.RecommendedPlace, error) {
		return explorer.GetRecommended(ctx, s)
	}))
	d.Register("explorer.getLocationPreference", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) (*entity.LocationPreference, error) {
		return explorer.GetLocationPreference(ctx, s)
	}))
	d.Register("explorer.updateLocationPreference", Handle(explorer.UpdateLocationPreference))
	d.Register("explorer.reverseGeocode", Handle(explorer.ReverseGeocode))
}

func registerBusiness(d *Dispatcher, business usecase.BusinessUsecase, images usecase.ImageUsecase) {
	d.Register("business.createPlace", Handle(business.CreatePlace))
	d.Register("business.listPlaces", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) ([]*entity.Place, error) {
		return business.ListMyPlaces(ctx, s)
	}))
	d.Register("business.getPlace", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.PlaceIDInput) (*entity.Place, error) {
		return business.GetPlace(ctx, s, in.PlaceID)
	}))
	d.Register("business.updatePlace", Handle(business.UpdatePlace))
	d.Register("business.deletePlace", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.PlaceIDInput) (*entity.Place, error) {
		return business.DeletePlace(ctx, s, in.PlaceID)
	}))

	d.Register("business.requestImageUpload", Handle(images.RequestUpload))
	d.Register("business.confirmImageUpload", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.ImageIDInput) (*entity.PlaceImage, error) {
		return images.ConfirmUpload(ctx, s, in.ImageID)
	}))
	d.Register("business.reorderImages", Handle(images.ReorderImages))
	d.Register("business.deleteImage", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.ImageIDInput) (*entity.PlaceImage, error) {
		return images.DeleteImage(ctx, s, in.ImageID)
	}))
	d.Register("business.listImages", Handle(func(ctx context.Context, s *entity.AuthSession, in *usecase.PlaceIDInput) ([]*entity.PlaceImage, error) {
		return images.ListImages(ctx, s, in.PlaceID)
	}))

	d.Register("tags.list", Handle(func(ctx context.Context, s *entity.AuthSession, _ *Empty) ([]*entity.Tag, error) {
		return business.ListTags(ctx, s)
	}))
}
