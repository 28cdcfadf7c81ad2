package impl

import (
	"context"
	"log/slog"
	"strings"

	"placeswipe/config"
	deliverycontext "placeswipe/internal/delivery/context"
	"placeswipe/internal/domain/entity"
	domainerrors "placeswipe/internal/domain/errors"
	"placeswipe/internal/domain/repository"
	"placeswipe/internal/errors"
	"placeswipe/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	accessGuard

	txManager       repository.TransactionManager
	defaultRadiusKm float64
	logger          *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		accessGuard:     accessGuard{userRepo: params.UserRepo},
		txManager:       params.TxManager,
		defaultRadiusKm: explorerDefaults(params.Config).DefaultRadiusKm,
		logger:          params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteOnboarding creates the user and, for explorers, their default
// location preference in one transaction.
func (srv *userService) CompleteOnboarding(ctx context.Context, session *entity.AuthSession, input *usecase.CompleteOnboardingInput) (*entity.User, error) {
	if err := authenticate(session, ""); err != nil {
		return nil, err
	}

	existing, err := srv.userRepo.FindByExternalAuthID(ctx, session.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, databaseError(err, "failed to find user")
	}

	if !input.Role.IsValid() {
		return nil, validationError("role must be explorer or business")
	}
	if strings.TrimSpace(session.Email) == "" {
		return nil, validationError("session carries no email")
	}

	user := &entity.User{
		ExternalAuthID: session.UserID,
		Email:          session.Email,
		FullName:       strings.TrimSpace(input.FullName),
		Role:           input.Role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if user.Role != entity.RoleExplorer {
			return nil
		}

		_, err := repoFactory.NewLocationPreferenceRepository().Upsert(ctx, &entity.LocationPreference{
			UserID:         user.ID,
			SearchRadiusKm: srv.defaultRadiusKm,
		})

		return errors.Wrap(err, "failed to create location preference")
	})

	// A concurrent onboarding of the same subject won the race.
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		return srv.onboardedUser(ctx, session)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to complete onboarding", slog.String("role", input.Role.String()), slog.Any("error", err))

		return nil, databaseError(err, "failed to complete onboarding")
	}

	srv.log(ctx).Info("Onboarding completed", slog.Int64("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

func (srv *userService) onboardedUser(ctx context.Context, session *entity.AuthSession) (*entity.User, error) {
	user, err := srv.userRepo.FindByExternalAuthID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// The conflict was on the email, which belongs to a different subject.
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is already registered")
	}
	if err != nil {
		return nil, databaseError(err, "failed to find user")
	}

	return user, nil
}

// Me returns the internal user behind the session.
func (srv *userService) Me(ctx context.Context, session *entity.AuthSession) (*entity.User, error) {
	return srv.resolve(ctx, session, "")
}

// explorerDefaults returns the explorer config or its defaults.
func explorerDefaults(cfg *config.Config) config.ExplorerConfig {
	if cfg == nil || cfg.Explorer == nil || cfg.Explorer.MaxRadiusKm <= 0 {
		return config.ExplorerConfig{DefaultRadiusKm: 5, MaxRadiusKm: 100}
	}

	return *cfg.Explorer
}
