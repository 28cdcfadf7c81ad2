package impl

import (
	"io"
	"log/slog"
	"time"

	"placeswipe/config"
	"placeswipe/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			KeyPrefix:           "places",
			AllowedContentTypes: []string{"image/jpeg", "image/png"},
		},
		Uploads:  &config.UploadsConfig{PendingRetention: time.Hour},
		Explorer: &config.ExplorerConfig{DefaultRadiusKm: 5, MaxRadiusKm: 100},
	}
}

func explorerSession() *entity.AuthSession {
	return &entity.AuthSession{
		IsAuthenticated:    true,
		UserID:             "user_explorer",
		Email:              "ana@example.com",
		OnboardingComplete: true,
		Role:               entity.RoleExplorer,
	}
}

func businessSession() *entity.AuthSession {
	return &entity.AuthSession{
		IsAuthenticated:    true,
		UserID:             "user_business",
		Email:              "owner@example.com",
		OnboardingComplete: true,
		Role:               entity.RoleBusiness,
	}
}

func ptr[T any](v T) *T {
	return &v
}
