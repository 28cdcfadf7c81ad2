package job

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"placeswipe/config"
	"placeswipe/internal/delivery"
	mockUsecase "placeswipe/internal/mocks/usecase"
	"placeswipe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newCleanupJobForTest(t *testing.T, uploads *config.UploadsConfig) (delivery.Delivery, *mockUsecase.MockImageUsecase, *fxtest.Lifecycle) {
	t.Helper()

	images := mockUsecase.NewMockImageUsecase(t)
	lc := fxtest.NewLifecycle(t)

	job := NewCleanupJob(CleanupParams{
		Lc:           lc,
		Config:       &config.Config{Uploads: uploads},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		ImageUsecase: images,
	})

	return job, images, lc
}

func TestCleanupJob_Disabled(t *testing.T) {
	job, _, _ := newCleanupJobForTest(t, &config.UploadsConfig{CleanupInterval: time.Millisecond})

	require.NoError(t, job.Serve(context.Background()))
}

func TestCleanupJob_SweepsUntilStopped(t *testing.T) {
	job, images, lc := newCleanupJobForTest(t, &config.UploadsConfig{
		CleanupInterval: 5 * time.Millisecond,
		CleanupEnabled:  true,
	})

	var calls atomic.Int32
	images.EXPECT().
		CleanupStaleUploads(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(context.Context, time.Time) (*usecase.CleanupOutput, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("database is restarting")
			}

			return &usecase.CleanupOutput{Found: 1, Deleted: 1, StorageFailures: 1}, nil
		})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- job.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("cleanup job did not stop")
	}
}

func TestCleanupJob_StopsWithContext(t *testing.T) {
	job, images, _ := newCleanupJobForTest(t, &config.UploadsConfig{
		CleanupInterval: time.Hour,
		CleanupEnabled:  true,
	})

	swept := make(chan struct{})
	images.EXPECT().
		CleanupStaleUploads(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(context.Context, time.Time) (*usecase.CleanupOutput, error) {
			close(swept)

			return &usecase.CleanupOutput{}, nil
		}).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- job.Serve(ctx) }()

	<-swept
	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("cleanup job ignored context cancellation")
	}
}

func TestCleanupJob_ServeAfterStopDoesNotSweep(t *testing.T) {
	job, images, lc := newCleanupJobForTest(t, &config.UploadsConfig{
		CleanupInterval: time.Millisecond,
		CleanupEnabled:  true,
	})

	lc.RequireStart()
	lc.RequireStop()

	require.NoError(t, job.Serve(context.Background()))
	images.AssertNotCalled(t, "CleanupStaleUploads", mock.Anything, mock.Anything)
}
