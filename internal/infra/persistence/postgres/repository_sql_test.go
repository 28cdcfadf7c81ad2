package postgres

import (
	"context"
	"testing"
	"time"

	"placeswipe/internal/domain/entity"
	"placeswipe/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipeRepository_UpsertConflictsOnUserAndPlace(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSwipeRepository(db)

	swipe, err := repo.Upsert(context.Background(), &repository.UpsertSwipeParams{
		UserID:    1,
		PlaceID:   2,
		Direction: entity.SwipeRight,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SwipeRight, swipe.Direction)

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "swipes"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","place_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"direction"="excluded"."direction"`)
	assert.Contains(t, sql, `RETURNING *`)
}

func TestSwipeRepository_DeleteScopesToBothKeys(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSwipeRepository(db)

	removed, err := repo.Delete(context.Background(), 5, 9)
	require.NoError(t, err)
	assert.False(t, removed)

	sql := recorder.last(t)
	assert.Contains(t, sql, `DELETE FROM "swipes"`)
	assert.Contains(t, sql, `"swipes"."user_id" = 5 AND "swipes"."place_id" = 9`)
}

func TestSwipeRepository_SavedPlacesQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSwipeRepository(db)

	_, _ = repo.FindSavedByUserID(context.Background(), 42)

	sql := recorder.last(t)
	assert.Contains(t, sql, "INNER JOIN places p ON p.id = s.place_id")
	assert.Contains(t, sql, "LEFT JOIN place_images i ON i.place_id = p.id AND i.status = 'confirmed'")
	assert.Contains(t, sql, "WHERE s.user_id = 42 AND s.direction = 'right'")
	assert.Contains(t, sql, `ORDER BY s.created_at DESC, s.id DESC, i."order" ASC`)
}

func TestSwipeRepository_RecommendedQueryIsAntiJoin(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSwipeRepository(db)

	_, _ = repo.FindRecommendedForUser(context.Background(), 7)

	sql := recorder.last(t)
	assert.Contains(t, sql, "LEFT JOIN swipes s ON s.place_id = p.id AND s.user_id = 7 AND s.direction = 'right'")
	assert.Contains(t, sql, "WHERE s.id IS NULL")
	assert.Contains(t, sql, `ORDER BY p.id ASC, i."order" ASC`)
	assert.NotContains(t, sql, "distance_km")
}

func TestSwipeRepository_RecommendedWithDistanceQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewSwipeRepository(db)

	_, _ = repo.FindRecommendedWithDistance(context.Background(), 7, 38.7, -9.1, 5)

	sql := recorder.last(t)
	assert.Contains(t, sql, "ST_MakePoint(-9.1, 38.7)")
	assert.Contains(t, sql, "s.user_id = 7")
	assert.Contains(t, sql, "WHERE s.id IS NULL")
	assert.Contains(t, sql, "ST_DWithin(p.coordinates::geography, ST_SetSRID(ST_MakePoint(-9.1, 38.7), 4326)::geography, 5000)")
	assert.Contains(t, sql, "/ 1000.0 AS distance_km")
	assert.Contains(t, sql, `ORDER BY distance_km ASC, p.id ASC, i."order" ASC`)
}

func TestImageRepository_FindByPlaceIDOnlyConfirmed(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	images, err := repo.FindByPlaceID(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, images)

	sql := recorder.last(t)
	assert.Contains(t, sql, `FROM "place_images"`)
	assert.Contains(t, sql, "status = 'confirmed'")
	assert.Contains(t, sql, `ORDER BY place_id ASC, "order" ASC, id ASC`)
}

func TestImageRepository_GetNextOrderQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	_, _ = repo.GetNextOrder(context.Background(), 3)

	sql := recorder.last(t)
	assert.Contains(t, sql, `COALESCE(MAX("order") + 1, 0)`)
	assert.Contains(t, sql, "place_id = 3 AND status = 'confirmed'")
}

func TestImageRepository_FindStalePendingQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	_, err := repo.FindStalePending(context.Background(), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, "status = 'pending' AND created_at < '2026-01-02 03:04:05")
}

func TestImageRepository_DeleteManyWithNoIDs(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	deleted, err := repo.DeleteMany(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Zero(t, recorder.count())
}

func TestImageRepository_DeleteManyRechecksPendingAndAge(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	deleted, err := repo.DeleteMany(context.Background(), []int64{7, 8}, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, deleted)

	sql := recorder.last(t)
	assert.Contains(t, sql, `DELETE FROM "place_images"`)
	assert.Contains(t, sql, "id IN (7,8) AND status = 'pending' AND created_at < '2026-01-02 03:04:05")
	assert.Contains(t, sql, "RETURNING *")
}

func TestImageRepository_ConfirmOnlyMovesPending(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	image, err := repo.Confirm(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Nil(t, image)

	update := recorder.find(t, `UPDATE "place_images" SET`)
	assert.Contains(t, update, `"status"='confirmed'`)
	assert.Contains(t, update, `"order"=3`)
	assert.Contains(t, update, `WHERE "place_images"."id" = 7 AND "place_images"."status" = 'pending'`)

	reread := recorder.last(t)
	assert.Contains(t, reread, `SELECT * FROM "place_images" WHERE "place_images"."id" = 7`)
}

func TestImageRepository_DeleteOfMissingImage(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	image, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, image)
	assert.Equal(t, -1, recorder.indexOf(`DELETE FROM "place_images"`))
}

func TestImageRepository_ReorderScopesEveryRowToPlace(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	images, err := repo.Reorder(context.Background(), 3, []repository.ImageOrder{
		{ID: 7, Order: 2},
		{ID: 8, Order: 0},
	})
	require.NoError(t, err)
	assert.Empty(t, images)

	first := recorder.indexOf(`UPDATE "place_images" SET "order"=2 WHERE id = 7 AND place_id = 3`)
	second := recorder.indexOf(`UPDATE "place_images" SET "order"=0 WHERE id = 8 AND place_id = 3`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	assert.Contains(t, recorder.last(t), "place_id IN (3) AND status = 'confirmed'")
}

func TestImageRepository_CreatePendingUsesSentinelOrder(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewImageRepository(db)

	image, err := repo.CreatePending(context.Background(), 4, "https://cdn/x.jpg", "places/4/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, entity.ImageStatusPending, image.Status)
	assert.Equal(t, entity.PendingImageOrder, image.Order)

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "place_images"`)
	assert.Contains(t, sql, "9999")
	assert.Contains(t, sql, "'pending'")
}

func TestPlaceRepository_FindByIDExtractsCoordinates(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewPlaceRepository(db)

	_, _ = repo.FindByID(context.Background(), 11)

	sql := recorder.last(t)
	assert.Contains(t, sql, "ST_X(p.coordinates) AS coord_x, ST_Y(p.coordinates) AS coord_y")
	assert.Contains(t, sql, "p.id = 11")
}

func TestPlaceRepository_CreateWritesTagAndOrderedImages(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewPlaceRepository(db)
	tag := " bakery "

	_, err := repo.Create(context.Background(), &repository.CreatePlaceParams{
		BusinessID:  10,
		Name:        "Bakery",
		Coordinates: &entity.Coordinates{X: -9.1, Y: 38.7},
		Tag:         &tag,
		ImageURLs:   []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
	})
	require.NoError(t, err)

	assert.Contains(t, recorder.find(t, `INSERT INTO "places"`), "'Bakery'")
	assert.Contains(t, recorder.find(t, "UPDATE places SET coordinates"), "ST_GeomFromEWKB(")

	upsert := recorder.find(t, `INSERT INTO "tags"`)
	assert.Contains(t, upsert, `("name") VALUES ('bakery')`)
	assert.Contains(t, upsert, `ON CONFLICT ("name") DO UPDATE SET "name"="excluded"."name"`)

	assert.Contains(t, recorder.find(t, `INSERT INTO "place_tags"`), "ON CONFLICT DO NOTHING")

	images := recorder.find(t, `INSERT INTO "place_images"`)
	assert.Contains(t, images, `'https://cdn/a.jpg',NULL,0,'confirmed'`)
	assert.Contains(t, images, `'https://cdn/b.jpg',NULL,1,'confirmed'`)

	assert.Less(t, recorder.indexOf(`INSERT INTO "tags"`), recorder.indexOf(`INSERT INTO "place_tags"`))
}

func TestPlaceRepository_Update(t *testing.T) {
	ctx := context.Background()
	name := "New name"
	params := &repository.UpdatePlaceParams{
		Name:          &name,
		ReplaceImages: true,
		ImageURLs:     []string{"https://cdn/c.jpg"},
	}

	t.Run("missing place returns nil and keeps images", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		repo := NewPlaceRepository(db)

		place, err := repo.Update(ctx, 5, params)
		require.NoError(t, err)
		assert.Nil(t, place)

		assert.Contains(t, recorder.find(t, `UPDATE "places" SET`), `"name"='New name'`)
		assert.Equal(t, -1, recorder.indexOf(`DELETE FROM "place_images"`))
		assert.Equal(t, -1, recorder.indexOf(`INSERT INTO "place_images"`))
	})

	t.Run("gallery replacement clears confirmed images before inserting", func(t *testing.T) {
		db, recorder := newDryRunDB(t)
		affectRowsOnUpdate(t, db, 1)
		repo := NewPlaceRepository(db)

		_, err := repo.Update(ctx, 5, params)
		require.NoError(t, err)

		cleared := recorder.indexOf(`DELETE FROM "place_images" WHERE place_id = 5 AND status = 'confirmed'`)
		inserted := recorder.indexOf(`INSERT INTO "place_images"`)
		require.NotEqual(t, -1, cleared)
		require.NotEqual(t, -1, inserted)
		assert.Less(t, cleared, inserted)
		assert.Contains(t, recorder.all()[inserted], `'https://cdn/c.jpg',NULL,0,'confirmed'`)
	})
}

func TestPlaceRepository_DeleteOfMissingPlace(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewPlaceRepository(db)

	place, err := repo.Delete(context.Background(), 11)
	require.NoError(t, err)
	assert.Nil(t, place)

	assert.Contains(t, recorder.find(t, "FROM places AS p"), "p.id = 11")
	assert.Equal(t, -1, recorder.indexOf(`DELETE FROM "places"`))
}

func TestUserRepository_LookupsUseTypedConditions(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByExternalAuthID(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Contains(t, recorder.last(t), `SELECT * FROM "users" WHERE "users"."external_auth_id" = 'user_1' LIMIT 1`)

	_, err = repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Contains(t, recorder.last(t), `WHERE "users"."id" = 4 LIMIT 1`)
}

func TestUserRepository_Create(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewUserRepository(db)

	err := repo.Create(context.Background(), &entity.User{
		ExternalAuthID: "user_1",
		Email:          "a@example.com",
		FullName:       "Ana",
		Role:           entity.RoleExplorer,
	})
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, `INSERT INTO "users"`)
	assert.Contains(t, sql, `'user_1','a@example.com','Ana','explorer'`)
}

func TestBuildPlaceUpdates(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	name := "Cafe"

	t.Run("absent coordinates stay untouched", func(t *testing.T) {
		updates, err := buildPlaceUpdates(&repository.UpdatePlaceParams{Name: &name}, now)
		require.NoError(t, err)
		assert.Equal(t, "Cafe", updates["name"])
		assert.Equal(t, now, updates["updated_at"])
		assert.NotContains(t, updates, "coordinates")
		assert.NotContains(t, updates, "description")
	})

	t.Run("explicit null clears coordinates", func(t *testing.T) {
		updates, err := buildPlaceUpdates(&repository.UpdatePlaceParams{CoordinatesSet: true}, now)
		require.NoError(t, err)
		assert.Equal(t, nullGeometry, updates["coordinates"])
	})

	t.Run("value re-encodes coordinates", func(t *testing.T) {
		updates, err := buildPlaceUpdates(&repository.UpdatePlaceParams{
			CoordinatesSet: true,
			Coordinates:    &entity.Coordinates{X: 10, Y: 20},
		}, now)
		require.NoError(t, err)

		expr, err := encodePoint(entity.Coordinates{X: 10, Y: 20})
		require.NoError(t, err)
		assert.Equal(t, expr, updates["coordinates"])
	})
}
