package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all, err := All()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	assert.Equal(t, "0001_init", all[0].Version)
	assert.Contains(t, all[0].SQL, "CREATE EXTENSION IF NOT EXISTS postgis")
	for _, table := range []string{
		"users", "places", "place_images", "tags", "place_tags",
		"swipes", "favorites", "user_location_preferences",
	} {
		assert.Contains(t, all[0].SQL, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Version, all[i].Version)
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: "0001_init"}, {Version: "0002_more"}, {Version: "0003_last"}}

	assert.Equal(t, all, Pending(all, nil))
	assert.Equal(t, []Migration{{Version: "0002_more"}}, Pending(all, []string{"0001_init", "0003_last"}))
	assert.Empty(t, Pending(all, []string{"0001_init", "0002_more", "0003_last"}))
}
