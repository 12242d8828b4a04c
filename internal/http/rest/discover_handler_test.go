package rest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribbonclub/ribbon_api/config"
)

func discoverAPI() *API {
	return &API{Config: &config.Config{
		DefaultMaxDistanceKm: 50,
		DiscoveryPageSize:    20,
	}}
}

func TestParseDiscoverParams(t *testing.T) {
	api := discoverAPI()

	t.Run("defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/discover", nil)
		params, err := api.parseDiscoverParams(r)
		require.NoError(t, err)
		assert.Equal(t, 50.0, params.MaxDistanceKm)
		assert.Equal(t, 20, params.Limit)
		assert.Equal(t, 0, params.Offset)
		assert.Empty(t, params.Interests)
	})

	t.Run("explicit values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/discover?max_distance_km=10&limit=5&offset=15&interests=Art,%20music,art", nil)
		params, err := api.parseDiscoverParams(r)
		require.NoError(t, err)
		assert.Equal(t, 10.0, params.MaxDistanceKm)
		assert.Equal(t, 5, params.Limit)
		assert.Equal(t, 15, params.Offset)
		assert.Equal(t, []string{"art", "music"}, params.Interests)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, query := range []string{
			"max_distance_km=0",
			"max_distance_km=abc",
			"limit=0",
			"limit=101",
			"offset=-1",
		} {
			r := httptest.NewRequest("GET", "/discover?"+query, nil)
			_, err := api.parseDiscoverParams(r)
			assert.Error(t, err, query)
		}
	})
}
