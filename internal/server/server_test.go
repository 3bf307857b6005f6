package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
	"github.com/goto/tagger/internal/server"
	"github.com/goto/tagger/lib/mocks"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := log.NewNoop()

	assetRepo := &mocks.AssetRepository{}
	assetRepo.On("GetAll", mock.Anything).Return(nil, nil)
	assetRepo.On("Replace", mock.Anything, mock.Anything).Return(nil)

	refRepo := &mocks.ReferenceRepository{}
	refRepo.On("GetAll", mock.Anything, mock.Anything).Return(nil, nil)
	refRepo.On("Replace", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	router, err := server.NewRouter(
		logger,
		asset.NewService(logger, assetRepo),
		reference.NewService(logger, refRepo),
	)
	require.NoError(t, err)
	return router
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("should answer ping", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "pong\n", rr.Body.String())
	})

	t.Run("should serve the generator page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Asset Tag Generator")
		// seeded reference lists fill the dropdowns
		assert.Contains(t, rr.Body.String(), "EGY - Egypt")
		assert.Contains(t, rr.Body.String(), "ZE - Zebra Electronics")
	})

	t.Run("should serve the list management page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/lists", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Manage Countries and Manufacturers")
	})

	t.Run("should generate tags from the web form", func(t *testing.T) {
		form := "country_code=EGY&manufacturer_code=ZE&name=Zebra+Printer&count=2"
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form))
		req.Header.Set("content-type", "application/x-www-form-urlencoded")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "EGY-ZE-0001")
		assert.Contains(t, rr.Body.String(), "EGY-ZE-0002")
	})

	t.Run("should return JSON 404 for unknown API routes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1beta1/nope", nil))

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "no matching route was found")
	})

	t.Run("should route the JSON API", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1beta1/manufacturers", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Zebra Electronics")
	})
}
