package catalog_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/loan"
	"github.com/changhyeonkim/mediatheque-api/internal/model"
	sharedError "github.com/changhyeonkim/mediatheque-api/internal/shared/error"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment registers the media routes on a bare test router
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	catalogService := catalog.NewCatalogService(db, catalog.NewCatalogRepository(), loan.NewLoanRepository())
	catalogHandler := catalog.NewCatalogHandler(catalogService)

	router := testutil.SetupTestRouter()
	media := router.Group("/api/v1/media")
	media.POST("", catalogHandler.AddMedia)
	media.GET("", catalogHandler.ListMedia)
	media.GET("/available", catalogHandler.AvailableMedia)
	media.GET("/:type/:id", catalogHandler.GetMedia)
	media.DELETE("/:type/:id", catalogHandler.DeleteMedia)

	return router, db
}

func assertGolden(t *testing.T, name string, body []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, body)
}

func TestAddMedia_EachType(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		body     map[string]any
		wantType string
		check    func(t *testing.T, response catalog.MediaResponse)
	}{
		{
			body:     map[string]any{"type": "CD", "name": "Kind of Blue", "creator": "Miles Davis"},
			wantType: "CD",
			check: func(t *testing.T, response catalog.MediaResponse) {
				assert.Equal(t, "Miles Davis", response.Artist)
			},
		},
		{
			body:     map[string]any{"type": "dvd", "name": "Alien", "creator": "Ridley Scott"},
			wantType: "DVD",
			check: func(t *testing.T, response catalog.MediaResponse) {
				assert.Equal(t, "Ridley Scott", response.Director)
			},
		},
		{
			body:     map[string]any{"type": "BOOK", "name": "Dune", "creator": "Frank Herbert", "available": false},
			wantType: "BOOK",
			check: func(t *testing.T, response catalog.MediaResponse) {
				assert.Equal(t, "Frank Herbert", response.Author)
				assert.False(t, response.Available)
			},
		},
		{
			body:     map[string]any{"type": "BOARD_GAME", "name": "Catan"},
			wantType: "BOARD_GAME",
			check: func(t *testing.T, response catalog.MediaResponse) {
				assert.True(t, response.Available)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.wantType, func(t *testing.T) {
			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/media",
				Body:   tc.body,
			})

			// Then
			require.Equal(t, http.StatusCreated, recorder.Code)

			var response catalog.MediaResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.NotZero(t, response.ID)
			assert.Equal(t, tc.wantType, response.Type)
			tc.check(t, response)
		})
	}
}

func TestAddMedia_ValidationErrors(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	testCases := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"unknown type", map[string]any{"type": "VINYL", "name": "Blue Train"}, "type"},
		{"missing type", map[string]any{"name": "Blue Train"}, "type"},
		{"missing name", map[string]any{"type": "CD"}, "name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/media",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "ERROR-001", errorResponse.Code)
			assert.Equal(t, tc.field, errorResponse.Field)
		})
	}
}

func TestListMedia_GroupedByType(t *testing.T) {
	// Given
	router, db := setupTestEnvironment(t)
	testutil.SeedItem(t, db, model.MediaTypeCD, "Kind of Blue", "Miles Davis", true)
	testutil.SeedItem(t, db, model.MediaTypeDVD, "Alien", "Ridley Scott", false)
	testutil.SeedItem(t, db, model.MediaTypeBoardGame, "Catan", "", true)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/media",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assertGolden(t, "media_list", recorder.Body.Bytes())
}

func TestAvailableMedia_OnlyAvailableItemsOfType(t *testing.T) {
	// Given: two available CDs, one lent CD and an available DVD
	router, db := setupTestEnvironment(t)
	testutil.SeedItem(t, db, model.MediaTypeCD, "Kind of Blue", "Miles Davis", true)
	testutil.SeedItem(t, db, model.MediaTypeCD, "Blue Train", "John Coltrane", false)
	testutil.SeedItem(t, db, model.MediaTypeCD, "A Love Supreme", "John Coltrane", true)
	testutil.SeedItem(t, db, model.MediaTypeDVD, "Alien", "Ridley Scott", true)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/media/available?type=CD",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	assertGolden(t, "available_cds", recorder.Body.Bytes())
}

func TestAvailableMedia_TypeRequired(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	for _, url := range []string{"/api/v1/media/available", "/api/v1/media/available?type=VINYL"} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    url,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code, url)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "type", errorResponse.Field, url)
	}
}

func TestGetMedia(t *testing.T) {
	router, db := setupTestEnvironment(t)
	book := testutil.SeedItem(t, db, model.MediaTypeBook, "Dune", "Frank Herbert", true)

	t.Run("found", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/media/book/1",
		})

		require.Equal(t, http.StatusOK, recorder.Code)

		var response catalog.MediaResponse
		testutil.ParseResponse(t, recorder, &response)
		assert.Equal(t, book.GetID(), response.ID)
		assert.Equal(t, "Frank Herbert", response.Author)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/media/CD/1",
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "MEDIA-001", errorResponse.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/v1/media/VINYL/1",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, "MEDIA-002", errorResponse.Code)
	})
}

func TestDeleteMedia(t *testing.T) {
	router, db := setupTestEnvironment(t)
	testutil.SeedItem(t, db, model.MediaTypeDVD, "Alien", "Ridley Scott", true)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/media/DVD/1",
	})
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/media/DVD/1",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteMedia_WithOpenLoanIsAllowed(t *testing.T) {
	// Given: a lent CD
	router, db := setupTestEnvironment(t)
	m := testutil.SeedMember(t, db, "Ada", "Lovelace", "ada@example.com")
	cd := testutil.SeedItem(t, db, model.MediaTypeCD, "Kind of Blue", "Miles Davis", true)
	seeded := testutil.SeedLoan(t, db, m.ID, cd, time.Now())

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/media/CD/1",
	})

	// Then: the item is gone, the loan record stays open
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	var stored model.Loan
	require.NoError(t, db.First(&stored, seeded.ID).Error)
	assert.True(t, stored.IsOpen())
}
