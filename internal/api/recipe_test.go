package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewfinder/backend/internal/filter"
	"github.com/pageza/brewfinder/backend/internal/model"
	"github.com/pageza/brewfinder/backend/internal/query"
	"github.com/pageza/brewfinder/backend/internal/service"
	"github.com/pageza/brewfinder/backend/internal/types"
)

func strPtr(s string) *string { return &s }

func TestListRecipes(t *testing.T) {
	tr := newTestRouter(t, false)

	grind := model.GrindMediumFine
	published := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	recipes := make([]model.Recipe, 10)
	for i := range recipes {
		recipes[i] = model.Recipe{
			ID:          int64(11 + i),
			Title:       "Brew",
			RoastLevel:  model.RoastLight,
			GrindSize:   &grind,
			BeanWeight:  18,
			PublishedAt: &published,
			Equipment:   []model.Equipment{{ID: 1, Name: "Hario V60", Type: model.EquipmentType{Name: "dripper"}}},
			Tags:        []model.Tag{{ID: 2, Name: "Iced", Slug: "iced"}},
		}
	}

	want := query.Build(filter.Filter{
		Page:       2,
		Limit:      10,
		RoastLevel: []model.RoastLevel{model.RoastLight, model.RoastMedium},
	})
	tr.recipes.On("Search", mock.Anything, want).
		Return(&service.SearchResult{Recipes: recipes, Total: 25, Page: 2, Limit: 10}, nil)

	w := tr.get("/api/recipes?roastLevel=LIGHT,MEDIUM&page=2&limit=10")
	require.Equal(t, http.StatusOK, w.Code)

	var body types.RecipeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, types.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10}, body.Pagination)
	require.Len(t, body.Recipes, 10)
	assert.Equal(t, "11", body.Recipes[0].ID)
	assert.Equal(t, []string{"Hario V60"}, body.Recipes[0].Equipment)
	assert.Equal(t, "iced", body.Recipes[0].Tags[0].Slug)
	tr.recipes.AssertExpectations(t)
}

func TestListRecipesEmpty(t *testing.T) {
	tr := newTestRouter(t, false)
	tr.recipes.On("Search", mock.Anything, mock.Anything).
		Return(&service.SearchResult{Page: 1, Limit: 20}, nil)

	w := tr.get("/api/recipes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"recipes":[],"pagination":{"currentPage":1,"totalPages":0,"totalItems":0,"itemsPerPage":20}}`,
		w.Body.String())
}

func TestListRecipesInvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "limit above maximum", query: "limit=101", field: "limit"},
		{name: "limit below minimum", query: "limit=0", field: "limit"},
		{name: "page below minimum", query: "page=0", field: "page"},
		{name: "unknown roast level", query: "roastLevel=BURNT", field: "roastLevel[0]"},
		{name: "unknown sort", query: "sort=secret", field: "sort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, false)

			w := tr.get("/api/recipes?" + tt.query)

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, types.CodeInvalidParameters, body.Code)
			assert.Equal(t, types.CodeInvalidParameters, body.Error)
			require.NotEmpty(t, body.Details)
			assert.Equal(t, tt.field, body.Details[0].Field)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, body.RequestID, w.Header().Get("X-Request-ID"))
			tr.recipes.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestListRecipesMalformedRange(t *testing.T) {
	q := "/api/recipes?beanWeight=" + url.QueryEscape(`{"min":15`)

	lenient := newTestRouter(t, false)
	lenient.recipes.On("Search", mock.Anything, query.Build(filter.Filter{Page: 1, Limit: 20})).
		Return(&service.SearchResult{Page: 1, Limit: 20}, nil)
	assert.Equal(t, http.StatusOK, lenient.get(q).Code)
	lenient.recipes.AssertExpectations(t)

	strict := newTestRouter(t, true)
	w := strict.get(q)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, filter.KeyBeanWeight, decodeError(t, w).Details[0].Field)
}

func TestListRecipesStoreFailure(t *testing.T) {
	tr := newTestRouter(t, false)
	tr.recipes.On("Search", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: relation \"recipes\" does not exist"))

	w := tr.get("/api/recipes")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, types.CodeInternal, body.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestGetRecipe(t *testing.T) {
	tr := newTestRouter(t, false)
	seconds := 30
	recipe := &model.Recipe{
		ID:         7,
		Title:      "Detailed",
		RoastLevel: model.RoastMedium,
		ViewCount:  41,
		Equipment: []model.Equipment{{
			ID:            3,
			Name:          "Comandante C40",
			Brand:         strPtr("Comandante"),
			AffiliateLink: strPtr("https://shop.example/c40"),
			Type:          model.EquipmentType{Name: "grinder"},
		}},
		Tags:  []model.Tag{{ID: 1, Name: "Iced", Slug: "iced"}},
		Steps: []model.RecipeStep{{StepOrder: 1, TimeSeconds: &seconds, Description: "Bloom"}},
		Barista: &model.Barista{
			ID:          9,
			Name:        "Sam Example",
			SocialLinks: []model.SocialLink{{Platform: "youtube", URL: "https://youtube.example/sam"}},
		},
	}
	tr.recipes.On("GetPublishedRecipe", mock.Anything, int64(7)).Return(recipe, nil)
	tr.recipes.On("IncrementViewCount", mock.Anything, int64(7)).Return(int64(42), nil)

	w := tr.get("/api/recipes/7")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Header().Get(ViewCountHeader))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body types.RecipeDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "7", body.ID)
	assert.Equal(t, int64(42), body.ViewCount)
	require.Len(t, body.Equipment, 1)
	assert.Equal(t, "grinder", body.Equipment[0].Type)
	assert.Equal(t, "Comandante", *body.Equipment[0].Brand)
	assert.Nil(t, body.Equipment[0].Description)
	require.NotNil(t, body.Barista)
	assert.Equal(t, "9", body.Barista.ID)
	assert.Equal(t, 30, *body.Steps[0].TimeSeconds)
}

func TestGetRecipeViewCountFailureStillServes(t *testing.T) {
	tr := newTestRouter(t, false)
	tr.recipes.On("GetPublishedRecipe", mock.Anything, int64(7)).
		Return(&model.Recipe{ID: 7, Title: "Detailed", ViewCount: 5}, nil)
	tr.recipes.On("IncrementViewCount", mock.Anything, int64(7)).
		Return(int64(0), errors.New("database is locked"))

	w := tr.get("/api/recipes/7")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get(ViewCountHeader))
}

func TestGetRecipeErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "missing", err: service.ErrRecipeNotFound, status: http.StatusNotFound, code: types.CodeNotFound},
		{name: "draft", err: service.ErrRecipeNotPublished, status: http.StatusForbidden, code: types.CodeNotPublished},
		{name: "store", err: errors.New("connection refused"), status: http.StatusInternalServerError, code: types.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, false)
			tr.recipes.On("GetPublishedRecipe", mock.Anything, int64(999999)).Return(nil, tt.err)

			w := tr.get("/api/recipes/999999")

			require.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.code, body.Error)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			assert.Empty(t, w.Header().Get(ViewCountHeader))
			tr.recipes.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
		})
	}
}

func TestGetRecipeInvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			tr := newTestRouter(t, false)

			w := tr.get("/api/recipes/" + id)

			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, types.CodeInvalidParameter, body.Code)
			assert.Equal(t, "id", body.Details[0].Field)
			tr.recipes.AssertNotCalled(t, "GetPublishedRecipe", mock.Anything, mock.Anything)
		})
	}
}
