package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/brewfinder/backend/internal/mocks"
	"github.com/pageza/brewfinder/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testRouter struct {
	engine    *gin.Engine
	recipes   *mocks.MockRecipeService
	equipment *mocks.MockEquipmentService
	tags      *mocks.MockTagService
	pingErr   error
}

func newTestRouter(t *testing.T, strict bool) *testRouter {
	t.Helper()
	tr := &testRouter{
		engine:    gin.New(),
		recipes:   new(mocks.MockRecipeService),
		equipment: new(mocks.MockEquipmentService),
		tags:      new(mocks.MockTagService),
	}
	tr.engine.Use(requestid.New())
	RegisterRoutes(tr.engine, Dependencies{
		Recipes:      tr.recipes,
		Equipment:    tr.equipment,
		Tags:         tr.tags,
		Ping:         func(ctx context.Context) error { return tr.pingErr },
		StrictRanges: strict,
		Logger:       zaptest.NewLogger(t),
	})
	return tr
}

func (tr *testRouter) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) types.ErrorResponse {
	t.Helper()
	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
