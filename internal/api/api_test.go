package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mpaterson/souschef/internal/model"
	"github.com/mpaterson/souschef/internal/pantry"
	"github.com/mpaterson/souschef/internal/query"
	"github.com/mpaterson/souschef/internal/service"
)

// stubRecipeAPI returns canned payloads or a canned error.
type stubRecipeAPI struct {
	searchResp  query.SearchResponse
	byIngr      []query.ByIngredientsResult
	information query.InformationResponse
	groups      []query.InstructionGroup

	searchErr error
	infoErr   error

	lastSearch query.SearchRequest
}

func (s *stubRecipeAPI) ComplexSearch(_ context.Context, req query.SearchRequest) (query.SearchResponse, error) {
	s.lastSearch = req
	return s.searchResp, s.searchErr
}

func (s *stubRecipeAPI) FindByIngredients(_ context.Context, _ []string) ([]query.ByIngredientsResult, error) {
	return s.byIngr, s.searchErr
}

func (s *stubRecipeAPI) GetRecipeInformation(_ context.Context, _ int) (query.InformationResponse, error) {
	return s.information, s.infoErr
}

func (s *stubRecipeAPI) GetAnalyzedInstructions(_ context.Context, _ int) ([]query.InstructionGroup, error) {
	return s.groups, nil
}

type stubProductAPI struct {
	product model.ProductInfo
	err     error
}

func (s *stubProductAPI) Lookup(_ context.Context, _ string) (model.ProductInfo, error) {
	return s.product, s.err
}

// stubAnalyzer stands in for the generative collaborator.
type stubAnalyzer struct {
	enabled  bool
	analysis *service.RecipeAnalysis
	steps    []string
	err      error
}

func (s *stubAnalyzer) AnalyzeRecipeRequest(_ context.Context, _ string, _, _ []string) (*service.RecipeAnalysis, error) {
	return s.analysis, s.err
}

func (s *stubAnalyzer) EnhanceInstructions(_ context.Context, _ model.RecipeDetail, _ string) ([]string, error) {
	return s.steps, s.err
}

func (s *stubAnalyzer) Enabled() bool { return s.enabled }

type testEnv struct {
	router  *gin.Engine
	store   *pantry.Store
	recipes *stubRecipeAPI
	product *stubProductAPI
	ai      *stubAnalyzer
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	env := &testEnv{
		store:   pantry.NewStore(),
		recipes: &stubRecipeAPI{},
		product: &stubProductAPI{},
		ai:      &stubAnalyzer{},
	}

	logger := zap.NewNop()
	assistant := service.NewAssistantService(env.store, env.recipes, env.product, logger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewPantryHandler(assistant, logger).RegisterRoutes(v1)
	NewRecipeHandler(assistant, env.ai, logger).RegisterRoutes(v1)

	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}
