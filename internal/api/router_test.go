package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/letybo/ordering/internal/api/v1"
	"github.com/letybo/ordering/internal/cache"
	"github.com/letybo/ordering/internal/config"
	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/loyalty"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/logger"
	"github.com/letybo/ordering/internal/metrics"
	"github.com/letybo/ordering/internal/repository/memory"
	"github.com/letybo/ordering/internal/service"
	"github.com/letybo/ordering/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()
	c := catalog.Reference()
	tracker, err := loyalty.NewTracker(loyalty.DefaultLadder())
	s.Require().NoError(err)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	params := service.NewServiceParams(log, cfg, c, tracker, cache.NewInMemoryCache(cfg), m, nil, memory.NewOrderStore(), nil)
	selections := service.NewSelectionService(params)

	s.router = NewRouter(Handlers{
		Health:    v1.NewHealthHandler(c, log),
		Catalog:   v1.NewCatalogHandler(service.NewCatalogService(params), log),
		Selection: v1.NewSelectionHandler(selections, log),
		Order:     v1.NewOrderHandler(service.NewOrderService(params, selections), log),
		Loyalty:   v1.NewLoyaltyHandler(service.NewLoyaltyService(params), log),
		Support:   v1.NewSupportHandler(service.NewSupportService(params), log),
	}, cfg, log, m)
}

func (s *RouterSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			s.Require().NoError(json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(types.HeaderUserID, userID)
		req.Header.Set(types.HeaderUserEmail, userID+"@example.com")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *RouterSuite) errorOf(w *httptest.ResponseRecorder) ierr.ErrorResponse {
	var resp ierr.ErrorResponse
	s.decode(w, &resp)
	s.False(resp.Success)
	return resp
}

func (s *RouterSuite) TestHealthAndRequestID() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get(types.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(types.HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal("req-123", rec.Header().Get(types.HeaderRequestID))
}

func (s *RouterSuite) TestGetCatalog() {
	w := s.do(http.MethodGet, "/v1/catalog", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		DefaultQuantity      int   `json:"default_quantity"`
		SelectableQuantities []int `json:"selectable_quantities"`
	}
	s.decode(w, &resp)
	s.Equal(6, resp.DefaultQuantity)
	s.Len(resp.SelectableQuantities, 17)
}

func (s *RouterSuite) TestQuoteErrors() {
	w := s.do(http.MethodPost, "/v1/quotes", "", `{"mode":`)
	s.Equal(http.StatusBadRequest, w.Code)
	resp := s.errorOf(w)
	s.Equal(ierr.ErrCodeValidation, resp.Error.Code)
	s.Equal("Invalid request format", resp.Error.Display)

	w = s.do(http.MethodPost, "/v1/quotes", "", map[string]any{"mode": "CUSTOM", "quantity": 7})
	s.Equal(http.StatusBadRequest, w.Code)
	resp = s.errorOf(w)
	s.Equal(ierr.ErrCodeInvalidSelection, resp.Error.Code)
	s.Equal("Quantity must be a multiple of 6 between 6 and 102 vials", resp.Error.Display)
	s.EqualValues(7, resp.Error.Details["quantity"])
}

func (s *RouterSuite) TestOrderFlow() {
	w := s.do(http.MethodPost, "/v1/selections", "user_a", nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	var created struct {
		Selection struct {
			ID string `json:"id"`
		} `json:"selection"`
	}
	s.decode(w, &created)
	id := created.Selection.ID

	w = s.do(http.MethodPut, "/v1/selections/"+id+"/tier", "user_a", map[string]any{"min_quantity": 36})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// another caller holding the id cannot place it
	w = s.do(http.MethodPost, "/v1/selections/"+id+"/order", "user_b", nil)
	s.Require().Equal(http.StatusNotFound, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/v1/selections/"+id+"/order", "user_a", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var placed struct {
		ID           string `json:"id"`
		UserID       string `json:"user_id"`
		Email        string `json:"email"`
		Vials        int    `json:"vials"`
		Total        string `json:"total"`
		TotalDisplay string `json:"total_display"`
	}
	s.decode(w, &placed)
	s.Equal("user_a", placed.UserID)
	s.Equal("user_a@example.com", placed.Email)
	s.Equal(36, placed.Vials)
	s.Equal("10440", placed.Total)
	s.Equal("$10,440", placed.TotalDisplay)

	// the session is gone after the order
	w = s.do(http.MethodGet, "/v1/selections/"+id, "user_a", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/v1/orders/"+placed.ID, "user_a", nil)
	s.Equal(http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/v1/orders/"+placed.ID, "user_b", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var list struct {
		Items      []json.RawMessage        `json:"items"`
		Pagination types.PaginationResponse `json:"pagination"`
	}
	w = s.do(http.MethodGet, "/v1/orders?limit=10", "user_a", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &list)
	s.Len(list.Items, 1)
	s.Equal(10, list.Pagination.Limit)

	w = s.do(http.MethodGet, "/v1/orders", "user_b", nil)
	s.decode(w, &list)
	s.Empty(list.Items)

	var progress struct {
		CumulativeQuantity int `json:"cumulative_quantity"`
		RemainingToNext    int `json:"remaining_to_next"`
	}
	w = s.do(http.MethodGet, "/v1/loyalty", "user_a", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &progress)
	s.Equal(36, progress.CumulativeQuantity)
	s.Equal(64, progress.RemainingToNext)
}

func (s *RouterSuite) TestListOrdersRejectsBadSort() {
	w := s.do(http.MethodGet, "/v1/orders?sort=email", "user_a", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestSelectionRequestBinding() {
	w := s.do(http.MethodPost, "/v1/selections", "", nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	var created struct {
		Selection struct {
			ID string `json:"id"`
		} `json:"selection"`
	}
	s.decode(w, &created)

	w = s.do(http.MethodPut, "/v1/selections/"+created.Selection.ID+"/quantity", "", map[string]any{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(ierr.ErrCodeValidation, s.errorOf(w).Error.Code)

	w = s.do(http.MethodDelete, "/v1/selections/"+created.Selection.ID, "", nil)
	s.Equal(http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, "/v1/selections/"+created.Selection.ID, "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestSupportDisabled() {
	w := s.do(http.MethodPost, "/v1/support/conversations", "", nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(ierr.ErrCodeInvalidOperation, s.errorOf(w).Error.Code)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/v1/catalog", "", nil)

	w := s.do(http.MethodGet, "/metrics", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(strings.Contains(w.Body.String(), "letybo_http_requests_total"))
}

func (s *RouterSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/v1/catalog", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
