package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"foodcoop_orders/internal/adapter/http/handlers/mocks"
	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase"
)

func newCycleRouter(cycles usecase.ICycleUseCase, volumes usecase.IVolumeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCycleHandler(cycles, volumes)
	r.GET("/v1/cycles/current", h.GetCurrentCycle)
	r.POST("/v1/cycles", h.CreateCycle)
	r.POST("/v1/cycles/current/resync", h.ResyncQuantities)
	r.GET("/v1/cycles/current/volumes", h.GetOrderVolumes)
	return r
}

func TestCycleHandler_GetCurrentCycle(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().Current(gomock.Any()).Return(entities.SalesCycle{
			ID:       "cycle-1",
			Deadline: time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC),
			Products: []entities.Product{{ID: "42", Name: "Carrots", OfferedQuantity: 10}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cycles/current", nil)
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "cycle-1" {
			t.Fatalf("unexpected id: %v", got["id"])
		}
	})

	t.Run("maps missing cycle to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().Current(gomock.Any()).Return(entities.SalesCycle{}, usecase.ErrCycleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/cycles/current", nil)
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCycleHandler_CreateCycle(t *testing.T) {
	validBody := `{
		"deadline": "2026-09-04T18:00:00Z",
		"delivery_date": "2026-09-06T09:00:00Z",
		"products": [{"id": "42", "name": "Carrots", "offered_quantity": 10}],
		"customers": [{"slug": "alice", "name": "Alice"}]
	}`

	t.Run("creates a campaign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.NewCycleInput) (entities.SalesCycle, error) {
				if len(input.Products) != 1 || input.Products[0].OfferedQuantity != 10 {
					t.Fatalf("unexpected catalog: %+v", input.Products)
				}
				return entities.SalesCycle{ID: "cycle-1", Products: input.Products, Customers: input.Customers}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/cycles", strings.NewReader(validBody))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects a payload without required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/cycles", strings.NewReader(`{"products": []}`))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("maps validation errors to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.SalesCycle{}, usecase.ErrInvalidDates)

		req := httptest.NewRequest(http.MethodPost, "/v1/cycles", strings.NewReader(validBody))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCycleHandler_ResyncQuantities(t *testing.T) {
	t.Run("merges quantities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().ResyncQuantities(gomock.Any(), map[string]float64{"42": 12, "99": 20}).Return(nil)

		body := `{"quantities": {"42": 12, "99": 20}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/cycles/current/resync", strings.NewReader(body))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an empty quantity map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/cycles/current/resync", strings.NewReader(`{"quantities": {}}`))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("maps missing ledger to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cycles := mocks.NewMockICycleUseCase(ctrl)
		volumes := mocks.NewMockIVolumeUseCase(ctrl)
		cycles.EXPECT().ResyncQuantities(gomock.Any(), gomock.Any()).Return(usecase.ErrLedgerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/cycles/current/resync", strings.NewReader(`{"quantities": {"42": 1}}`))
		w := httptest.NewRecorder()
		newCycleRouter(cycles, volumes).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCycleHandler_GetOrderVolumes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cycles := mocks.NewMockICycleUseCase(ctrl)
	volumes := mocks.NewMockIVolumeUseCase(ctrl)
	volumes.EXPECT().GetOrderVolumes(gomock.Any()).Return(entities.VolumeLedger{
		"42": {OriginalQuantity: 10, Reservations: []entities.Reservation{{CustomerSlug: "alice", Quantity: 6}}},
		"7":  {OriginalQuantity: 5},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cycles/current/volumes", nil)
	w := httptest.NewRecorder()
	newCycleRouter(cycles, volumes).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got struct {
		Products []struct {
			ProductID string  `json:"product_id"`
			Remaining float64 `json:"remaining"`
		} `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got.Products))
	}
	// Sorted by product id for a stable admin table.
	if got.Products[0].ProductID != "42" || got.Products[1].ProductID != "7" {
		t.Fatalf("unexpected order: %+v", got.Products)
	}
	if got.Products[0].Remaining != 4 {
		t.Fatalf("unexpected remaining: %v", got.Products[0].Remaining)
	}
}
