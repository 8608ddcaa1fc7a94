package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trucking-planner/internal/http/handlers"
	mw "trucking-planner/internal/http/middleware"
	"trucking-planner/internal/http/router"
	"trucking-planner/internal/logx"
	"trucking-planner/internal/repository"
	"trucking-planner/internal/service/availability"
	"trucking-planner/internal/service/order"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := repository.NewMemory()
	t.Cleanup(store.Close)

	availSvc := availability.NewService(store, []string{"KAMBING"}, 156, time.Second, logx.Nop())
	orderSvc := order.NewService(store, time.Second, logx.Nop())

	return router.New(router.Deps{
		Logger:       logx.Nop(),
		Base:         handlers.New(),
		Availability: handlers.NewAvailabilityHandler(handlers.NewAvailabilityUsecase(availSvc)),
		Orders:       handlers.NewOrderHandler(handlers.NewOrderUsecase(orderSvc)),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

var (
	adminHeaders  = map[string]string{mw.HeaderActorRole: "admin"}
	vendorHeaders = map[string]string{mw.HeaderActorRole: "vendor", mw.HeaderActorVendor: "KAMBING"}
)

func TestRouterPing(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/ping", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouterRequiresActor(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodGet, "/orders", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouterOrderLifecycle(t *testing.T) {
	h := newTestRouter(t)

	// Vendor publishes availability.
	rr := do(t, h, http.MethodPut, "/availability/2025-03-10",
		`{"slots_20":5,"slots_40":2}`, vendorHeaders)
	require.Equal(t, http.StatusOK, rr.Code)

	// Dispatcher places an order within the ceiling.
	rr = do(t, h, http.MethodPost, "/orders",
		`{"vendor":"KAMBING","stuffing_date":"2025-03-10","delivery_note":"DN-1001","count_20":3,"count_40":1}`,
		adminHeaders)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID         string `json:"id"`
		Containers []struct {
			SequenceNo int    `json:"sequence_no"`
			Size       string `json:"size"`
		} `json:"containers"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.Len(t, created.Containers, 4)

	// Vendor partially accepts: two 20ft and the 40ft.
	rr = do(t, h, http.MethodPost, "/orders/"+created.ID+"/partial",
		`{"accept_20":2,"accept_40":1}`, vendorHeaders)
	require.Equal(t, http.StatusOK, rr.Code)

	var decided struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&decided))
	require.Equal(t, "Partial", decided.Status)

	// Vendor reports logistics progress on an accepted container.
	rr = do(t, h, http.MethodPatch, "/orders/"+created.ID+"/containers/1",
		`{"container_number":"TEMU1234567","trucking_status":"En Route to Depot"}`,
		vendorHeaders)
	require.Equal(t, http.StatusOK, rr.Code)

	// Rejected container refuses updates.
	rr = do(t, h, http.MethodPatch, "/orders/"+created.ID+"/containers/3",
		`{"container_number":"TEMU7654321"}`, vendorHeaders)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// The report shows the partial acceptance.
	rr = do(t, h, http.MethodGet, "/orders/"+created.ID+"/report", "", adminHeaders)
	require.Equal(t, http.StatusOK, rr.Code)

	var report struct {
		Order struct {
			Status string `json:"status"`
		} `json:"order"`
		InTransit int `json:"in_transit"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
	require.Equal(t, "Partial", report.Order.Status)
	require.Equal(t, 3, report.InTransit)
}

func TestRouterVendorCannotPlaceOrder(t *testing.T) {
	h := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/orders",
		`{"vendor":"KAMBING","stuffing_date":"2025-03-10","delivery_note":"DN","count_20":1}`,
		vendorHeaders)
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouterMetricsExposed(t *testing.T) {
	h := newTestRouter(t)

	// ensure at least one sample exists before scraping
	do(t, h, http.MethodGet, "/ping", "", nil)

	rr := do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "http_requests_total")
}
