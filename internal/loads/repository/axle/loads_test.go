package axle_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"axle-assist/internal/loads"
	repoAxle "axle-assist/internal/loads/repository/axle"
	"axle-assist/internal/model"
	pkgAxle "axle-assist/pkg/axle"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func repoForBody(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
}

func TestSearchLoads_Normalization(t *testing.T) {
	body := `{"data":{"result":[
		{
			"req_truck_uuid":"truck-uuid-1",
			"pickup_location":"Delhi",
			"destination":"Mumbai",
			"truck_type":"Closed truck 32FTXXL18 MT",
			"material_type":"Electronics",
			"requested_capacity_mg":7.5,
			"bidding_end_time":"2 hrs 15 min",
			"target_price":45000,
			"status":"requested",
			"load_type":"delhivery"
		},
		{
			"transaction_id":"tx-2",
			"origin_city":"Ghaziabad",
			"destination_city":"Pune",
			"req_truck_type":"Open 20FT",
			"load_type":"weird_value"
		},
		{
			"creation_time":"2026-01-01T00:00:00Z"
		},
		{}
	]}}`
	ts := repoForBody(t, body)
	defer ts.Close()

	repo := repoAxle.New(pkgAxle.NewClient(ts.URL, "tok"), &mockLogger{})
	cards, err := repo.SearchLoads(context.Background(), loads.Sanitize(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(cards))
	}

	first := cards[0]
	if first.ID != "truck-uuid-1" {
		t.Errorf("id fallback chain broke: %s", first.ID)
	}
	if first.Route.From != "Delhi" || first.Route.To != "Mumbai" {
		t.Errorf("unexpected route: %+v", first.Route)
	}
	if first.Capacity != "7.5T" {
		t.Errorf("capacity suffix missing: %s", first.Capacity)
	}
	if first.TargetPrice == nil || *first.TargetPrice != 45000 {
		t.Errorf("target price lost: %v", first.TargetPrice)
	}
	if first.LoadType != model.LoadTypeDelhivery {
		t.Errorf("delhivery load type coerced away: %s", first.LoadType)
	}

	second := cards[1]
	if second.ID != "tx-2" {
		t.Errorf("expected transaction_id fallback, got %s", second.ID)
	}
	if second.Route.From != "Ghaziabad" || second.Route.To != "Pune" {
		t.Errorf("secondary route fields not used: %+v", second.Route)
	}
	if second.TruckType != "Open 20FT" {
		t.Errorf("req_truck_type fallback not used: %s", second.TruckType)
	}
	if second.LoadType != model.LoadTypeMarketplace {
		t.Errorf("unknown load type not coerced to marketplace: %s", second.LoadType)
	}
	if second.Capacity != "-" {
		t.Errorf("absent capacity should render as dash: %s", second.Capacity)
	}
	if second.BiddingEndTime != "open" {
		t.Errorf("absent bidding end should default to open: %s", second.BiddingEndTime)
	}

	third := cards[2]
	if third.ID != "2026-01-01T00:00:00Z" {
		t.Errorf("creation_time fallback not used: %s", third.ID)
	}
	if third.Route.From != "-" || third.Route.To != "-" {
		t.Errorf("absent route should render dashes: %+v", third.Route)
	}

	fourth := cards[3]
	if fourth.ID == "" {
		t.Errorf("record with no identifiers should get a generated one")
	}
	if fourth.Status != "open" {
		t.Errorf("absent status should default to open: %s", fourth.Status)
	}
}

func TestSearchLoads_TruncatesToTen(t *testing.T) {
	var records []string
	for i := 0; i < 25; i++ {
		records = append(records, fmt.Sprintf(`{"transaction_id":"tx-%d"}`, i))
	}
	ts := repoForBody(t, `{"data":{"result":[`+strings.Join(records, ",")+`]}}`)
	defer ts.Close()

	repo := repoAxle.New(pkgAxle.NewClient(ts.URL, "tok"), &mockLogger{})
	cards, err := repo.SearchLoads(context.Background(), loads.Sanitize(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 10 {
		t.Fatalf("expected truncation to 10 cards, got %d", len(cards))
	}
	for i, card := range cards {
		if want := fmt.Sprintf("tx-%d", i); card.ID != want {
			t.Errorf("order not preserved at %d: got %s want %s", i, card.ID, want)
		}
	}
}

func TestSearchLoads_UpstreamFailurePropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("service down"))
	}))
	defer ts.Close()

	repo := repoAxle.New(pkgAxle.NewClient(ts.URL, "tok"), &mockLogger{})
	_, err := repo.SearchLoads(context.Background(), loads.Sanitize(nil))
	if err == nil {
		t.Fatalf("expected error from 503 upstream")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("status code missing from error: %v", err)
	}
}
