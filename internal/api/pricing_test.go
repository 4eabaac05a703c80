package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/model"
)

func TestPriceBatches_CapitalizedParams(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/Pricing/batches" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("Page") != "2" || q.Get("PageSize") != "6" {
			t.Fatalf("pagination params = %s", r.URL.RawQuery)
		}
		if q.Get("FromDate") != "2025-01-01" || q.Get("ToDate") != "2025-02-01" {
			t.Fatalf("date params = %s", r.URL.RawQuery)
		}
		envelopeBody(t, w, model.Page[model.PriceBatch]{Page: 2, PageSize: 6, TotalPages: 4})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, credential.NewMemoryStore())

	dates := DateRange{FromDate: "2025-01-01", ToDate: "2025-02-01"}
	page, err := client.PriceBatches(context.Background(), dates, 2, 6)
	if err != nil {
		t.Fatalf("PriceBatches error: %v", err)
	}
	if page.Page != 2 {
		t.Fatalf("page = %d, want 2", page.Page)
	}
}

func TestCreatePriceBatch_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/Pricing/batch" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}

		var req model.PriceBatchCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Title != "Giá hôm nay" || len(req.PriceDetails) != 1 {
			t.Fatalf("unexpected request: %+v", req)
		}

		envelopeBody(t, w, model.PriceBatch{
			PricingBatchID: 12,
			Title:          req.Title,
			Description:    req.Description,
			PriceDetails: []model.PriceDetail{
				{PriceID: 1, ProductTypeID: req.PriceDetails[0].ProductTypeID, Price: req.PriceDetails[0].Price},
			},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, newStoreWithToken(t, "admin-token"))

	created, err := client.CreatePriceBatch(context.Background(), model.PriceBatchCreateRequest{
		Title:       "Giá hôm nay",
		Description: "Cập nhật buổi sáng",
		PriceDetails: []model.PriceBatchCreateDetail{
			{ProductTypeID: 2, Price: 30000},
		},
	})
	if err != nil {
		t.Fatalf("CreatePriceBatch error: %v", err)
	}
	if created.PricingBatchID == 0 {
		t.Fatalf("expected pricingBatchId in response")
	}
	if len(created.PriceDetails) != 1 || created.PriceDetails[0].Price != 30000 {
		t.Fatalf("unexpected details: %+v", created.PriceDetails)
	}
}
