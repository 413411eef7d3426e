package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClientSearchDecodesSummaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "galaxy s23" || q.Get("page") != "2" || q.Get("limit") != "20" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"Galaxy S23","image":"s23.webp","key_name":"galaxy-s23","vertical_name":"Mobile","min_price":52999.00,"store_count":4},
			{"name":"Galaxy S23 FE","image":"s23fe.webp","key_name":"galaxy-s23-fe","vertical_name":"Mobile","min_price":null,"store_count":0}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.Search(context.Background(), "galaxy s23", 2, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(items))
	}

	priced := items[0]
	if priced.KeyName != "galaxy-s23" || priced.StoreCount != 4 {
		t.Fatalf("unexpected first product: %+v", priced)
	}
	if !priced.MinPrice.Valid || !priced.MinPrice.Decimal.Equal(decimal.RequireFromString("52999.00")) {
		t.Fatalf("expected min price 52999.00, got %+v", priced.MinPrice)
	}

	unpriced := items[1]
	if unpriced.MinPrice.Valid {
		t.Fatalf("a null min price must decode as invalid, got %+v", unpriced.MinPrice)
	}
}

func TestClientByEntitySendsEntityID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("entityid") != "7" {
			t.Errorf("expected entityid=7, got %s", r.URL.RawQuery)
		}
		if q.Has("q") {
			t.Errorf("entity searches must not carry a text query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.ByEntity(context.Background(), 7, 1, 20)
	if err != nil {
		t.Fatalf("entity search: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty page, got %d items", len(items))
	}
}

func TestClientNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Search(context.Background(), "galaxy", 1, 20); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestSessionOverHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "galaxy" {
			w.Write([]byte(`[{"name":"Galaxy S23","image":"s23.webp","key_name":"galaxy-s23","vertical_name":"Mobile","min_price":52999,"store_count":4}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewSession(context.Background(), NewClient(srv.URL), Config{PageSize: 20}, nil)
	s.Submit("galaxy")

	snap := s.Snapshot()
	if snap.State != Exhausted {
		t.Fatalf("a short page must exhaust the session, got %s", snap.State)
	}
	if len(snap.Items) != 1 || snap.Items[0].KeyName != "galaxy-s23" {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
}
