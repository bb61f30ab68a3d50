package capedge

import (
	"context"
	"errors"
	nethttp "net/http"
	"testing"

	capehttp "github.com/randalmurphal/capedge/http"
	"github.com/randalmurphal/capedge/testutil"
)

func TestSearchCompany(t *testing.T) {
	t.Run("maps search rows", func(t *testing.T) {
		var gotQuery string
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.URL.Path != "/v1/api/search/company" {
				t.Errorf("path = %q", r.URL.Path)
			}
			gotQuery = r.URL.Query().Get("q")
			testutil.ServeJSON(w, testutil.LoadFixture(t, "search_company.json"))
		}))

		companies, err := client.SearchCompany(context.Background(), "Apple")
		if err != nil {
			t.Fatalf("SearchCompany() error = %v", err)
		}
		if gotQuery != "Apple" {
			t.Errorf("q = %q, want %q", gotQuery, "Apple")
		}

		want := []Company{
			{CIK: "0000320193", Name: "Apple Inc.", Ticker: "AAPL"},
			{CIK: "1418091", Name: "Apple Hospitality REIT, Inc.", Ticker: "APLE"},
			{CIK: "0001144879", Name: "Apple Rush Company, Inc.", Ticker: ""},
		}
		if len(companies) != len(want) {
			t.Fatalf("got %d companies, want %d", len(companies), len(want))
		}
		for i, company := range companies {
			if company != want[i] {
				t.Errorf("company %d = %+v, want %+v", i, company, want[i])
			}
		}
	})

	t.Run("accepts plain cik/name/ticker rows", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			testutil.ServeJSON(w, []byte(`{"data":[{"cik":"0000320193","name":"Apple Inc.","ticker":"AAPL"}]}`))
		}))

		companies, err := client.SearchCompany(context.Background(), "Apple")
		if err != nil {
			t.Fatalf("SearchCompany() error = %v", err)
		}
		if len(companies) != 1 {
			t.Fatalf("got %d companies, want 1", len(companies))
		}
		if companies[0].CIK != "0000320193" {
			t.Errorf("CIK = %q, want %q", companies[0].CIK, "0000320193")
		}
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			testutil.ServeJSON(w, []byte(`{"data":[]}`))
		}))

		companies, err := client.SearchCompany(context.Background(), "zzzznope")
		if err != nil {
			t.Fatalf("SearchCompany() error = %v", err)
		}
		if companies == nil {
			t.Fatal("got nil slice, want empty slice")
		}
		if len(companies) != 0 {
			t.Errorf("got %d companies, want 0", len(companies))
		}
	})

	t.Run("non-2xx surfaces status code", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			w.WriteHeader(nethttp.StatusUnauthorized)
		}))

		_, err := client.SearchCompany(context.Background(), "Apple")
		if !errors.Is(err, capehttp.ErrUnauthorized) {
			t.Errorf("got error %v, want ErrUnauthorized", err)
		}

		var apiErr *capehttp.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error %v is not an APIError", err)
		}
		if apiErr.StatusCode != 401 {
			t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
		}
	})
}

func TestFindCompanyCIK(t *testing.T) {
	t.Run("returns first match", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			testutil.ServeJSON(w, testutil.LoadFixture(t, "search_company.json"))
		}))

		cik, ok, err := client.FindCompanyCIK(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("FindCompanyCIK() error = %v", err)
		}
		if !ok {
			t.Fatal("ok = false, want true")
		}
		if cik != "0000320193" {
			t.Errorf("cik = %q, want %q", cik, "0000320193")
		}
	})

	t.Run("no match", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			testutil.ServeJSON(w, []byte(`{"data":[]}`))
		}))

		cik, ok, err := client.FindCompanyCIK(context.Background(), "xx-nonsense-xx")
		if err != nil {
			t.Fatalf("FindCompanyCIK() error = %v", err)
		}
		if ok {
			t.Errorf("ok = true with cik %q, want false", cik)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		client := newTestClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))

		_, _, err := client.FindCompanyCIK(context.Background(), "AAPL")
		if !errors.Is(err, capehttp.ErrServerError) {
			t.Errorf("got error %v, want ErrServerError", err)
		}
	})
}
