package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLatestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"JPY":151.2,"EUR":0.93}}`))
	}))
	defer srv.Close()

	rates, err := NewClient(srv.URL, time.Second).LatestRates(context.Background())
	if err != nil {
		t.Fatalf("LatestRates: %v", err)
	}
	if rates["JPY"] != 151.2 || rates["EUR"] != 0.93 {
		t.Fatalf("unexpected rates %v", rates)
	}
}

func TestLatestRatesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.Second).LatestRates(context.Background()); err == nil {
		t.Fatalf("expected an error for a 503")
	}
}
