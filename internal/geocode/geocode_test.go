package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joshua-takyi/wastenot/internal/models"
)

func TestReverseGeocode(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/reverse" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":{"town":"Cupertino","state":"California","country":"United States"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wastenot-test", srv.Client())
	placemarks, err := client.ReverseGeocode(context.Background(), models.Coordinates{Latitude: 37.3229, Longitude: -122.0322})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placemarks) != 1 {
		t.Fatalf("expected one placemark, got %d", len(placemarks))
	}
	if got := placemarks[0].Format(); got != "Cupertino, California, United States" {
		t.Errorf("Format() = %q", got)
	}
	if gotAgent != "wastenot-test" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if gotQuery == "" {
		t.Error("expected lat/lon query parameters")
	}
}

func TestReverseGeocodeUnknownPoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	placemarks, err := NewClient(srv.URL, "", srv.Client()).ReverseGeocode(context.Background(), models.Coordinates{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placemarks) != 0 {
		t.Errorf("expected no placemarks, got %+v", placemarks)
	}
}

func TestReverseGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "", srv.Client()).ReverseGeocode(context.Background(), models.Coordinates{}); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}
