package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func staticKey(key string) KeyFunc {
	return func(context.Context) string { return key }
}

func newTestClient(t *testing.T, handler http.HandlerFunc, key string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(staticKey(key), WithBaseURL(server.URL))
}

func TestReverseGeocodeExtractsCityAndCountry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("latlng") == "" {
			t.Errorf("expected latlng parameter")
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "10 Rue de Rivoli, 75001 Paris, France",
				"address_components": [
					{"long_name": "Paris", "types": ["locality", "political"]},
					{"long_name": "France", "types": ["country", "political"]}
				]
			}]
		}`))
	}, "test-key")

	address, err := client.ReverseGeocode(context.Background(), 48.8566, 2.3522)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if address != "Paris, France" {
		t.Fatalf("expected Paris, France, got %q", address)
	}
}

func TestReverseGeocodeFallsBackToFormattedAddress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Somewhere remote",
				"address_components": [{"long_name": "France", "types": ["country"]}]
			}]
		}`))
	}, "test-key")

	address, err := client.ReverseGeocode(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if address != "Somewhere remote" {
		t.Fatalf("expected formatted address, got %q", address)
	}
}

func TestReverseGeocodeWithoutKeyReturnsCoordinates(t *testing.T) {
	client := NewClient(staticKey(""))

	address, err := client.ReverseGeocode(context.Background(), 42.36011, -71.05892)
	if err == nil {
		t.Fatalf("expected error when no key configured")
	}
	if address != "42.3601, -71.0589" {
		t.Fatalf("expected formatted coordinates, got %q", address)
	}
}

func TestTransitInfoParsesRoutes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mode"); got != "transit" {
			t.Errorf("expected mode=transit, got %q", got)
		}
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"legs": [{
					"start_address": "Gare du Nord",
					"end_address": "Louvre",
					"duration": {"text": "25 mins"},
					"distance": {"value": 4000},
					"steps": [{
						"travel_mode": "TRANSIT",
						"transit_details": {
							"line": {"short_name": "M1", "name": "Metro Line 1"},
							"departure_stop": {"name": "Gare du Nord"},
							"arrival_stop": {"name": "Louvre-Rivoli"}
						}
					}]
				}]
			}]
		}`))
	}, "test-key")

	details := client.TransitInfo(context.Background(), "Gare du Nord", "Paris, France")
	if len(details.Options) != 3 {
		t.Fatalf("expected transit, walking and taxi options, got %d", len(details.Options))
	}

	transit := details.Options[0]
	if transit.Route != "M1 - Gare du Nord to Louvre-Rivoli" {
		t.Fatalf("unexpected route description %q", transit.Route)
	}
	if transit.Cost != 1.9 {
		t.Fatalf("expected Paris fare 1.9, got %v", transit.Cost)
	}
	if details.AverageCost != 1.9 {
		t.Fatalf("expected average cost 1.9, got %v", details.AverageCost)
	}

	taxi := details.Options[2]
	if taxi.Mode != "Taxi/Rideshare" {
		t.Fatalf("expected taxi option last, got %q", taxi.Mode)
	}
	// 2.6 base + 4km * 1.07 = 6.88, rounded to 6.9
	if taxi.Cost != 6.9 {
		t.Fatalf("expected taxi cost 6.9, got %v", taxi.Cost)
	}

	if len(details.LocalTransitTips) != 5 {
		t.Fatalf("expected 5 tips, got %d", len(details.LocalTransitTips))
	}
	if !strings.Contains(details.LocalTransitTips[0], "carnet") {
		t.Fatalf("expected Paris-specific tip first, got %q", details.LocalTransitTips[0])
	}
}

func TestTransitInfoFallsBackOnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "test-key")

	details := client.TransitInfo(context.Background(), "A", "B")
	if len(details.Options) != 3 {
		t.Fatalf("expected default options, got %d", len(details.Options))
	}
	if details.Options[0].Duration != "Approximately 30-45 minutes" {
		t.Fatalf("expected default transit option, got %q", details.Options[0].Duration)
	}
	if details.AverageCost != 2.5 {
		t.Fatalf("expected default average cost, got %v", details.AverageCost)
	}
}

func TestNearbyRestaurantsFiltersLowReviewCounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/api/geocode/json":
			w.Write([]byte(`{
				"status": "OK",
				"results": [{"geometry": {"location": {"lat": 48.85, "lng": 2.35}}}]
			}`))
		case "/maps/api/place/nearbysearch/json":
			if got := r.URL.Query().Get("keyword"); got != "breakfast cafe" {
				t.Errorf("expected keyword breakfast cafe, got %q", got)
			}
			w.Write([]byte(`{
				"status": "OK",
				"results": [
					{"name": "Chez Marie", "rating": 4.6, "user_ratings_total": 240, "price_level": 2, "vicinity": "Rue Cler", "types": ["cafe"], "opening_hours": {"open_now": true}, "photos": [{"photo_reference": "abc123"}]},
					{"name": "New Spot", "rating": 5.0, "user_ratings_total": 3, "vicinity": "Rue Neuve", "types": ["cafe"]},
					{"name": "Unrated", "user_ratings_total": 500, "vicinity": "Rue Vide", "types": ["cafe"]}
				]
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, "test-key")

	restaurants := client.NearbyRestaurants(context.Background(), "Paris, France", "breakfast")
	if len(restaurants) != 1 {
		t.Fatalf("expected 1 restaurant after filtering, got %d", len(restaurants))
	}
	if restaurants[0].Name != "Chez Marie" {
		t.Fatalf("unexpected restaurant %q", restaurants[0].Name)
	}
	if len(restaurants[0].Photos) != 1 || !strings.Contains(restaurants[0].Photos[0], "photoreference=abc123") {
		t.Fatalf("expected photo URL with reference, got %v", restaurants[0].Photos)
	}
}

func TestNearbyRestaurantsWithoutKeyReturnsDefaults(t *testing.T) {
	client := NewClient(staticKey(""))

	restaurants := client.NearbyRestaurants(context.Background(), "Paris, France", "lunch")
	if len(restaurants) != 5 {
		t.Fatalf("expected 5 default restaurants, got %d", len(restaurants))
	}
	if restaurants[0].Name != "Local Café" {
		t.Fatalf("unexpected first default restaurant %q", restaurants[0].Name)
	}
}

func TestPointsOfInterestCapsAtTen(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/api/geocode/json":
			w.Write([]byte(`{
				"status": "OK",
				"results": [{"geometry": {"location": {"lat": 48.85, "lng": 2.35}}}]
			}`))
		case "/maps/api/place/nearbysearch/json":
			var sb strings.Builder
			sb.WriteString(`{"status": "OK", "results": [`)
			for i := 0; i < 12; i++ {
				if i > 0 {
					sb.WriteString(",")
				}
				sb.WriteString(`{"name": "Spot", "rating": 4.5, "types": ["tourist_attraction"], "user_ratings_total": 100}`)
			}
			sb.WriteString(`]}`)
			w.Write([]byte(sb.String()))
		}
	}, "test-key")

	pois := client.PointsOfInterest(context.Background(), "Paris, France")
	if len(pois) != 10 {
		t.Fatalf("expected 10 points of interest, got %d", len(pois))
	}
}

func TestStaticMapURLWithoutKey(t *testing.T) {
	client := NewClient(staticKey(""))
	if got := client.ItineraryMapURL(context.Background(), "Louvre, Paris"); got != "" {
		t.Fatalf("expected empty URL without key, got %q", got)
	}
}

func TestStaticMapURLContainsMarker(t *testing.T) {
	client := NewClient(staticKey("k"), WithBaseURL("https://example.test"))
	got := client.StaticMapURL(context.Background(), "Louvre, Paris", 400, 200, 14)
	for _, want := range []string{"size=400x200", "zoom=14", "markers=color:red%7C", "key=k"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected URL to contain %q, got %q", want, got)
		}
	}
}

func TestActivityLocationExtraction(t *testing.T) {
	cases := []struct {
		activity string
		want     string
	}{
		{"Have lunch at Le Petit Bistro, near the river", "Le Petit Bistro, Paris, France"},
		{"Explore Montmartre", "Montmartre, Paris, France"},
		{"Relax and people-watch", "Paris, France"},
	}
	for _, tc := range cases {
		if got := ActivityLocation(tc.activity, "Paris, France"); got != tc.want {
			t.Errorf("ActivityLocation(%q) = %q, want %q", tc.activity, got, tc.want)
		}
	}
}

func TestEstimateTaxiCostUnknownCity(t *testing.T) {
	// 3.0 base + 2km * 1.5 = 6.0
	if got := EstimateTaxiCost(2000, "Smallville"); got != 6.0 {
		t.Fatalf("expected 6.0, got %v", got)
	}
}
