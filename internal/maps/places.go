package maps

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string   `json:"name"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		PriceLevel       int      `json:"price_level"`
		Vicinity         string   `json:"vicinity"`
		Types            []string `json:"types"`
		OpeningHours     *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// mealKeyword widens the search term for specific meal slots.
func mealKeyword(mealType string) string {
	switch mealType {
	case "breakfast":
		return "breakfast cafe"
	case "lunch":
		return "lunch restaurant"
	case "dinner":
		return "dinner restaurant"
	default:
		return mealType
	}
}

// NearbyRestaurants looks up open restaurants around a location, filtered to
// places with a rating and more than ten reviews, capped at ten results. Any
// failure falls back to DefaultRestaurants.
func (c *Client) NearbyRestaurants(ctx context.Context, location, mealType string) []domain.Restaurant {
	key := c.key(ctx)
	if key == "" || location == "" {
		return DefaultRestaurants()
	}

	lat, lng, err := c.geocode(ctx, location, key)
	if err != nil {
		return DefaultRestaurants()
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", "1500")
	params.Set("type", "restaurant")
	params.Set("keyword", mealKeyword(mealType))
	params.Set("opennow", "true")
	params.Set("rankby", "prominence")
	params.Set("key", key)

	var resp placesResponse
	if err := c.getJSON(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
		return DefaultRestaurants()
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return DefaultRestaurants()
	}

	restaurants := make([]domain.Restaurant, 0, 10)
	for _, place := range resp.Results {
		if place.Rating == 0 || place.UserRatingsTotal <= 10 {
			continue
		}
		priceLevel := place.PriceLevel
		if priceLevel == 0 {
			priceLevel = 2
		}
		openNow := true
		if place.OpeningHours != nil {
			openNow = place.OpeningHours.OpenNow
		}
		photos := make([]string, 0, len(place.Photos))
		for _, photo := range place.Photos {
			photos = append(photos, fmt.Sprintf(
				"%s/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s",
				c.baseURL, photo.PhotoReference, key,
			))
		}
		restaurants = append(restaurants, domain.Restaurant{
			Name:       place.Name,
			Rating:     place.Rating,
			PriceLevel: priceLevel,
			Vicinity:   place.Vicinity,
			Types:      place.Types,
			OpenNow:    openNow,
			Photos:     photos,
		})
		if len(restaurants) == 10 {
			break
		}
	}
	if len(restaurants) == 0 {
		return DefaultRestaurants()
	}
	return restaurants
}

// PointsOfInterest looks up the top tourist attractions within five
// kilometres of a location. Any failure falls back to
// DefaultPointsOfInterest.
func (c *Client) PointsOfInterest(ctx context.Context, location string) []domain.PointOfInterest {
	key := c.key(ctx)
	if key == "" || location == "" {
		return DefaultPointsOfInterest()
	}

	lat, lng, err := c.geocode(ctx, location, key)
	if err != nil {
		return DefaultPointsOfInterest()
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", "5000")
	params.Set("type", "tourist_attraction")
	params.Set("rankby", "prominence")
	params.Set("key", key)

	var resp placesResponse
	if err := c.getJSON(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
		return DefaultPointsOfInterest()
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return DefaultPointsOfInterest()
	}

	limit := len(resp.Results)
	if limit > 10 {
		limit = 10
	}
	pois := make([]domain.PointOfInterest, 0, limit)
	for _, place := range resp.Results[:limit] {
		pois = append(pois, domain.PointOfInterest{
			Name:             place.Name,
			Rating:           place.Rating,
			Types:            place.Types,
			UserRatingsTotal: place.UserRatingsTotal,
		})
	}
	return pois
}
