package maps

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

// StaticMapURL builds a static map image URL centred on the location with a
// red marker. Returns "" when no API key is configured.
func (c *Client) StaticMapURL(ctx context.Context, location string, width, height, zoom int) string {
	key := c.key(ctx)
	if key == "" || location == "" {
		return ""
	}
	escaped := url.QueryEscape(location)
	return fmt.Sprintf(
		"%s/maps/api/staticmap?center=%s&zoom=%d&size=%dx%d&maptype=roadmap&markers=color:red%%7C%s&key=%s",
		c.baseURL, escaped, zoom, width, height, escaped, key,
	)
}

// ItineraryMapURL renders a 400x200 map for a single itinerary stop.
func (c *Client) ItineraryMapURL(ctx context.Context, location string) string {
	return c.StaticMapURL(ctx, location, 400, 200, 14)
}

// RestaurantMapURL renders a 300x150 close-up map for a restaurant, keyed by
// its name and vicinity.
func (c *Client) RestaurantMapURL(ctx context.Context, restaurant domain.Restaurant) string {
	if restaurant.Vicinity == "" {
		return ""
	}
	return c.StaticMapURL(ctx, restaurant.Name+", "+restaurant.Vicinity, 300, 150, 16)
}

// DestinationMapURL renders a 600x300 overview map of the destination.
func (c *Client) DestinationMapURL(ctx context.Context, destination string) string {
	return c.StaticMapURL(ctx, destination, 600, 300, 13)
}

// Activity text patterns used to pick a more specific map centre than the
// destination itself.
var activityLocationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at\s(.*?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)in\s(.*?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)visit\s(.*?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)explore\s(.*?)(?:,|\.|$)`),
}

// ActivityLocation extracts a place name from free-form activity text and
// anchors it to the base location. Falls back to the base location when no
// pattern matches.
func ActivityLocation(activity, baseLocation string) string {
	for _, pattern := range activityLocationPatterns {
		match := pattern.FindStringSubmatch(activity)
		if len(match) > 1 && match[1] != "" {
			return match[1] + ", " + baseLocation
		}
	}
	return baseLocation
}

// AnnotateItinerary fills in map image URLs for each itinerary stop. Without
// an API key the URLs stay empty.
func (c *Client) AnnotateItinerary(ctx context.Context, itinerary []domain.ItineraryItem, baseLocation string) {
	for i := range itinerary {
		itinerary[i].MapImageURL = c.ItineraryMapURL(ctx, ActivityLocation(itinerary[i].Activity, baseLocation))
	}
}
