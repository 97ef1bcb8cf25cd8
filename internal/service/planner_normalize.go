package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

const defaultPlanImageURL = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?q=80&w=2070&auto=format&fit=crop"

func defaultPlaylist() domain.SpotifyPlaylist {
	return domain.SpotifyPlaylist{
		Name:        "Trip Vibes",
		Description: "A playlist to match your travel mood",
		Tracks:      []domain.SpotifyTrack{},
		EmbedURL:    "https://open.spotify.com/embed/playlist/37i9dQZF1DX0SM0LYsmbMT",
	}
}

// rawPlan accepts the model's plan shape. The itinerary is kept raw because
// models return it either as an array or as an object keyed "0", "1", ...
type rawPlan struct {
	domain.TravelPlan
	Itinerary json.RawMessage `json:"itinerary"`
}

type planEnvelope struct {
	Plans []json.RawMessage `json:"plans"`
}

// parsePlans extracts plans from the model's JSON. A response without a
// "plans" array but with plan fields at the root is treated as a single
// plan. Anything unparseable yields an empty slice, which triggers the
// fallback.
func parsePlans(raw string) []domain.TravelPlan {
	trimmed := []byte(strings.TrimSpace(raw))

	var envelope planEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil
	}

	rawPlans := envelope.Plans
	if len(rawPlans) == 0 {
		var single rawPlan
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil
		}
		if single.Title == "" || single.Description == "" {
			return nil
		}
		rawPlans = []json.RawMessage{trimmed}
	}

	plans := make([]domain.TravelPlan, 0, len(rawPlans))
	for _, data := range rawPlans {
		var rp rawPlan
		if err := json.Unmarshal(data, &rp); err != nil {
			continue
		}
		plan := rp.TravelPlan
		plan.Itinerary = normalizeItinerary(rp.Itinerary)
		plans = append(plans, plan)
	}
	return plans
}

// normalizeItinerary coerces the model's itinerary into a slice. Object form
// is ordered by its numeric keys before collection.
func normalizeItinerary(raw json.RawMessage) []domain.ItineraryItem {
	if len(raw) == 0 {
		return []domain.ItineraryItem{}
	}

	var items []domain.ItineraryItem
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			items = []domain.ItineraryItem{}
		}
		return items
	}

	var keyed map[string]domain.ItineraryItem
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return []domain.ItineraryItem{}
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if (errA == nil) != (errB == nil) {
			return errA == nil
		}
		return keys[i] < keys[j]
	})

	items = make([]domain.ItineraryItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, keyed[key])
	}
	return items
}

// sortItinerary orders entries chronologically by their 12-hour clock
// labels. Unparseable labels sort to the front.
func sortItinerary(items []domain.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return clockMinutes(items[i].Time) < clockMinutes(items[j].Time)
	})
}

// clockMinutes converts a "H:MM AM/PM" label to minutes since midnight,
// returning 0 when the label does not parse.
func clockMinutes(label string) int {
	clock, period, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok {
		return 0
	}
	hourStr, minuteStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0
	}

	switch strings.ToUpper(period) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0
	}
	return hour*60 + minute
}
