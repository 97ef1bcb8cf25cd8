package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AdithyahNair/Prefer/internal/domain"
)

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			StartAddress string `json:"start_address"`
			EndAddress   string `json:"end_address"`
			Duration     struct {
				Text string `json:"text"`
			} `json:"duration"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Steps []struct {
				TravelMode     string `json:"travel_mode"`
				TransitDetails *struct {
					Line struct {
						ShortName     string `json:"short_name"`
						Name          string `json:"name"`
						FrequencyText string `json:"frequency_text"`
					} `json:"line"`
					DepartureStop struct {
						Name string `json:"name"`
					} `json:"departure_stop"`
					ArrivalStop struct {
						Name string `json:"name"`
					} `json:"arrival_stop"`
				} `json:"transit_details"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// TransitInfo queries the directions API for transit routes between the two
// locations and augments them with walking and taxi estimates. Any failure
// falls back to DefaultTransitDetails.
func (c *Client) TransitInfo(ctx context.Context, origin, destination string) domain.TransitDetails {
	key := c.key(ctx)
	if key == "" || origin == "" || destination == "" {
		return DefaultTransitDetails()
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", "transit")
	params.Set("alternatives", "true")
	params.Set("key", key)

	var resp directionsResponse
	if err := c.getJSON(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return DefaultTransitDetails()
	}
	if resp.Status != "OK" || len(resp.Routes) == 0 {
		return DefaultTransitDetails()
	}

	options := make([]domain.TransitOption, 0, len(resp.Routes)+2)
	for _, route := range resp.Routes {
		if len(route.Legs) == 0 {
			continue
		}
		leg := route.Legs[0]

		option := domain.TransitOption{
			Mode:      "Public Transit",
			Duration:  leg.Duration.Text,
			Cost:      EstimateTransitCost(destination),
			Route:     fmt.Sprintf("From %s to %s", leg.StartAddress, leg.EndAddress),
			Frequency: "Varies",
		}
		for _, step := range leg.Steps {
			if step.TravelMode != "TRANSIT" || step.TransitDetails == nil {
				continue
			}
			td := step.TransitDetails
			line := td.Line.ShortName
			if line == "" {
				line = td.Line.Name
			}
			option.Route = fmt.Sprintf("%s - %s to %s", line, td.DepartureStop.Name, td.ArrivalStop.Name)
			if td.Line.FrequencyText != "" {
				option.Frequency = td.Line.FrequencyText
			}
			break
		}
		options = append(options, option)
	}
	if len(options) == 0 {
		return DefaultTransitDetails()
	}

	firstLeg := resp.Routes[0].Legs[0]
	options = append(options,
		domain.TransitOption{
			Mode:      "Walking",
			Duration:  firstLeg.Duration.Text,
			Cost:      0,
			Route:     "Direct",
			Frequency: "Anytime",
		},
		domain.TransitOption{
			Mode:      "Taxi/Rideshare",
			Duration:  strings.ReplaceAll(firstLeg.Duration.Text, "transit", "driving"),
			Cost:      EstimateTaxiCost(firstLeg.Distance.Value, destination),
			Route:     "Direct",
			Frequency: "On demand",
		},
	)

	return domain.TransitDetails{
		Options:          options,
		LocalTransitTips: transitTipsFor(destination),
		AverageCost:      options[0].Cost,
	}
}
