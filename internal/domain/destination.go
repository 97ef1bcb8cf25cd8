package domain

// RecommendedDestination is a dashboard suggestion card.
type RecommendedDestination struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	PriceBand   string `json:"priceBand"`
	Description string `json:"description"`
}

// RecommendedDestinations returns the fixed solo-traveler suggestions shown
// on the dashboard.
func RecommendedDestinations() []RecommendedDestination {
	return []RecommendedDestination{
		{
			Name:        "Bali, Indonesia",
			Tagline:     "Perfect for Solo Travelers",
			PriceBand:   "$$ Mid-range",
			Description: "Perfect for spiritual retreats, beaches, and adventure. Great for digital nomads.",
		},
		{
			Name:        "Kyoto, Japan",
			Tagline:     "Cultural Immersion",
			PriceBand:   "$$$ Luxury",
			Description: "Traditional temples, gardens, and authentic cuisine in a safe environment.",
		},
		{
			Name:        "Lisbon, Portugal",
			Tagline:     "Budget-friendly",
			PriceBand:   "$ Budget",
			Description: "Colorful streets, delicious food, and vibrant nightlife with great hostels.",
		},
	}
}
