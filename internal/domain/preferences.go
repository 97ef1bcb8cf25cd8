package domain

// Budget tiers. Each maps to a fixed cost multiplier in the budget estimator.
const (
	BudgetTierBudget   = "Budget"
	BudgetTierMidRange = "Mid-range"
	BudgetTierLuxury   = "Luxury"
)

// Preferences is the travel preference set collected by the onboarding
// wizard. It is a pure value object, replaced wholesale on each edit; empty
// selections are allowed.
type Preferences struct {
	TravelStyle   []string `json:"travelStyle"`
	Accommodation []string `json:"accommodation"`
	Budget        string   `json:"budget"`
	Activities    []string `json:"activities"`
}

// DefaultPreferences is used when a plan is requested before the wizard has
// been completed.
func DefaultPreferences() Preferences {
	return Preferences{
		TravelStyle:   []string{},
		Accommodation: []string{},
		Budget:        BudgetTierMidRange,
		Activities:    []string{},
	}
}

// BudgetTierOption describes one selectable budget tier.
type BudgetTierOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// PreferenceOptions is the fixed catalog backing the three wizard steps.
type PreferenceOptions struct {
	TravelStyles   []string           `json:"travelStyles"`
	BudgetTiers    []BudgetTierOption `json:"budgetTiers"`
	Accommodations []string           `json:"accommodations"`
	Activities     []string           `json:"activities"`
}

// OptionCatalog returns the selectable values offered by the onboarding
// wizard.
func OptionCatalog() PreferenceOptions {
	return PreferenceOptions{
		TravelStyles: []string{
			"Adventure Seeker",
			"Cultural Explorer",
			"Relaxation",
			"Social Butterfly",
			"Off the Beaten Path",
			"Foodie",
			"Luxury Travel",
			"Outdoor Enthusiast",
			"Beach Lover",
			"Festival Goer",
			"Pet Friendly",
		},
		BudgetTiers: []BudgetTierOption{
			{Label: BudgetTierBudget, Description: "Under $50/day"},
			{Label: BudgetTierMidRange, Description: "$50-$150/day"},
			{Label: BudgetTierLuxury, Description: "Over $150/day"},
		},
		Accommodations: []string{
			"Hostels",
			"Hotels",
			"Airbnb",
			"Couchsurfing",
		},
		Activities: []string{
			"Hiking",
			"Museums",
			"Local Cuisine",
			"Photography",
			"Nightlife",
			"Shopping",
			"Beach",
			"Historical Sites",
			"Nature",
			"Festivals",
			"Water Sports",
			"Wildlife",
		},
	}
}
