package service

import (
	"testing"
)

func TestParsePlans_PlansArray(t *testing.T) {
	raw := `{
		"plans": [
			{
				"title": "Morning in Lisbon",
				"description": "A short stroll.",
				"itinerary": [
					{"time": "9:00 AM", "activity": "Coffee at a miradouro"},
					{"time": "10:30 AM", "activity": "Walk through Alfama"}
				]
			},
			{
				"title": "Lisbon by the River",
				"description": "Waterfront wandering.",
				"itinerary": []
			}
		]
	}`

	plans := parsePlans(raw)
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Title != "Morning in Lisbon" {
		t.Fatalf("unexpected title %q", plans[0].Title)
	}
	if len(plans[0].Itinerary) != 2 {
		t.Fatalf("expected 2 itinerary entries, got %d", len(plans[0].Itinerary))
	}
	if plans[1].Itinerary == nil {
		t.Fatalf("expected empty itinerary slice, got nil")
	}
}

func TestParsePlans_SingleRootPlan(t *testing.T) {
	raw := `{
		"title": "Quick Stop",
		"description": "A single plan at the root.",
		"itinerary": [{"time": "2:00 PM", "activity": "Visit the market"}]
	}`

	plans := parsePlans(raw)
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}
	if plans[0].Title != "Quick Stop" {
		t.Fatalf("unexpected title %q", plans[0].Title)
	}
}

func TestParsePlans_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"plans": "nope"}`, `{"description": "no title"}`} {
		if plans := parsePlans(raw); len(plans) != 0 {
			t.Errorf("expected no plans for %q, got %d", raw, len(plans))
		}
	}
}

func TestNormalizeItinerary_ObjectFormMatchesArrayForm(t *testing.T) {
	arrayForm := `{
		"plans": [{
			"title": "T", "description": "D",
			"itinerary": [
				{"time": "9:00 AM", "activity": "first"},
				{"time": "11:00 AM", "activity": "second"},
				{"time": "1:00 PM", "activity": "third"}
			]
		}]
	}`
	objectForm := `{
		"plans": [{
			"title": "T", "description": "D",
			"itinerary": {
				"2": {"time": "1:00 PM", "activity": "third"},
				"0": {"time": "9:00 AM", "activity": "first"},
				"1": {"time": "11:00 AM", "activity": "second"},
				"10": {"time": "3:00 PM", "activity": "fourth"}
			}
		}]
	}`

	fromArray := parsePlans(arrayForm)[0].Itinerary
	fromObject := parsePlans(objectForm)[0].Itinerary

	if len(fromObject) != 4 {
		t.Fatalf("expected 4 entries from object form, got %d", len(fromObject))
	}
	for i := range fromArray {
		if fromObject[i] != fromArray[i] {
			t.Fatalf("entry %d differs: array %+v object %+v", i, fromArray[i], fromObject[i])
		}
	}
	// Numeric key ordering, not lexicographic: "10" comes last.
	if fromObject[3].Activity != "fourth" {
		t.Fatalf("expected key 10 last, got %q", fromObject[3].Activity)
	}
}

func TestSortItinerary_OrdersAcrossNoon(t *testing.T) {
	plans := parsePlans(`{
		"plans": [{
			"title": "T", "description": "D",
			"itinerary": [
				{"time": "1:30 PM", "activity": "afternoon"},
				{"time": "12:15 PM", "activity": "noon"},
				{"time": "11:45 AM", "activity": "late morning"},
				{"time": "12:05 AM", "activity": "past midnight"}
			]
		}]
	}`)
	itinerary := plans[0].Itinerary
	sortItinerary(itinerary)

	want := []string{"past midnight", "late morning", "noon", "afternoon"}
	for i, activity := range want {
		if itinerary[i].Activity != activity {
			t.Fatalf("position %d: expected %q, got %q", i, activity, itinerary[i].Activity)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"12:00 AM", 0},
		{"12:30 PM", 750},
		{"1:05 PM", 785},
		{"11:59 PM", 1439},
		{"9:15 AM", 555},
		{"Morning", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := clockMinutes(tc.label); got != tc.want {
			t.Errorf("clockMinutes(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}
