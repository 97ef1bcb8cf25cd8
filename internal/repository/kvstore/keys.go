package kvstore

// Key namespace. The names carry over from the original client's
// local-storage keys, with per-user suffixes where the browser had a single
// implicit user.
const (
	keyUsers       = "prefer_users"
	keyMapsAPIKey  = "prefer_google_maps_api_key"
	prefixProfile  = "prefer_user:"
	prefixAuthUser = "prefer_auth_user:"
	prefixStats    = "prefer_trip_stats:"
	prefixActive   = "prefer_active_trip:"
	prefixPlans    = "prefer_travel_plans:"
	prefixCountry  = "prefer_visited_countries:"
)

func profileKey(uid string) string   { return prefixProfile + uid }
func authUserKey(uid string) string  { return prefixAuthUser + uid }
func statsKey(uid string) string     { return prefixStats + uid }
func activeKey(uid string) string    { return prefixActive + uid }
func plansKey(uid string) string     { return prefixPlans + uid }
func countriesKey(uid string) string { return prefixCountry + uid }
