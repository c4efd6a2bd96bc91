package domain

// Leg is a single hop of a route.
type Leg struct {
	From     string
	To       string
	Distance float64
}

// Route is the answer to a shortest-path query between two locations.
type Route struct {
	Source      string
	Destination string
	Distance    float64
	Path        []string
	Legs        []Leg
}

// Hops returns the number of edges travelled along the route.
func (r Route) Hops() int {
	return len(r.Legs)
}
