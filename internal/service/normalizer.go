package service

import (
	"fmt"
	"math"

	"github.com/vanshika/campusroute/internal/domain"
)

// ValidateEdges checks the preconditions the path solver relies on: both
// endpoints are named and the distance is finite and non-negative.
func ValidateEdges(edges []domain.Edge) error {
	for i, e := range edges {
		if err := validateEdge(e); err != nil {
			return fmt.Errorf("edge %d (%q-%q): %w", i, e.Source, e.Destination, err)
		}
	}
	return nil
}

func validateEdge(e domain.Edge) error {
	switch {
	case e.Source == "" || e.Destination == "":
		return fmt.Errorf("%w: missing endpoint", ErrInvalidEdge)
	case math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0):
		return fmt.Errorf("%w: distance %v is not finite", ErrInvalidEdge, e.Distance)
	case e.Distance < 0:
		return fmt.Errorf("%w: negative distance %v", ErrInvalidEdge, e.Distance)
	}
	return nil
}
