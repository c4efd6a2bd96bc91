// Package report renders route query outcomes for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
	"github.com/vanshika/campusroute/internal/service"
)

// FormatDistance renders a distance with as few digits as needed.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// WriteRoute prints the distance and path lines of a successful query.
func WriteRoute(w io.Writer, route domain.Route) error {
	_, err := fmt.Fprintf(w, "Shortest distance from %s to %s: %s\nShortest path: %s\n",
		route.Source, route.Destination, FormatDistance(route.Distance),
		strings.Join(route.Path, " -> "))
	return err
}

// WriteLegs prints the hops of route as a table with a running total.
func WriteLegs(w io.Writer, route domain.Route) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "From", "To", "Distance", "Total"})

	total := 0.0
	for i, leg := range route.Legs {
		total += leg.Distance
		t.AppendRow(table.Row{i + 1, leg.From, leg.To, FormatDistance(leg.Distance), FormatDistance(total)})
	}
	t.AppendFooter(table.Row{"", "", "", "Hops", route.Hops()})
	t.Render()
}

// DescribeError turns a failed query into the message shown to the user. The
// second return value is false for errors that are not query outcomes.
func DescribeError(source, destination string, err error) (string, bool) {
	switch {
	case errors.Is(err, pathfinding.ErrUnknownNode):
		node := destination
		var nodeErr *service.NodeError
		if errors.As(err, &nodeErr) {
			node = nodeErr.Node
		}
		return "No such node: " + node, true
	case errors.Is(err, pathfinding.ErrNoPath):
		return fmt.Sprintf("No path exists from %s to %s", source, destination), true
	default:
		return "", false
	}
}
