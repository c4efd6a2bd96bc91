package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
	"github.com/vanshika/campusroute/internal/service"
)

var route = domain.Route{
	Source:      "A",
	Destination: "C",
	Distance:    5,
	Path:        []string{"A", "B", "C"},
	Legs: []domain.Leg{
		{From: "A", To: "B", Distance: 2},
		{From: "B", To: "C", Distance: 3},
	},
}

func TestWriteRoute(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRoute(&buf, route))

	assert.Equal(t,
		"Shortest distance from A to C: 5\nShortest path: A -> B -> C\n",
		buf.String())
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "5", FormatDistance(5))
	assert.Equal(t, "2.75", FormatDistance(2.75))
	assert.Equal(t, "0", FormatDistance(0))
}

func TestWriteLegs(t *testing.T) {
	var buf bytes.Buffer
	WriteLegs(&buf, route)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, buf.String(), "FROM")
	assert.Contains(t, buf.String(), "HOPS")

	var rows [][]string
	for _, line := range lines {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	assert.Contains(t, rows, []string{"1", "A", "B", "2", "2"})
	assert.Contains(t, rows, []string{"2", "B", "C", "3", "5"})
}

func TestDescribeError(t *testing.T) {
	msg, ok := DescribeError("A", "Z", &service.NodeError{Role: "destination", Node: "Z", Err: pathfinding.ErrUnknownNode})
	require.True(t, ok)
	assert.Equal(t, "No such node: Z", msg)

	msg, ok = DescribeError("Q", "A", &service.NodeError{Role: "source", Node: "Q", Err: pathfinding.ErrUnknownNode})
	require.True(t, ok)
	assert.Equal(t, "No such node: Q", msg)

	msg, ok = DescribeError("A", "E", fmt.Errorf("query: %w", pathfinding.ErrNoPath))
	require.True(t, ok)
	assert.Equal(t, "No path exists from A to E", msg)

	_, ok = DescribeError("A", "B", errors.New("database is down"))
	assert.False(t, ok)
}
