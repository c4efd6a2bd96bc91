package pathfinding_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanshika/campusroute/internal/domain"
	"github.com/vanshika/campusroute/internal/pathfinding"
)

func ExampleSolve() {
	g := pathfinding.Build([]domain.Edge{
		{Source: "Gate", Destination: "Library", Distance: 2},
		{Source: "Library", Destination: "Cafeteria", Distance: 3},
		{Source: "Gate", Destination: "Cafeteria", Distance: 10},
	})

	info, err := pathfinding.Solve(g, "Gate").Lookup("Cafeteria")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(info.Distance)
	fmt.Println(strings.Join(info.Path, " -> "))
	// Output:
	// 5
	// Gate -> Library -> Cafeteria
}

func ExampleResult_Lookup() {
	g := pathfinding.Build([]domain.Edge{
		{Source: "A", Destination: "B", Distance: 1},
		{Source: "C", Destination: "D", Distance: 1},
	})
	res := pathfinding.Solve(g, "A")

	_, err := res.Lookup("C")
	fmt.Println(errors.Is(err, pathfinding.ErrNoPath))
	_, err = res.Lookup("Z")
	fmt.Println(errors.Is(err, pathfinding.ErrUnknownNode))
	// Output:
	// true
	// true
}
