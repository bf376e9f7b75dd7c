package game

import "testing"

func TestNeighborsOrder(t *testing.T) {
	got := Neighbors(Point{X: 5, Y: 5}, 10, 10)
	want := []Point{{X: 5, Y: 4}, {X: 5, Y: 6}, {X: 4, Y: 5}, {X: 6, Y: 5}}

	if len(got) != len(want) {
		t.Fatalf("Neighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Neighbors[%d] = %v, want %v (order is up, down, left, right)", i, got[i], want[i])
		}
	}
}

func TestNeighborsClippedAtCorner(t *testing.T) {
	got := Neighbors(Point{X: 0, Y: 0}, 5, 5)
	want := []Point{{X: 0, Y: 1}, {X: 1, Y: 0}}

	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Neighbors at corner = %v, want %v", got, want)
	}
}

func TestDistances(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 4, Y: 6}

	if got := Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
	if got := Euclidean(a, b); got != 5 {
		t.Errorf("Euclidean = %v, want 5", got)
	}
}

func TestDirectionTo(t *testing.T) {
	from := Point{X: 3, Y: 3}

	cases := []struct {
		to   Point
		want Direction
	}{
		{Point{X: 3, Y: 2}, Up},
		{Point{X: 3, Y: 4}, Down},
		{Point{X: 2, Y: 3}, Left},
		{Point{X: 4, Y: 3}, Right},
	}
	for _, c := range cases {
		if got := DirectionTo(from, c.to); got != c.want {
			t.Errorf("DirectionTo(%v, %v) = %v, want %v", from, c.to, got, c.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	if Up.Opposite() != Down || Left.Opposite() != Right {
		t.Error("Opposite does not mirror the axis directions")
	}
	if !(Direction{}).IsZero() || Up.IsZero() {
		t.Error("IsZero misclassifies directions")
	}
}

func TestCloneIsDeep(t *testing.T) {
	state := &GameState{
		Width:  5,
		Height: 5,
		Body:   []Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:   Point{X: 4, Y: 4},
		Dir:    Right,
	}

	clone := state.Clone()
	clone.Body[0] = Point{X: 0, Y: 0}

	if state.Body[0] != (Point{X: 2, Y: 2}) {
		t.Error("mutating the clone's body changed the original")
	}
}
