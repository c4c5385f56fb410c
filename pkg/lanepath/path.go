// pkg/lanepath/path.go
package lanepath

import (
	"fmt"
	"math"
)

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Dist returns the straight-line distance between two points.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lane is an ordered sequence of waypoints enemies travel along.
// Positions along the lane are addressed by normalized progress in [0, 1].
type Lane struct {
	waypoints []Point
	cumLen    []float64 // cumulative arc length up to each waypoint
	length    float64
}

// NewLane builds a lane from at least two waypoints.
func NewLane(waypoints []Point) (*Lane, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("lane needs at least 2 waypoints, got %d", len(waypoints))
	}
	l := &Lane{
		waypoints: append([]Point(nil), waypoints...),
		cumLen:    make([]float64, len(waypoints)),
	}
	for i := 1; i < len(waypoints); i++ {
		l.cumLen[i] = l.cumLen[i-1] + Dist(waypoints[i-1], waypoints[i])
	}
	l.length = l.cumLen[len(waypoints)-1]
	if l.length <= 0 {
		return nil, fmt.Errorf("lane has zero length")
	}
	return l, nil
}

// Length returns the total arc length of the lane.
func (l *Lane) Length() float64 {
	return l.length
}

// Waypoints returns the lane's waypoints.
func (l *Lane) Waypoints() []Point {
	return l.waypoints
}

// PositionAt linearly interpolates the world position at the given
// normalized progress. Progress outside [0, 1] is clamped.
func (l *Lane) PositionAt(progress float64) Point {
	if progress <= 0 {
		return l.waypoints[0]
	}
	if progress >= 1 {
		return l.waypoints[len(l.waypoints)-1]
	}
	target := progress * l.length
	// Find the bracketing waypoints for the target arc length.
	i := 1
	for i < len(l.cumLen) && l.cumLen[i] < target {
		i++
	}
	segStart := l.cumLen[i-1]
	segLen := l.cumLen[i] - segStart
	t := 0.0
	if segLen > 0 {
		t = (target - segStart) / segLen
	}
	a := l.waypoints[i-1]
	b := l.waypoints[i]
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
