// pkg/lanepath/network.go
package lanepath

import "fmt"

// Network is an immutable set of parallel lanes of equal conceptual length.
// Lanes are peers: an enemy's progress is meaningful on any of them.
type Network struct {
	lanes []*Lane
}

// NewNetwork builds a network from waypoint lists, one per lane.
// Lane switching needs at least two lanes.
func NewNetwork(laneWaypoints [][]Point) (*Network, error) {
	if len(laneWaypoints) == 0 {
		return nil, fmt.Errorf("network needs at least one lane")
	}
	n := &Network{}
	for i, wps := range laneWaypoints {
		lane, err := NewLane(wps)
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		n.lanes = append(n.lanes, lane)
	}
	return n, nil
}

// NumLanes returns the number of lanes in the network.
func (n *Network) NumLanes() int {
	return len(n.lanes)
}

// Lane returns the lane at the given index.
func (n *Network) Lane(i int) *Lane {
	return n.lanes[i]
}
