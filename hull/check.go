package hull

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Contains reports whether p lies on or behind the plane of every face.
func (h *Hull) Contains(p r3.Vector) bool {
	for _, face := range h.Faces {
		if face.Distance(h.Points, p) > h.Epsilon {
			return false
		}
	}

	return true
}

// Check verifies that the faces form a closed surface where every directed
// edge has exactly one reversed partner, and that no point lies in front of
// any face.
func (h *Hull) Check() error {
	if len(h.Faces) < 4 {
		return fmt.Errorf("hull: only %d faces", len(h.Faces))
	}

	count := map[Edge]int{}
	for _, face := range h.Faces {
		for _, edge := range face.Edges() {
			count[edge]++
		}
	}

	for edge, n := range count {
		if n != 1 {
			return fmt.Errorf("hull: edge %d->%d used by %d faces", edge.From, edge.To, n)
		}

		if count[edge.Reverse()] != 1 {
			return fmt.Errorf("hull: edge %d->%d has no reverse", edge.From, edge.To)
		}
	}

	for idx, face := range h.Faces {
		for i, p := range h.Points {
			if d := face.Distance(h.Points, p); d > h.Epsilon {
				return fmt.Errorf("hull: point %d is %g in front of face %d (%d, %d, %d)",
					i, d, idx, face.A, face.B, face.C)
			}
		}
	}

	return nil
}
