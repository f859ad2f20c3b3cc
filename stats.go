package main

import (
	"fmt"
	"time"
)

type Stats struct {
	Points   int
	Faces    int
	Vertices int
	Epsilon  float64

	ReadTime    time.Duration
	ComputeTime time.Duration
}

func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("points:   %d", s.Points),
		fmt.Sprintf("vertices: %d", s.Vertices),
		fmt.Sprintf("faces:    %d", s.Faces),
		fmt.Sprintf("epsilon:  %g", s.Epsilon),
		fmt.Sprintf("read:     %s", s.ReadTime.Round(time.Microsecond)),
		fmt.Sprintf("hull:     %s", s.ComputeTime.Round(time.Microsecond)),
	}
}
