package entity

import (
	"snake-duel/game/types"

	"golang.org/x/exp/slices"
)

type Color struct {
	R, G, B uint8
}

// Snake is one competitor. Body[0] is the head.
//
// The snake only carries intrinsic state; the path it is following and
// whether it has reached the current food belong to the turn controller.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
	Label     string
	Color     Color

	lastSearch TurnMetrics
	history    []TurnMetrics
}

func NewSnake(startPos types.Point, dir types.Direction, label string, color Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		Score:     0,
		Label:     label,
		Color:     color,
		history:   make([]TurnMetrics, 0),
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Occupies reports whether any body segment, head included, is at pos.
func (s *Snake) Occupies(pos types.Point) bool {
	return slices.Contains(s.Body, pos)
}

// Advance moves the head onto next and drops the tail. Length is unchanged.
func (s *Snake) Advance(next types.Point) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = next
}

// GrowTo moves the head onto next keeping the tail, and scores one food.
func (s *Snake) GrowTo(next types.Point) {
	s.Body = slices.Insert(s.Body, 0, next)
	s.Score++
}

// SelfCollided reports whether the head overlaps another segment.
func (s *Snake) SelfCollided() bool {
	return slices.Contains(s.Body[1:], s.Head())
}

// SetLastSearch stores the metrics of the most recent path search.
func (s *Snake) SetLastSearch(m TurnMetrics) {
	s.lastSearch = m
}

func (s *Snake) LastSearch() TurnMetrics {
	return s.lastSearch
}

// RecordTurnMetrics appends the last search metrics to the per-turn history.
func (s *Snake) RecordTurnMetrics() {
	s.history = append(s.history, s.lastSearch)
}

// History returns a copy of the per-turn metrics.
func (s *Snake) History() []TurnMetrics {
	return slices.Clone(s.history)
}

func (s *Snake) AverageMetrics() TurnMetrics {
	return Average(s.history)
}

// Clone returns a deep copy safe to hand to readers.
func (s *Snake) Clone() *Snake {
	c := *s
	c.Body = slices.Clone(s.Body)
	c.history = slices.Clone(s.history)
	return &c
}
