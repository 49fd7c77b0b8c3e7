package game

import (
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/types"

	"golang.org/x/exp/slices"
)

// AgentView is a read-only copy of one snake and its turn state.
type AgentView struct {
	Label      string
	Color      entity.Color
	Body       []types.Point
	Direction  types.Direction
	Score      int
	LastSearch entity.TurnMetrics
	Average    entity.TurnMetrics
	History    []entity.TurnMetrics
	Path       []types.Point // remaining cells of the current path
	Phase      Phase
}

func (a AgentView) Head() types.Point {
	return a.Body[0]
}

// Snapshot is everything the presentation layer reads once per tick.
// It shares no memory with the running game.
type Snapshot struct {
	MatchID    string
	Grid       types.Grid
	Agents     []AgentView
	Food       types.Point
	Turn       int
	TotalTurns int
	Status     Status
	Complete   bool
	Outcome    Outcome
	Session    manager.SessionStats
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := g.m
	agents := make([]AgentView, len(m.contestants))
	for i, c := range m.contestants {
		s := c.snake.Clone()
		agents[i] = AgentView{
			Label:      s.Label,
			Color:      s.Color,
			Body:       s.Body,
			Direction:  s.Direction,
			Score:      s.Score,
			LastSearch: s.LastSearch(),
			Average:    s.AverageMetrics(),
			History:    s.History(),
			Path:       slices.Clone(c.path),
			Phase:      c.phase(),
		}
	}

	return Snapshot{
		MatchID:    m.UUID,
		Grid:       g.Grid,
		Agents:     agents,
		Food:       m.food,
		Turn:       m.turn,
		TotalTurns: g.cfg.TotalTurns,
		Status:     statusOf(m),
		Complete:   m.complete,
		Outcome:    outcomeOf(m.contestants),
		Session:    g.stateMgr.Stats(),
	}
}
