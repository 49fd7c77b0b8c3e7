package game

import (
	"fmt"
	"sort"
	"time"

	"snake-duel/game/entity"
	"snake-duel/game/manager"
)

// Outcome names the leader by score. Equal top scores are a tie, never broken.
type Outcome struct {
	Tie    bool   `json:"tie"`
	Winner string `json:"winner,omitempty"`
	Score  int    `json:"score"`
}

func (o Outcome) String() string {
	if o.Tie {
		return fmt.Sprintf("tie at %d", o.Score)
	}
	return fmt.Sprintf("%s wins with %d", o.Winner, o.Score)
}

func outcomeOf(contestants []*contestant) Outcome {
	best := -1
	var leaders []string
	for _, c := range contestants {
		switch {
		case c.snake.Score > best:
			best = c.snake.Score
			leaders = []string{c.snake.Label}
		case c.snake.Score == best:
			leaders = append(leaders, c.snake.Label)
		}
	}

	if len(leaders) != 1 {
		return Outcome{Tie: true, Score: best}
	}
	return Outcome{Winner: leaders[0], Score: best}
}

// Report summarizes a match. Only turns in which a snake reached the food
// contribute to its per-turn figures.
type Report struct {
	UUID       string        `json:"uuid"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Turn       int           `json:"turn"`
	TotalTurns int           `json:"total_turns"`
	Complete   bool          `json:"complete"`
	Outcome    Outcome       `json:"outcome"`
	AgentStats []AgentReport `json:"agent_stats"`

	Session manager.SessionStats `json:"session"`
}

type AgentReport struct {
	Label         string  `json:"label"`
	Score         int     `json:"score"`
	TurnsRecorded int     `json:"turns_recorded"`
	AverageNodes  int     `json:"average_nodes"`
	MedianNodes   float64 `json:"median_nodes"`
	MinNodes      int     `json:"min_nodes"`
	MaxNodes      int     `json:"max_nodes"`
	AverageTimeMs float64 `json:"average_time_ms"`
	MaxTimeMs     float64 `json:"max_time_ms"`
}

func (g *Game) Report() Report {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := g.m
	r := Report{
		UUID:       m.UUID,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Turn:       m.turn,
		TotalTurns: g.cfg.TotalTurns,
		Complete:   m.complete,
		Outcome:    outcomeOf(m.contestants),
		AgentStats: make([]AgentReport, len(m.contestants)),
		Session:    g.stateMgr.Stats(),
	}
	for i, c := range m.contestants {
		r.AgentStats[i] = agentReport(c.snake)
	}
	return r
}

func agentReport(s *entity.Snake) AgentReport {
	history := s.History()
	avg := entity.Average(history)

	ar := AgentReport{
		Label:         s.Label,
		Score:         s.Score,
		TurnsRecorded: len(history),
		AverageNodes:  avg.NodesExplored,
		AverageTimeMs: avg.ComputationTime,
	}
	if len(history) == 0 {
		return ar
	}

	nodes := make([]float64, len(history))
	ar.MinNodes = history[0].NodesExplored
	for i, h := range history {
		nodes[i] = float64(h.NodesExplored)
		if h.NodesExplored < ar.MinNodes {
			ar.MinNodes = h.NodesExplored
		}
		if h.NodesExplored > ar.MaxNodes {
			ar.MaxNodes = h.NodesExplored
		}
		if h.ComputationTime > ar.MaxTimeMs {
			ar.MaxTimeMs = h.ComputationTime
		}
	}
	ar.MedianNodes = median(nodes)
	return ar
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	if len(values)%2 == 0 {
		return (values[len(values)/2-1] + values[len(values)/2]) / 2
	}
	return values[len(values)/2]
}
