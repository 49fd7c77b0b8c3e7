package game

import (
	"fmt"
	"sync"
	"time"

	"snake-duel/config"
	"snake-duel/game/entity"
	"snake-duel/game/manager"
	"snake-duel/game/search"
	"snake-duel/game/types"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Phase is where a single snake stands within the current turn.
type Phase int

const (
	AwaitingPath Phase = iota // no path in hand, food not reached
	Advancing                 // walking a precomputed path
	ReachedFood               // done for this turn
)

func (p Phase) String() string {
	switch p {
	case AwaitingPath:
		return "awaiting-path"
	case Advancing:
		return "advancing"
	case ReachedFood:
		return "reached-food"
	default:
		return "unknown"
	}
}

// Status is the state of the match as a whole.
type Status int

const (
	InTurn       Status = iota
	TurnComplete        // both snakes fed, next food not placed yet
	GameComplete        // turn budget spent, state frozen
)

func (s Status) String() string {
	switch s {
	case InTurn:
		return "in-turn"
	case TurnComplete:
		return "turn-complete"
	case GameComplete:
		return "game-complete"
	default:
		return "unknown"
	}
}

// contestant is the controller-owned state of one snake for the current turn.
type contestant struct {
	snake   *entity.Snake
	policy  search.CostPolicy
	path    []types.Point
	reached bool
}

func (c *contestant) phase() Phase {
	switch {
	case c.reached:
		return ReachedFood
	case len(c.path) > 0:
		return Advancing
	default:
		return AwaitingPath
	}
}

// match is everything Reset replaces.
type match struct {
	UUID        string
	StartTime   time.Time
	EndTime     time.Time
	contestants []*contestant
	food        types.Point
	turn        int
	complete    bool
}

// Game is the turn controller. All exported methods are safe to call from
// the render loop and a driver goroutine; each one runs atomically.
type Game struct {
	Grid types.Grid

	mu           sync.Mutex
	cfg          config.Config
	logger       log.Logger
	collisionMgr *manager.CollisionManager
	popManager   *manager.PopulationManager
	foodManager  *manager.FoodManager
	stateMgr     *manager.StateManager
	m            *match
}

// NewGame builds a game from cfg and places the first food. A nil logger
// discards all output.
func NewGame(cfg config.Config, logger log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	grid := types.NewSquareGrid(cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		logger:       logger,
		collisionMgr: collisionMgr,
		popManager:   manager.NewPopulationManager(grid, collisionMgr),
		foodManager:  manager.NewFoodManager(grid, rng, cfg.MinFoodDistance, cfg.MaxDistanceSkew),
		stateMgr:     manager.NewStateManager(),
	}

	m, err := g.newMatch()
	if err != nil {
		return nil, err
	}
	g.m = m

	level.Info(g.logger).Log("msg", "game created", "match", m.UUID, "seed", seed,
		"grid", cfg.GridSize, "turns", cfg.TotalTurns)
	return g, nil
}

// newMatch spawns fresh snakes and places the first food. It does not touch g.m.
func (g *Game) newMatch() (*match, error) {
	competitors, err := g.popManager.InitializePopulation()
	if err != nil {
		return nil, err
	}

	m := &match{
		UUID:        uuid.New().String(),
		StartTime:   time.Now(),
		contestants: make([]*contestant, len(competitors)),
	}
	for i, c := range competitors {
		m.contestants[i] = &contestant{snake: c.Snake, policy: c.Policy}
	}

	if err := g.startNewTurn(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset replaces the whole match: fresh snakes at their starts, turn 1, new food.
// On error the running match is left untouched.
func (g *Game) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := g.newMatch()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	g.m = m

	level.Info(g.logger).Log("msg", "game reset", "match", m.UUID)
	return nil
}

// Tick moves every snake at most one cell. Snakes act in line-up order, A* first.
// Once the match is complete Tick does nothing.
func (g *Game) Tick() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	m := g.m
	if m.complete {
		return nil
	}

	for _, c := range m.contestants {
		g.step(m, c)
	}

	if !allReached(m) {
		return nil
	}

	if m.turn >= g.cfg.TotalTurns {
		m.complete = true
		m.EndTime = time.Now()
		g.stateMgr.Record(recordOf(m))
		level.Info(g.logger).Log("msg", "game complete", "match", m.UUID,
			"outcome", outcomeOf(m.contestants), "turns", m.turn)
		return nil
	}

	if err := g.startNewTurn(m); err != nil {
		return fmt.Errorf("turn %d: %w", m.turn+1, err)
	}
	return nil
}

func (g *Game) step(m *match, c *contestant) {
	if c.reached {
		return
	}

	if len(c.path) == 0 {
		res := search.FindPath(g.Grid, c.snake.Head(), m.food, c.policy)
		c.snake.SetLastSearch(entity.TurnMetrics{
			NodesExplored:   res.NodesExplored,
			ComputationTime: res.Millis(),
		})
		c.path = res.Path

		if !res.Found() {
			level.Warn(g.logger).Log("msg", "no path to food, retrying next tick",
				"snake", c.snake.Label, "head", fmtPoint(c.snake.Head()), "food", fmtPoint(m.food))
			return
		}
		level.Debug(g.logger).Log("msg", "path computed", "snake", c.snake.Label,
			"length", len(res.Path), "nodes", res.NodesExplored, "elapsed", res.Elapsed)
	}

	next := c.path[0]
	c.path = c.path[1:]
	c.snake.Direction = types.DirectionBetween(c.snake.Head(), next)

	if g.collisionMgr.IsFoodCollision(next, m.food) {
		c.snake.GrowTo(next)
		c.reached = true
		c.path = nil
		c.snake.RecordTurnMetrics()
		level.Debug(g.logger).Log("msg", "food reached", "snake", c.snake.Label,
			"turn", m.turn, "score", c.snake.Score)
	} else {
		c.snake.Advance(next)
	}

	g.checkBody(c.snake)
}

// checkBody logs body diagnostics. Paths ignore bodies, so a head crossing its
// own trail is expected and only noted; the other faults are programming errors.
func (g *Game) checkBody(s *entity.Snake) {
	selfCollided, outOfBounds, lengthMismatch := g.collisionMgr.CheckBody(s)
	if selfCollided {
		level.Debug(g.logger).Log("msg", "head crossed own body", "snake", s.Label,
			"head", fmtPoint(s.Head()))
	}
	if outOfBounds || lengthMismatch {
		level.Error(g.logger).Log("msg", "snake body invariant violated", "snake", s.Label,
			"out_of_bounds", outOfBounds, "length", len(s.Body), "score", s.Score)
	}
}

// startNewTurn places food for the next turn and clears per-turn state.
// m is left unchanged when placement fails.
func (g *Game) startNewTurn(m *match) error {
	snakes := make([]*entity.Snake, len(m.contestants))
	for i, c := range m.contestants {
		snakes[i] = c.snake
	}

	food, err := g.foodManager.PlaceFood(g.collisionMgr.OccupiedCells(snakes),
		snakes[0].Head(), snakes[1].Head())
	if err != nil {
		return err
	}

	m.food = food
	m.turn++
	for _, c := range m.contestants {
		c.path = nil
		c.reached = false
	}

	level.Debug(g.logger).Log("msg", "turn started", "match", m.UUID, "turn", m.turn,
		"food", fmtPoint(food), "tier", g.foodManager.LastTier())
	return nil
}

func recordOf(m *match) manager.MatchRecord {
	rec := manager.MatchRecord{
		MatchID: m.UUID,
		Scores:  make(map[string]int, len(m.contestants)),
		Winner:  outcomeOf(m.contestants).Winner,
	}
	for _, c := range m.contestants {
		rec.Scores[c.snake.Label] = c.snake.Score
	}
	return rec
}

func allReached(m *match) bool {
	for _, c := range m.contestants {
		if !c.reached {
			return false
		}
	}
	return true
}

// Status reports the match-level state.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return statusOf(g.m)
}

func statusOf(m *match) Status {
	switch {
	case m.complete:
		return GameComplete
	case allReached(m):
		return TurnComplete
	default:
		return InTurn
	}
}

// Complete reports whether the turn budget has been spent.
func (g *Game) Complete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.complete
}

// History lists every match finished since the game was created, resets included.
func (g *Game) History() []manager.MatchRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateMgr.History()
}

// Config returns the settings the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

func fmtPoint(p types.Point) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
