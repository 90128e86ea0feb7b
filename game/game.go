package game

import (
	"fmt"
	"log/slog"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// TickResult reports what happened during a single Tick.
type TickResult struct {
	AteApple bool
	Collided bool
}

// Game is the whole mutable state of one session. It is owned by the main
// loop and never shared.
type Game struct {
	Config Config
	Grid   types.Grid
	Snake  *entity.Snake
	Apple  *entity.Apple
	Ticks  int
	Stats  SessionStats

	roundStart time.Time
	roundTicks int
	now        func() time.Time

	rng          *rand.Rand
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	log          *slog.Logger
}

// NewGame validates cfg and places the snake at the center of the board
// and the apple on a random free cell. A nil rng is seeded from the clock,
// a nil logger falls back to slog.Default.
func NewGame(cfg Config, rng *rand.Rand, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if logger == nil {
		logger = slog.Default()
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Config:       cfg,
		Grid:         grid,
		Snake:        entity.NewSnake(grid.Center(), cfg.SnakeColor),
		rng:          rng,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		collisionMgr: collisionMgr,
		log:          logger,
		now:          time.Now,
	}
	g.roundStart = g.now()

	pos, err := g.foodMgr.GenerateFood(g.Snake.Positions())
	if err != nil {
		return nil, fmt.Errorf("place apple: %w", err)
	}
	g.Apple = entity.NewApple(pos, cfg.AppleColor)

	return g, nil
}

// Steer forwards a direction request to the snake; it takes effect on the
// next Tick.
func (g *Game) Steer(dir types.Direction) bool {
	return g.Snake.Steer(dir)
}

// Tick advances the game by one step: buffered direction, movement, apple
// pickup, then self-collision.
func (g *Game) Tick() TickResult {
	var res TickResult
	g.Ticks++
	g.roundTicks++

	g.Snake.UpdateDirection()
	g.Snake.Move(g.Grid)

	if g.collisionMgr.IsFoodCollision(g.Snake.Head(), g.Apple) {
		res.AteApple = true
		g.Snake.Grow()
		g.log.Debug("apple eaten",
			slog.Int("length", g.Snake.Length),
			slog.Int("tick", g.Ticks))

		if err := g.relocateApple(); err != nil {
			// The snake covers the whole board; start over.
			g.log.Info("board filled", slog.Int("length", g.Snake.Length))
			g.reset()
			res.Collided = true
			return res
		}
	}

	if g.collisionMgr.IsSelfCollision(g.Snake) {
		res.Collided = true
		g.log.Info("snake hit itself",
			slog.Int("length", g.Snake.Length),
			slog.Int("tick", g.Ticks),
			slog.Int("best", max(g.Snake.Length, g.Stats.MaxLength())))
		g.reset()
	}

	return res
}

// Entities returns everything that has to be drawn, bottom layer first.
func (g *Game) Entities() []entity.Drawable {
	return []entity.Drawable{g.Snake, g.Apple}
}

// reset puts the snake back at the center with a random heading and makes
// sure it does not land on the apple.
func (g *Game) reset() {
	end := g.now()
	g.Stats.AddRound(RoundRecord{
		StartTime: g.roundStart,
		EndTime:   end,
		Length:    g.Snake.Length,
		Ticks:     g.roundTicks,
	})
	g.roundStart = end
	g.roundTicks = 0

	dir := types.Directions[g.rng.Intn(len(types.Directions))]
	g.Snake.Reset(dir)

	if g.Snake.Occupies(g.Apple.Position) {
		if err := g.relocateApple(); err != nil {
			// Unreachable with a validated config: a one-cell snake always
			// leaves a free cell.
			g.log.Error("relocate apple after reset", slog.Any("err", err))
		}
	}
}

func (g *Game) relocateApple() error {
	pos, err := g.foodMgr.GenerateFood(g.Snake.Positions())
	if err != nil {
		return err
	}
	g.Apple.Position = pos
	return nil
}
