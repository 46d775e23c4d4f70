// Package runstomp implements the runner minigame: the player jumps on a
// tap, and enemies running in from the right are stomped from above or
// cost a life on contact.
package runstomp

import (
	"math"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.RunStomp)

// Physics constants, per nominal frame.
const (
	GroundY     = 480.0
	playerX     = 150.0
	gravity     = 0.8
	jumpVel     = -18.0
	bounceVel   = -14.0
	spawnX      = 850.0
	despawnX    = -50.0
	contactDist = 50.0
	stompMargin = 10.0 // player must be this far above the enemy's center
)

type enemy struct {
	entity.Body
}

// Game holds the state of one round.
type Game struct {
	player   entity.Body
	grounded bool
	enemies  *entity.Store[enemy]
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{enemies: entity.NewStore[enemy](8)}
}

// Init puts the player on the ground with no enemies.
func (g *Game) Init(r registry.Round) {
	g.player = entity.Body{Pos: core.Vec{X: playerX, Y: GroundY}}
	g.grounded = true
	g.enemies.Clear()
}

// Player returns the player's position.
func (g *Game) Player() core.Vec {
	return g.player.Pos
}

// Grounded reports whether the player stands on the ground.
func (g *Game) Grounded() bool {
	return g.grounded
}

// Update applies gravity, the jump, spawning and enemy contact.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	ratio := entity.Ratio(dt)
	hard := r.Hard()

	g.player.Vel.Y += gravity * ratio
	g.player.Move(ratio)
	g.grounded = g.player.Pos.Y >= GroundY
	if g.grounded {
		g.player.Pos.Y = GroundY
		g.player.Vel.Y = 0
	}

	// The jump velocity takes effect from the next frame's move.
	if p.Tapped && g.grounded {
		g.player.Vel.Y = jumpVel
		g.grounded = false
		r.Play(audio.CueJump)
		r.Burst(g.player.Pos.X, GroundY+20, core.ColorWhite, 5, 0)
	}

	g.spawn(r)

	pp := g.player.Pos
	g.enemies.Each(func(_ int, e *enemy) {
		e.Move(ratio)
	})
	g.enemies.Prune(func(e *enemy) bool {
		if math.Abs(pp.X-e.Pos.X) < contactDist && math.Abs(pp.Y-e.Pos.Y) < contactDist {
			if g.player.Vel.Y > 0 && pp.Y < e.Pos.Y-stompMargin {
				g.player.Vel.Y = bounceVel
				if hard {
					r.AddScore(60)
				} else {
					r.AddScore(30)
				}
				r.Play(audio.CueHit)
				r.Burst(e.Pos.X, e.Pos.Y, core.ColorAmber, 15, '*')
			} else {
				r.LoseLife()
				r.Burst(pp.X, pp.Y, core.ColorDanger, 10, 0)
			}
			return false
		}
		return e.Pos.X >= despawnX
	})
}

func (g *Game) spawn(r registry.Round) {
	hard := r.Hard()
	mult := r.Multiplier()

	chance, minGap, speedUp := 0.03, 250.0, 2.0
	if hard {
		chance, minGap, speedUp = 0.05, 150.0, 4.0
	}
	if r.Rand().Float64() >= chance*mult {
		return
	}
	if last := g.enemies.Last(); last != nil && core.LogicalW-last.Pos.X <= minGap {
		return
	}
	g.enemies.Add(enemy{Body: entity.Body{
		Pos: core.Vec{X: spawnX, Y: GroundY},
		Vel: core.Vec{X: -(6 + mult*speedUp)},
	}})
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; surviving the timer is the goal.
func (g *Game) TimeoutPenalty() bool { return false }

// Draw renders the ground, the player and the enemies.
func (g *Game) Draw(c core.Canvas, hard bool) {
	c.FillRect(core.Box{X: 0, Y: GroundY + 30, W: core.LogicalW, H: core.LogicalH - GroundY - 30}, '=', core.ColorBrown)
	c.Glyph(g.player.Pos, '@', core.Accent(hard))
	g.enemies.Each(func(_ int, e *enemy) {
		c.Glyph(e.Pos, 'M', core.ColorDanger)
	})
}
