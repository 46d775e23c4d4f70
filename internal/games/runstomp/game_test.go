package runstomp

import (
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry/registrytest"
)

// quiet returns a round whose multiplier suppresses spawning.
func quiet(hard bool) *registrytest.Round {
	return registrytest.New(hard, 0, 1)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	r := quiet(false)
	g := New()
	g.Init(r)

	g.Update(r, entity.FrameMs, core.Tap(0, 0))
	if g.Grounded() {
		t.Fatal("tap on the ground should start a jump")
	}
	if !r.Played(audio.CueJump) {
		t.Error("jump should play the jump cue")
	}
	vy := g.player.Vel.Y

	g.Update(r, entity.FrameMs, core.Tap(0, 0))
	if g.player.Vel.Y <= vy-1 {
		t.Error("mid-air tap should not jump again")
	}
}

func TestJumpRisesNextFrame(t *testing.T) {
	r := quiet(false)
	g := New()
	g.Init(r)

	g.Update(r, entity.FrameMs, core.Tap(0, 0))
	if g.Player().Y != GroundY {
		t.Errorf("Player().Y = %v on the tap frame, expected %v", g.Player().Y, GroundY)
	}
	if g.player.Vel.Y != jumpVel {
		t.Errorf("Vel.Y = %v, expected %v", g.player.Vel.Y, jumpVel)
	}

	g.Update(r, entity.FrameMs, core.PointerSignal{})
	expected := GroundY + jumpVel + gravity
	if y := g.Player().Y; y < expected-1e-9 || y > expected+1e-9 {
		t.Errorf("Player().Y = %v after one frame, expected %v", y, expected)
	}
}

func TestLandsOnGround(t *testing.T) {
	r := quiet(false)
	g := New()
	g.Init(r)
	g.Update(r, entity.FrameMs, core.Tap(0, 0))

	for i := 0; i < 120; i++ {
		g.Update(r, entity.FrameMs, core.PointerSignal{})
	}

	if !g.Grounded() || g.Player().Y != GroundY {
		t.Errorf("Player() = %v, expected back on ground at %v", g.Player(), GroundY)
	}
}

func TestEnemyContact(t *testing.T) {
	tests := []struct {
		name      string
		hard      bool
		playerY   float64
		playerVY  float64
		wantScore int
		wantLives int
	}{
		{"stomp casual", false, GroundY - 40, 5, 30, 0},
		{"stomp hard", true, GroundY - 40, 5, 60, 0},
		{"rising hits", false, GroundY - 40, -5, 0, 1},
		{"side hit", false, GroundY, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := quiet(tc.hard)
			g := New()
			g.Init(r)
			g.player.Pos.Y = tc.playerY
			g.player.Vel.Y = tc.playerVY
			g.grounded = false
			g.enemies.Add(enemy{Body: entity.Body{Pos: core.Vec{X: playerX + 10, Y: GroundY}}})

			g.Update(r, 1, core.PointerSignal{})

			if r.Score != tc.wantScore {
				t.Errorf("Score = %d, expected %d", r.Score, tc.wantScore)
			}
			if r.LivesLost != tc.wantLives {
				t.Errorf("LivesLost = %d, expected %d", r.LivesLost, tc.wantLives)
			}
			if g.enemies.Len() != 0 {
				t.Error("contacted enemy should be removed")
			}
		})
	}
}

func TestStompBounces(t *testing.T) {
	r := quiet(false)
	g := New()
	g.Init(r)
	g.player.Pos.Y = GroundY - 40
	g.player.Vel.Y = 5
	g.grounded = false
	g.enemies.Add(enemy{Body: entity.Body{Pos: core.Vec{X: playerX, Y: GroundY}}})

	g.Update(r, 1, core.PointerSignal{})

	if g.player.Vel.Y != bounceVel {
		t.Errorf("Vel.Y = %v, expected %v", g.player.Vel.Y, bounceVel)
	}
}

func TestEnemyDespawns(t *testing.T) {
	r := quiet(false)
	g := New()
	g.Init(r)
	g.enemies.Add(enemy{Body: entity.Body{Pos: core.Vec{X: -45, Y: GroundY}, Vel: core.Vec{X: -10}}})

	g.Update(r, entity.FrameMs, core.PointerSignal{})

	if g.enemies.Len() != 0 {
		t.Error("enemy past the left edge should be removed")
	}
	if r.LivesLost != 0 {
		t.Error("a passed enemy costs nothing")
	}
}

func TestSpawnSpacing(t *testing.T) {
	r := registrytest.New(false, 40, 3) // chance*mult > 1, always rolls
	g := New()
	g.Init(r)

	g.Update(r, 1, core.PointerSignal{})
	g.Update(r, 1, core.PointerSignal{})

	if g.enemies.Len() != 1 {
		t.Errorf("enemies = %d, expected 1 while the last one is near the edge", g.enemies.Len())
	}
}
