package physics

import (
	"math/rand"
	"testing"

	"github.com/automoto/pixelplat/level"
	"github.com/automoto/pixelplat/pixelart"
)

var block = pixelart.NewDefinition("block", []string{"X"}, map[byte]pixelart.Ink{'X': pixelart.Paint("ground")})

var testParams = Params{
	Gravity:       0.5,
	JumpPower:     8,
	MoveSpeed:     2,
	HeadBumpSpeed: 0.5,
	FallMargin:    2,
}

// flatLevel is 20 tiles of ground with a pit at columns 10 and 11.
func flatLevel(t *testing.T) *level.Level {
	t.Helper()
	b := level.NewBuilder(20, 240, 16)
	b.AddTileBlock(0, 1, 10, 1, "ground", block, true)
	b.AddTileBlock(12, 1, 8, 1, "ground", block, true)
	b.SetSpawn(48, 208)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return lvl
}

func TestStandingStaysGrounded(t *testing.T) {
	r := NewResolver(flatLevel(t), testParams)
	a := NewActor(48, 208, 16)

	for i := 0; i < 120; i++ {
		if ev := r.Step(a, Intent{}); ev != 0 {
			t.Fatalf("tick %d: unexpected events %v", i, ev)
		}
		if a.State != Grounded || a.Y != 208 || a.VY != 0 {
			t.Fatalf("tick %d: state=%v y=%v vy=%v", i, a.State, a.Y, a.VY)
		}
	}
}

func TestJumpArc(t *testing.T) {
	r := NewResolver(flatLevel(t), testParams)
	a := NewActor(48, 208, 16)

	ev := r.Step(a, Intent{Jump: true})
	if !ev.Has(Jumped) {
		t.Fatalf("expected Jumped, got %v", ev)
	}
	// Gravity applies on the jump tick.
	if a.VY != -7.5 || a.Y != 200.5 || a.State != Rising {
		t.Fatalf("after jump tick: y=%v vy=%v state=%v", a.Y, a.VY, a.State)
	}

	// Holding jump in the air does nothing.
	for tick := 2; tick <= 16; tick++ {
		if ev := r.Step(a, Intent{Jump: true}); ev.Has(Jumped) {
			t.Fatalf("tick %d: jumped while airborne", tick)
		}
	}
	if a.VY != 0 || a.Y != 148 {
		t.Fatalf("peak at tick 16: y=%v vy=%v, expected y=148 vy=0", a.Y, a.VY)
	}

	landedAt := 0
	for tick := 17; tick <= 40 && landedAt == 0; tick++ {
		if r.Step(a, Intent{}).Has(Landed) {
			landedAt = tick
		}
	}
	if landedAt != 31 {
		t.Errorf("landed at tick %d, expected 31", landedAt)
	}
	if a.Y != 208 || a.VY != 0 || a.State != Grounded {
		t.Errorf("after landing: y=%v vy=%v state=%v", a.Y, a.VY, a.State)
	}
}

func TestHorizontalBlock(t *testing.T) {
	// 20px tiles put the wall's left edge at x=100.
	b := level.NewBuilder(20, 240, 20)
	b.AddTileBlock(0, 1, 20, 1, "ground", block, true)
	b.AddTileBlock(5, 2, 1, 1, "wall", block, true)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	r := NewResolver(lvl, testParams)
	a := NewActor(80, 204, 16)

	var blocked bool
	for i := 0; i < 5; i++ {
		ev := r.Step(a, Intent{Right: true})
		if ev.Has(BlockedX) {
			blocked = true
			if a.VX != 0 {
				t.Errorf("VX = %v after block, expected 0", a.VX)
			}
		} else if a.VX != 2 {
			t.Errorf("VX = %v while free, expected move speed", a.VX)
		}
	}
	if !blocked {
		t.Fatal("expected BlockedX")
	}
	if a.X != 84 {
		t.Errorf("X = %v, expected 100 - 16 = 84", a.X)
	}
	if a.State != Grounded {
		t.Errorf("state = %v, expected grounded", a.State)
	}

	for i := 0; i < 3; i++ {
		r.Step(a, Intent{Left: true})
	}
	if a.X != 78 {
		t.Errorf("X = %v after walking left, expected 78", a.X)
	}
}

func TestHeadBump(t *testing.T) {
	b := level.NewBuilder(20, 240, 16)
	b.AddTileBlock(0, 1, 20, 1, "ground", block, true)
	b.AddTileBlock(3, 5, 1, 1, "brick", block, true) // 160..176
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	r := NewResolver(lvl, testParams)
	a := NewActor(48, 208, 16)

	r.Step(a, Intent{Jump: true})
	bumped := false
	for i := 0; i < 20 && !bumped; i++ {
		if r.Step(a, Intent{}).Has(HeadBumped) {
			bumped = true
		}
	}
	if !bumped {
		t.Fatal("expected HeadBumped")
	}
	if a.Y != 176 || a.VY != 0.5 || a.State != Falling {
		t.Errorf("after bump: y=%v vy=%v state=%v, expected y=176 vy=0.5 falling", a.Y, a.VY, a.State)
	}
}

func TestWalkOffLedge(t *testing.T) {
	r := NewResolver(flatLevel(t), testParams)
	a := NewActor(140, 208, 16)

	// Walk right until the whole body is past the ground edge at 160.
	for a.X < 160 {
		r.Step(a, Intent{Right: true})
		if a.X < 160 && a.State != Grounded {
			t.Fatalf("x=%v: fell while still over the ground", a.X)
		}
	}
	r.Step(a, Intent{})
	if a.State != Falling {
		t.Errorf("state = %v over the pit, expected falling", a.State)
	}
}

func TestFallRespawn(t *testing.T) {
	r := NewResolver(flatLevel(t), testParams)
	a := NewActor(48, 208, 16)
	a.X = 164 // Over the pit

	var respawned bool
	for i := 0; i < 200 && !respawned; i++ {
		ev := r.Step(a, Intent{})
		respawned = ev.Has(Respawned)
		if !respawned && a.Y > 240+32 {
			t.Fatalf("y=%v past the fall threshold without respawn", a.Y)
		}
	}
	if !respawned {
		t.Fatal("expected Respawned")
	}
	if a.X != 48 || a.Y != 208 || a.VX != 0 || a.VY != 0 || a.State != Grounded {
		t.Errorf("after respawn: %+v", *a)
	}
}

func TestWorldClamp(t *testing.T) {
	r := NewResolver(flatLevel(t), testParams)
	a := NewActor(0, 208, 16)
	r.Step(a, Intent{Left: true})
	if a.X != 0 {
		t.Errorf("X = %v, expected clamp at 0", a.X)
	}

	a.X = 320 - 16
	r.Step(a, Intent{Right: true})
	if a.X != 304 {
		t.Errorf("X = %v, expected clamp at 304", a.X)
	}
}

// A random walk over a level without ambiguous corners never leaves the
// actor inside a collidable tile, and Grounded always means VY == 0.
func TestRandomWalkInvariants(t *testing.T) {
	b := level.NewBuilder(40, 240, 16)
	b.AddTileBlock(0, 1, 15, 1, "ground", block, true)
	b.AddTileBlock(18, 1, 22, 1, "ground", block, true)
	b.AddTileBlock(6, 5, 3, 1, "brick", block, true)
	b.AddTileBlock(24, 2, 2, 2, "pipe", block, true)
	b.AddTileBlock(32, 2, 1, 4, "column", block, true)
	b.SetSpawn(48, 208)
	lvl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	r := NewResolver(lvl, testParams)
	a := NewActor(48, 208, 16)
	rng := rand.New(rand.NewSource(42))

	in := Intent{}
	for tick := 0; tick < 20000; tick++ {
		if tick%15 == 0 {
			in = Intent{Left: rng.Intn(4) == 0, Right: rng.Intn(2) == 0, Jump: rng.Intn(3) == 0}
		}
		r.Step(a, in)

		if a.State == Grounded && a.VY != 0 {
			t.Fatalf("tick %d: grounded with vy=%v", tick, a.VY)
		}
		if tile := lvl.FindSolid(a.Rect(), nil); tile != nil {
			t.Fatalf("tick %d: actor %v overlaps %s %v", tick, a.Rect(), tile.Kind, tile.Rect)
		}
		if a.X < 0 || a.X > lvl.Width-a.W {
			t.Fatalf("tick %d: x=%v outside world", tick, a.X)
		}
	}
}

func TestEventsString(t *testing.T) {
	if got := (Jumped | Landed).String(); got != "jumped|landed" {
		t.Errorf("String() = %q", got)
	}
	if got := Events(0).String(); got != "none" {
		t.Errorf("String() = %q", got)
	}
}
