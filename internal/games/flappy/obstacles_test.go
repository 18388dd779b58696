package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestStream(seed int64) *ObstacleStream {
	return NewObstacleStream(config.DefaultFlappyConfig(), rand.New(rand.NewSource(seed)))
}

func TestPlaceWithinTierRanges(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for _, tier := range config.Tiers() {
		ranges := cfg.Tiers[tier]
		t.Run(string(tier), func(t *testing.T) {
			for seed := int64(0); seed < 200; seed++ {
				rng := rand.New(rand.NewSource(seed))
				p := Place(1000, ranges, cfg.World.Height, cfg.Obstacles.Margin, rng)

				if !ranges.HorizontalDistance.Contains(p.Offset) {
					t.Fatalf("seed %d: offset %d outside %+v", seed, p.Offset, ranges.HorizontalDistance)
				}
				if !ranges.VerticalGap.Contains(p.Gap) {
					t.Fatalf("seed %d: gap %d outside %+v", seed, p.Gap, ranges.VerticalGap)
				}
				if p.X != 1000+float64(p.Offset) {
					t.Fatalf("seed %d: X = %f, expected rightmost + offset", seed, p.X)
				}
				if p.UpperY < 20 || p.LowerY() > cfg.World.Height-20 {
					t.Fatalf("seed %d: gap [%f, %f] breaks the 20 unit margin", seed, p.UpperY, p.LowerY())
				}
			}
		})
	}
}

func TestPlaceReachesRangeBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ranges := cfg.Tiers[config.TierHard]
	rng := rand.New(rand.NewSource(7))

	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		p := Place(0, ranges, cfg.World.Height, cfg.Obstacles.Margin, rng)
		seenMin = seenMin || p.Offset == ranges.HorizontalDistance.Min
		seenMax = seenMax || p.Offset == ranges.HorizontalDistance.Max
	}
	if !seenMin || !seenMax {
		t.Errorf("inclusive bounds not reached: min %v, max %v", seenMin, seenMax)
	}
}

func TestPlaceIsReproducible(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	ranges := cfg.Tiers[config.TierNormal]

	a := Place(420, ranges, cfg.World.Height, cfg.Obstacles.Margin, rand.New(rand.NewSource(99)))
	b := Place(420, ranges, cfg.World.Height, cfg.Obstacles.Margin, rand.New(rand.NewSource(99)))
	if a != b {
		t.Errorf("same inputs gave different placements: %+v vs %+v", a, b)
	}
}

func TestStreamLayout(t *testing.T) {
	s := newTestStream(1)
	hard := config.DefaultFlappyConfig().Tiers[config.TierHard]
	s.Layout(hard)

	pipes := s.Pipes()
	if len(pipes) != 8 {
		t.Fatalf("pool has %d pipes, expected 8", len(pipes))
	}

	prevX := 0.0
	for i := 0; i < len(pipes); i += 2 {
		upper, lower := pipes[i], pipes[i+1]
		if upper.Role != RoleUpper || lower.Role != RoleLower {
			t.Errorf("pair %d roles = %v/%v", i/2, upper.Role, lower.Role)
		}
		if upper.X != lower.X {
			t.Errorf("pair %d halves at different x: %f vs %f", i/2, upper.X, lower.X)
		}
		gap := int(lower.Y - upper.Y)
		if !hard.VerticalGap.Contains(gap) {
			t.Errorf("pair %d gap %d outside hard range", i/2, gap)
		}
		offset := int(upper.X - prevX)
		if !hard.HorizontalDistance.Contains(offset) {
			t.Errorf("pair %d offset %d outside hard range", i/2, offset)
		}
		prevX = upper.X
	}

	if s.RightmostX() != pipes[6].X {
		t.Errorf("RightmostX = %f, expected last pair x %f", s.RightmostX(), pipes[6].X)
	}
}

func TestStreamAdvance(t *testing.T) {
	s := newTestStream(2)
	s.Layout(config.DefaultFlappyConfig().Tiers[config.TierHard])
	before := s.Pipes()

	s.Advance(0.5)

	for i, p := range s.Pipes() {
		if p.X != before[i].X-100 {
			t.Errorf("pipe %d moved from %f to %f, expected -100", i, before[i].X, p.X)
		}
		if p.Y != before[i].Y {
			t.Errorf("pipe %d moved vertically", i)
		}
	}
}

func TestStreamRecycleNothingStale(t *testing.T) {
	s := newTestStream(3)
	s.Layout(config.DefaultFlappyConfig().Tiers[config.TierHard])
	before := s.Pipes()

	if s.Recycle(config.DefaultFlappyConfig().Tiers[config.TierHard]) {
		t.Fatal("nothing should be recycled on a fresh layout")
	}
	for i, p := range s.Pipes() {
		if p != before[i] {
			t.Errorf("pipe %d changed", i)
		}
	}
}

func TestStreamRecycleStaleBoundary(t *testing.T) {
	hard := config.DefaultFlappyConfig().Tiers[config.TierHard]
	s := newTestStream(4)
	s.Layout(hard)

	// Right edge exactly at the boundary counts as stale.
	s.pipes[0].X = -52
	s.pipes[1].X = -52
	if !s.Recycle(hard) {
		t.Error("pipes with right edge at 0 should be recycled")
	}

	// Right edge just inside the playfield does not.
	s.Layout(hard)
	s.pipes[0].X = -51.5
	s.pipes[1].X = -51.5
	if s.Recycle(hard) {
		t.Error("pipes still visible should not be recycled")
	}
}

func TestStreamRecyclePairsAnyTwoStalePipes(t *testing.T) {
	hard := config.DefaultFlappyConfig().Tiers[config.TierHard]
	s := newTestStream(5)
	s.Layout(hard)

	// Slots 0 and 3 are stale; they come from different original pairs
	// and slot 3 was a lower half. The scan pairs them anyway.
	s.pipes[0] = Pipe{X: -60, Y: 200, Role: RoleUpper}
	s.pipes[1] = Pipe{X: 100, Y: 350, Role: RoleLower}
	s.pipes[2] = Pipe{X: 300, Y: 150, Role: RoleUpper}
	s.pipes[3] = Pipe{X: -80, Y: 330, Role: RoleLower}
	untouched := s.Pipes()
	rightmost := s.RightmostX()

	if !s.Recycle(hard) {
		t.Fatal("expected a recycle")
	}
	pipes := s.Pipes()

	if pipes[0].Role != RoleUpper || pipes[3].Role != RoleLower {
		t.Errorf("first stale slot should become upper, second lower: %v/%v", pipes[0].Role, pipes[3].Role)
	}
	if pipes[0].X != pipes[3].X {
		t.Errorf("recycled halves should share x: %f vs %f", pipes[0].X, pipes[3].X)
	}
	offset := int(pipes[0].X - rightmost)
	if !hard.HorizontalDistance.Contains(offset) {
		t.Errorf("recycled offset %d outside hard range", offset)
	}
	for _, i := range []int{1, 2, 4, 5, 6, 7} {
		if pipes[i] != untouched[i] {
			t.Errorf("slot %d should be untouched", i)
		}
	}
	if s.RightmostX() != pipes[0].X {
		t.Errorf("RightmostX after recycle = %f, expected %f", s.RightmostX(), pipes[0].X)
	}
}

func TestStreamRecycleOnePairPerScan(t *testing.T) {
	hard := config.DefaultFlappyConfig().Tiers[config.TierHard]
	s := newTestStream(6)
	s.Layout(hard)
	for i := range s.pipes {
		s.pipes[i].X = -500
	}

	if !s.Recycle(hard) {
		t.Fatal("expected a recycle")
	}
	pipes := s.Pipes()
	if pipes[0].X <= 0 || pipes[1].X <= 0 {
		t.Error("slots 0 and 1 should have been placed")
	}
	for i := 2; i < len(pipes); i++ {
		if pipes[i].X != -500 {
			t.Errorf("slot %d recycled in the same scan", i)
		}
	}

	// The next scan takes the next two stale slots.
	s.Recycle(hard)
	pipes = s.Pipes()
	if pipes[2].X <= pipes[0].X {
		t.Errorf("second recycle should go right of the first: %f <= %f", pipes[2].X, pipes[0].X)
	}
}

func TestStreamRecycleSingleStalePipeWaits(t *testing.T) {
	hard := config.DefaultFlappyConfig().Tiers[config.TierHard]
	s := newTestStream(7)
	s.Layout(hard)
	s.pipes[4].X = -100

	if s.Recycle(hard) {
		t.Error("a single stale pipe should wait for a partner")
	}
}

func TestRightmostXNeverBelowZero(t *testing.T) {
	s := newTestStream(8)
	for i := range s.pipes {
		s.pipes[i].X = -300
	}
	if s.RightmostX() != 0 {
		t.Errorf("RightmostX = %f, expected 0", s.RightmostX())
	}
}

func TestPipeBounds(t *testing.T) {
	upper := Pipe{X: 10, Y: 200, Role: RoleUpper}
	lower := Pipe{X: 10, Y: 350, Role: RoleLower}

	ub := upper.Bounds(52, 600)
	if ub.Bottom() != 200 || ub.Y != -400 {
		t.Errorf("upper bounds = %+v, expected bottom at 200", ub)
	}
	lb := lower.Bounds(52, 600)
	if lb.Y != 350 || lb.Right() != 62 {
		t.Errorf("lower bounds = %+v, expected top at 350", lb)
	}
}
