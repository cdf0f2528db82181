package stack

import "testing"

// testConfig matches the geometry used throughout the examples: a 300-unit
// travel range between a 200 and a 500 high container.
func testConfig() Config {
	return Config{
		LeftSpacing:       8,
		RightSpacing:      8,
		CardHeight:        200,
		VerticalSpacing:   10,
		CardOffset:        40,
		CollapsedHeight:   200,
		ExpandedHeight:    500,
		UpwardThreshold:   50,
		DownwardThreshold: 20,
	}
}

func TestEngine_ExpandedPositions(t *testing.T) {
	e := NewEngine(testConfig())

	tests := []struct {
		index int
		wantY float64
	}{
		{0, 0},
		{1, 210}, // 10*1 + 200*1
		{2, 420},
		{5, 1050},
	}

	for _, tt := range tests {
		got := e.FrameFor(tt.index, Expanded(), 120)
		if got.Y != tt.wantY {
			t.Errorf("FrameFor(%d, expanded).Y = %v, want %v", tt.index, got.Y, tt.wantY)
		}
	}
}

func TestEngine_CollapsedPositions(t *testing.T) {
	e := NewEngine(testConfig())

	tests := []struct {
		index int
		wantY float64
	}{
		{0, 0},
		{1, 50}, // 10 + 40*1
		{2, 90},
		{5, 210},
	}

	for _, tt := range tests {
		got := e.FrameFor(tt.index, Collapsed(), 120)
		if got.Y != tt.wantY {
			t.Errorf("FrameFor(%d, collapsed).Y = %v, want %v", tt.index, got.Y, tt.wantY)
		}
	}
}

func TestEngine_TransitInterpolation(t *testing.T) {
	// The worked midpoint example: progress 150 of a 300-unit range, index 1:
	// collapsedY = 50, expandedY = 210, totalDelta = 160,
	// fraction = 160*150/300 = 80, so Y = 130.
	e := NewEngine(testConfig())

	got := e.FrameFor(1, InTransit(150), 120)
	if got.Y != 130 {
		t.Errorf("FrameFor(1, transit 150).Y = %v, want 130", got.Y)
	}
}

func TestEngine_TopCardNeverMoves(t *testing.T) {
	e := NewEngine(testConfig())

	states := []State{
		Collapsed(),
		Expanded(),
		InTransit(0),
		InTransit(75),
		InTransit(300),
	}
	for _, s := range states {
		if got := e.FrameFor(0, s, 120).Y; got != 0 {
			t.Errorf("FrameFor(0, %v).Y = %v, want 0", s.Phase, got)
		}
	}
}

func TestEngine_BoundaryContinuity(t *testing.T) {
	// The interpolation must land exactly on the terminal layouts at both
	// ends of the travel range.
	cfg := testConfig()
	e := NewEngine(cfg)

	for index := 1; index < 8; index++ {
		collapsed := e.FrameFor(index, Collapsed(), 120).Y
		atZero := e.FrameFor(index, InTransit(0), 120).Y
		if atZero != collapsed {
			t.Errorf("index %d: transit(0).Y = %v, collapsed.Y = %v", index, atZero, collapsed)
		}

		expanded := e.FrameFor(index, Expanded(), 120).Y
		atMax := e.FrameFor(index, InTransit(cfg.TravelRange()), 120).Y
		if atMax != expanded {
			t.Errorf("index %d: transit(max).Y = %v, expanded.Y = %v", index, atMax, expanded)
		}
	}
}

func TestEngine_TransitMonotonic(t *testing.T) {
	cfg := testConfig()
	e := NewEngine(cfg)

	for index := 1; index < 5; index++ {
		prev := e.FrameFor(index, InTransit(0), 120).Y
		for p := 10.0; p <= cfg.TravelRange(); p += 10 {
			cur := e.FrameFor(index, InTransit(p), 120).Y
			if cur < prev {
				t.Fatalf("index %d: Y decreased from %v to %v at progress %v", index, prev, cur, p)
			}
			prev = cur
		}
	}
}

func TestEngine_HorizontalGeometry(t *testing.T) {
	cfg := testConfig()
	e := NewEngine(cfg)

	states := []State{Collapsed(), Expanded(), InTransit(120)}
	for _, s := range states {
		f := e.FrameFor(3, s, 120)
		if f.X != cfg.LeftSpacing {
			t.Errorf("%v: X = %v, want %v", s.Phase, f.X, cfg.LeftSpacing)
		}
		if want := 120 - cfg.LeftSpacing - cfg.RightSpacing; f.Width != want {
			t.Errorf("%v: Width = %v, want %v", s.Phase, f.Width, want)
		}
		if f.Height != cfg.CardHeight {
			t.Errorf("%v: Height = %v, want %v", s.Phase, f.Height, cfg.CardHeight)
		}
	}
}

func TestEngine_FrameSetEmpty(t *testing.T) {
	e := NewEngine(testConfig())

	if got := e.FrameSet(0, Collapsed(), 120); len(got) != 0 {
		t.Errorf("FrameSet(0) returned %d frames, want 0", len(got))
	}
	if got := e.FrameSet(-3, Expanded(), 120); len(got) != 0 {
		t.Errorf("FrameSet(-3) returned %d frames, want 0", len(got))
	}
}

func TestEngine_FrameSetOrderAndReuse(t *testing.T) {
	e := NewEngine(testConfig())

	frames := e.FrameSet(4, Expanded(), 120)
	if len(frames) != 4 {
		t.Fatalf("FrameSet(4) returned %d frames", len(frames))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Y <= frames[i-1].Y {
			t.Errorf("frames out of order: Y[%d]=%v <= Y[%d]=%v", i, frames[i].Y, i-1, frames[i-1].Y)
		}
	}

	// Identical inputs must hit the arena, not rebuild it.
	again := e.FrameSet(4, Expanded(), 120)
	if &frames[0] != &again[0] {
		t.Error("FrameSet with identical inputs rebuilt the arena")
	}

	// Any changed input must rebuild.
	changed := e.FrameSet(4, InTransit(10), 120)
	if changed[1].Y == frames[1].Y {
		t.Error("FrameSet did not recompute after state change")
	}
}

func TestEngine_FramesIntersecting(t *testing.T) {
	e := NewEngine(testConfig())

	tests := []struct {
		name      string
		rect      Rect
		itemCount int
		state     State
		wantLen   int
	}{
		{
			name:      "empty deck",
			rect:      Rect{X: 0, Y: 0, Width: 120, Height: 10000},
			itemCount: 0,
			state:     Collapsed(),
			wantLen:   0,
		},
		{
			name:      "rect taller than stack returns all",
			rect:      Rect{X: 0, Y: 0, Width: 120, Height: 10000},
			itemCount: 5,
			state:     Expanded(),
			wantLen:   5,
		},
		{
			name:      "rect below stack returns none",
			rect:      Rect{X: 0, Y: 5000, Width: 120, Height: 100},
			itemCount: 5,
			state:     Expanded(),
			wantLen:   0,
		},
		{
			name:      "rect above stack returns none",
			rect:      Rect{X: 0, Y: -500, Width: 120, Height: 100},
			itemCount: 5,
			state:     Expanded(),
			wantLen:   0,
		},
		{
			// Expanded cards 0..4 sit at Y 0,210,420,630,840 with height 200.
			name:      "window over middle of expanded stack",
			rect:      Rect{X: 0, Y: 400, Width: 120, Height: 300},
			itemCount: 5,
			state:     Expanded(),
			wantLen:   3, // cards 1 (210-410), 2 (420-620) and 3 (630-830)
		},
		{
			// Collapsed cards all overlap near the top.
			name:      "collapsed stack fits one window",
			rect:      Rect{X: 0, Y: 0, Width: 120, Height: 200},
			itemCount: 5,
			state:     Collapsed(),
			wantLen:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FramesIntersecting(tt.rect, tt.itemCount, tt.state, 120)
			if len(got) != tt.wantLen {
				t.Errorf("FramesIntersecting() returned %d frames, want %d", len(got), tt.wantLen)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Y < got[i-1].Y {
					t.Errorf("result not in index order at %d", i)
				}
			}
		})
	}
}

func TestEngine_StackHeight(t *testing.T) {
	e := NewEngine(testConfig())

	tests := []struct {
		name      string
		itemCount int
		state     State
		want      float64
	}{
		{"empty", 0, Expanded(), 0},
		{"single card", 1, Collapsed(), 200},
		{"expanded", 3, Expanded(), 620}, // last card at 420 + height 200
		{"collapsed", 3, Collapsed(), 290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.StackHeight(tt.itemCount, tt.state); got != tt.want {
				t.Errorf("StackHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero collapsed height", func(c *Config) { c.CollapsedHeight = 0 }, true},
		{"expanded not above collapsed", func(c *Config) { c.ExpandedHeight = c.CollapsedHeight }, true},
		{"expanded below collapsed", func(c *Config) { c.ExpandedHeight = 100 }, true},
		{"zero card height", func(c *Config) { c.CardHeight = 0 }, true},
		{"negative left spacing", func(c *Config) { c.LeftSpacing = -1 }, true},
		{"negative card offset", func(c *Config) { c.CardOffset = -1 }, true},
		{"negative threshold", func(c *Config) { c.DownwardThreshold = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
