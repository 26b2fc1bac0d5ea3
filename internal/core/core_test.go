package core

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestByteGridHelpers(t *testing.T) {
	g := NewByteGrid(4, 3)
	if g.Index(3, 2) != 11 {
		t.Fatalf("unexpected index %d", g.Index(3, 2))
	}
	if !g.InBounds(0, 0) || !g.InBounds(3, 2) || g.InBounds(4, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds disagrees with dimensions")
	}
	g.Fill(2)
	g.Cells()[5] = 7
	if g.Count(2) != 11 || g.Count(7) != 1 {
		t.Fatalf("unexpected counts %d/%d", g.Count(2), g.Count(7))
	}
	g.Clear()
	if g.Count(0) != 12 {
		t.Fatal("clear left non-zero cells")
	}
}

func TestSequenceTicksCycles(t *testing.T) {
	s := NewSequenceTicks(3, 4)
	got := []uint64{s.Tick(), s.Tick(), s.Tick()}
	if got[0] != 3 || got[1] != 4 || got[2] != 3 {
		t.Fatalf("unexpected sequence %v", got)
	}
	if s.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", s.Draws())
	}
	if NewSequenceTicks().Tick() != 0 {
		t.Fatal("empty sequence should yield zero")
	}
}

func TestRNGReseedReplays(t *testing.T) {
	r := NewRNG(11)
	first := []uint64{r.Tick(), r.Tick(), r.Tick()}
	r.Reseed(11)
	for i, want := range first {
		if got := r.Tick(); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
	if r.Seed() != 11 {
		t.Fatalf("unexpected seed %d", r.Seed())
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should be zero")
	}
}

func TestNewTickSource(t *testing.T) {
	if src, err := NewTickSource("", 0); err != nil {
		t.Fatal(err)
	} else if _, ok := src.(*ClockTicks); !ok {
		t.Fatalf("default source should be the clock, got %T", src)
	}
	if src, err := NewTickSource(TicksSeeded, 5); err != nil {
		t.Fatal(err)
	} else if rng, ok := src.(*RNG); !ok || rng.Seed() != 5 {
		t.Fatalf("seeded source mismatch: %T", src)
	}
	if _, err := NewTickSource("sundial", 0); err == nil {
		t.Fatal("unknown source should fail")
	}
}

func TestClockTicksMonotonic(t *testing.T) {
	c := NewClockTicks()
	a := c.Tick()
	b := c.Tick()
	if b < a {
		t.Fatalf("clock went backwards: %d then %d", a, b)
	}
}

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStepClock(10, func() time.Time { return now })
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
	now = now.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("backlog should be capped, got %d steps", steps)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}
}

func TestStdLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(log.New(&buf, "", 0), "warn")
	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("missing messages: %q", out)
	}
	if ParseLogLevel("bogus") != LogLevelInfo || ParseLogLevel("WARNING") != LogLevelWarn {
		t.Fatal("ParseLogLevel mismatch")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 5, HasMin: true, HasMax: true}
	if c.Clamp(0) != 1 || c.Clamp(9) != 5 || c.Clamp(3) != 3 {
		t.Fatal("clamp mismatch")
	}
	open := ParameterControl{}
	if open.Clamp(-100) != -100 {
		t.Fatal("unbounded control should not clamp")
	}
}
