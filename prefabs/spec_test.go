package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedSimSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadSimSpec(SimSpecFile)
	if err != nil {
		t.Fatalf("LoadSimSpec: %v", err)
	}
	if *spec != DefaultSimSpec() {
		t.Fatalf("embedded spec %+v differs from defaults %+v", *spec, DefaultSimSpec())
	}
}

func TestLoadMissingSpec(t *testing.T) {
	if _, err := LoadSimSpec("nope.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestDecodeSimSpec(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
		check   func(t *testing.T, s *SimSpec)
	}{
		{
			name: "partial_override_keeps_defaults",
			yaml: "paddle_speed: 300\nfield:\n  width: 1024\n",
			check: func(t *testing.T, s *SimSpec) {
				if s.PaddleSpeed != 300 || s.Field.Width != 1024 {
					t.Fatalf("overrides not applied: %+v", s)
				}
				if s.Field.Height != 600 || s.BounceFactor != 1.05 {
					t.Fatalf("defaults lost: %+v", s)
				}
			},
		},
		{name: "zero_tick_rate", yaml: "fixed_tick_rate: 0\n", invalid: true},
		{name: "bounce_factor_not_accelerating", yaml: "bounce_factor: 1\n", invalid: true},
		{name: "paddle_taller_than_field", yaml: "paddle:\n  height: 700\n", invalid: true},
		{name: "ball_wider_than_field", yaml: "ball:\n  radius: 400\n", invalid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := DecodeSimSpec([]byte(tc.yaml))
			if tc.invalid {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Fatalf("expected ErrInvalidSpec, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSimSpec: %v", err)
			}
			tc.check(t, s)
		})
	}
}

func TestDecodeSimSpecBadYAML(t *testing.T) {
	_, err := DecodeSimSpec([]byte("field: [1, 2"))
	if err == nil || errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected a YAML error, got %v", err)
	}
}

func TestSimSpecConversions(t *testing.T) {
	s := DefaultSimSpec()

	tuning := s.Tuning()
	if tuning.BallSpeed != 100 || tuning.PaddleSpeed != 150 || tuning.BounceFactor != 1.05 {
		t.Fatalf("tuning = %+v", tuning)
	}

	court := s.Court()
	if court.Width != 800 || court.PaddleInset != 40 || court.BallRadius != 23 || court.ScoreboardY != 50 {
		t.Fatalf("court = %+v", court)
	}

	cfg := s.LoopConfig()
	if cfg.FixedStep != time.Second/60 || cfg.FrameInterval != time.Second/60 {
		t.Fatalf("loop config = %+v", cfg)
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"":                            "",
		"sweep.tengo":                 "scripts/sweep.tengo",
		"scripts/sweep.tengo":         "scripts/sweep.tengo",
		"prefabs/scripts/sweep.tengo": "scripts/sweep.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("sweep.tengo"); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
}

func TestCleanPrefabPath(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"pong.yaml":        "pong.yaml",
		"prefabs/pong.yml": "pong.yml",
	}
	for in, want := range cases {
		if got := cleanPrefabPath(in); got != want {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSpecWatcherDeliversDecodedSpecs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(target, []byte("paddle_speed: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchSpec(dir, "prefabs/pong.yaml", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchSpec: %v", err)
	}
	defer w.Close()
	if w.Path() != target {
		t.Fatalf("Path() = %q, want %q", w.Path(), target)
	}

	// Each write is stamped a second later so the change is always seen.
	stamp := time.Now()
	write := func(name, body string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		stamp = stamp.Add(time.Second)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}
	next := func() SpecUpdate {
		t.Helper()
		select {
		case u := <-w.Updates:
			return u
		case <-time.After(2 * time.Second):
			t.Fatalf("no update for %s", target)
		}
		return SpecUpdate{}
	}

	write("other.yaml", "paddle_speed: 999\n")
	write("pong.yaml", "paddle_speed: 200\n")
	u := next()
	if u.Err != nil {
		t.Fatalf("update error: %v", u.Err)
	}
	if u.Spec.PaddleSpeed != 200 || u.Spec.Field.Width != 800 {
		t.Fatalf("spec = %+v", u.Spec)
	}

	write("pong.yaml", "bounce_factor: 0.5\n")
	u = next()
	if !errors.Is(u.Err, ErrInvalidSpec) || u.Spec != nil {
		t.Fatalf("expected ErrInvalidSpec, got %+v", u)
	}
}

func TestSpecWatcherSeesEditRightAfterStart(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(target, []byte("paddle_speed: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Truncate(time.Second)
	if err := os.Chtimes(target, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	w, err := WatchSpec(dir, "pong.yaml", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchSpec: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(target, []byte("paddle_speed: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stamp = stamp.Add(time.Second)
	if err := os.Chtimes(target, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	select {
	case u := <-w.Updates:
		if u.Err != nil {
			t.Fatalf("update error: %v", u.Err)
		}
		if u.Spec.PaddleSpeed != 250 {
			t.Fatalf("PaddleSpeed = %v, want 250", u.Spec.PaddleSpeed)
		}
		if !u.ModTime.Equal(stamp) {
			t.Fatalf("ModTime = %v, want %v", u.ModTime, stamp)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("edit made right after WatchSpec was dropped")
	}
}
