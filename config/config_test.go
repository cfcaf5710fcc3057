package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if World.WorldWidth() != 3360 {
		t.Errorf("WorldWidth() = %v, expected 3360", World.WorldWidth())
	}
	if World.WorldHeight() != 240 {
		t.Errorf("WorldHeight() = %v, expected 240", World.WorldHeight())
	}
	x, y := SpawnPoint()
	if x != 48 || y != 208 {
		t.Errorf("SpawnPoint() = (%v, %v), expected (48, 208)", x, y)
	}
	if Physics.HeadBumpSpeed != Physics.Gravity {
		t.Errorf("HeadBumpSpeed = %v, expected gravity %v", Physics.HeadBumpSpeed, Physics.Gravity)
	}
	if got := Loop.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v, expected %v", got, time.Second/60)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "partial override keeps other defaults",
			yaml: "physics:\n  gravity: 0.25\nplayer:\n  move_speed: 3\n",
			check: func(t *testing.T) {
				if Physics.Gravity != 0.25 {
					t.Errorf("Gravity = %v, expected 0.25", Physics.Gravity)
				}
				if Physics.HeadBumpSpeed != 0.5 {
					t.Errorf("HeadBumpSpeed = %v, expected default 0.5", Physics.HeadBumpSpeed)
				}
				if Player.MoveSpeed != 3 {
					t.Errorf("MoveSpeed = %v, expected 3", Player.MoveSpeed)
				}
				if Player.JumpPower != 8 {
					t.Errorf("JumpPower = %v, expected default 8", Player.JumpPower)
				}
			},
		},
		{
			name: "durations parse",
			yaml: "loop:\n  tick_rate: 30\n  min_sleep: 2ms\n",
			check: func(t *testing.T) {
				if Loop.TickRate != 30 {
					t.Errorf("TickRate = %v, expected 30", Loop.TickRate)
				}
				if Loop.MinSleep != 2*time.Millisecond {
					t.Errorf("MinSleep = %v, expected 2ms", Loop.MinSleep)
				}
			},
		},
		{
			name:    "malformed yaml",
			yaml:    "physics: [not a map",
			wantErr: true,
			check: func(t *testing.T) {
				if Physics.Gravity != 0.5 {
					t.Errorf("Gravity = %v, expected untouched default", Physics.Gravity)
				}
			},
		},
		{
			name:    "invalid tile size",
			yaml:    "world:\n  tile_size: 0\n",
			wantErr: true,
			check: func(t *testing.T) {
				if World.TileSize != 16 {
					t.Errorf("TileSize = %v, expected untouched default", World.TileSize)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Reset()
			defer Reset()

			path := filepath.Join(t.TempDir(), "pixelplat.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			err := Load(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			tc.check(t)
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	Reset()
	if err := Load(""); err != nil {
		t.Errorf("Load(\"\") = %v, expected nil", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	Reset()
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if ActionID(99).String() != "unknown" {
		t.Errorf("ActionID(99).String() = %q", ActionID(99).String())
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"warn", false},
		{"loud", true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(&buf, "test", tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			logger.Info("hello", "k", 1)
			if tt.level == "warn" {
				if buf.Len() != 0 {
					t.Errorf("info logged at warn level: %q", buf.String())
				}
			} else if !bytes.Contains(buf.Bytes(), []byte("hello")) {
				t.Errorf("expected message in output, got %q", buf.String())
			}
		})
	}
}
