package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/pixelplat/engine"
	"github.com/automoto/pixelplat/physics"
)

var ErrBadScript = errors.New("bad input script")

// Segment holds one input for a number of ticks.
type Segment struct {
	Intent physics.Intent
	Ticks  int
}

// Script is a sequence of held inputs.
type Script []Segment

// ParseScript reads comma-separated KEYS:TICKS segments. KEYS is any mix of
// L, R and J, or "_" for no keys, e.g. "R:120,RJ:20,_:30".
func ParseScript(s string) (Script, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var script Script
	for i, part := range strings.Split(s, ",") {
		keys, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: segment %d %q has no tick count", ErrBadScript, i+1, part)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("%w: segment %d %q needs a positive tick count", ErrBadScript, i+1, part)
		}

		var in physics.Intent
		if keys != "_" {
			if keys == "" {
				return nil, fmt.Errorf("%w: segment %d %q has no keys", ErrBadScript, i+1, part)
			}
			for _, k := range strings.ToUpper(keys) {
				switch k {
				case 'L':
					in.Left = true
				case 'R':
					in.Right = true
				case 'J':
					in.Jump = true
				default:
					return nil, fmt.Errorf("%w: segment %d has unknown key %q", ErrBadScript, i+1, k)
				}
			}
		}
		script = append(script, Segment{Intent: in, Ticks: ticks})
	}
	return script, nil
}

// Len returns the total number of ticks the script covers.
func (s Script) Len() int {
	n := 0
	for _, seg := range s {
		n += seg.Ticks
	}
	return n
}

// Source replays the script one tick per call, then holds nothing.
func (s Script) Source() engine.InputSource {
	seg, used := 0, 0
	return func() physics.Intent {
		for seg < len(s) && used >= s[seg].Ticks {
			seg++
			used = 0
		}
		if seg >= len(s) {
			return physics.Intent{}
		}
		used++
		return s[seg].Intent
	}
}

func (s Script) String() string {
	parts := make([]string, 0, len(s))
	for _, seg := range s {
		var keys strings.Builder
		if seg.Intent.Left {
			keys.WriteByte('L')
		}
		if seg.Intent.Right {
			keys.WriteByte('R')
		}
		if seg.Intent.Jump {
			keys.WriteByte('J')
		}
		if keys.Len() == 0 {
			keys.WriteByte('_')
		}
		parts = append(parts, fmt.Sprintf("%s:%d", keys.String(), seg.Ticks))
	}
	return strings.Join(parts, ",")
}
