// Package audio turns engine sound cues into short synthesized effects.
// Playback is fire-and-forget: Play never blocks the frame loop.
package audio

// Cue names a sound the game can request.
type Cue int

const (
	CueTap Cue = iota
	CueCoin
	CueHit
	CueJump
	CueWrong
	CueWin
	CueWater
	CueAngry
	CueDrum   // low barrel thump
	CueWood   // wooden knock
	CuePot    // pot clang
	CueSnare  // noise burst
	cueCount
)

var cueNames = [...]string{
	CueTap:   "tap",
	CueCoin:  "coin",
	CueHit:   "hit",
	CueJump:  "jump",
	CueWrong: "wrong",
	CueWin:   "win",
	CueWater: "water",
	CueAngry: "angry",
	CueDrum:  "drum",
	CueWood:  "wood",
	CuePot:   "pot",
	CueSnare: "snare",
}

// String returns the cue name.
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Note returns the instrument cue for a rhythm note kind. Kinds outside the
// instrument set fall back to a tap.
func Note(kind int) Cue {
	switch kind {
	case 0:
		return CueDrum
	case 1:
		return CueWood
	case 2:
		return CuePot
	case 3:
		return CueSnare
	default:
		return CueTap
	}
}

// Cues lists every playable cue.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// Nop is a silent player used for headless runs, SSH sessions and --mute.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
