package breakout

// CueKind identifies a sound the frontend should play.
type CueKind int

const (
	CueWallBounce CueKind = iota
	CuePaddleHit
	CueLineDescend
	CueBrickBreak
)

// String returns a human-readable name for the cue kind.
func (k CueKind) String() string {
	switch k {
	case CueWallBounce:
		return "WallBounce"
	case CuePaddleHit:
		return "PaddleHit"
	case CueLineDescend:
		return "LineDescend"
	case CueBrickBreak:
		return "BrickBreak"
	default:
		return "Unknown"
	}
}

// BrickSound is one of the four brick click samples.
type BrickSound int

const (
	BrickSoundA BrickSound = iota
	BrickSoundB
	BrickSoundC
	BrickSoundD
)

// BrickSoundCount is the number of distinct brick sounds.
const BrickSoundCount = 4

// brickSoundSequence maps a BrickBreak cue index to its sample.
var brickSoundSequence = [...]BrickSound{
	BrickSoundA, BrickSoundB, BrickSoundC, BrickSoundA,
	BrickSoundC, BrickSoundD, BrickSoundA, BrickSoundC,
}

// brickCueCount is the length of the cue index cycle.
const brickCueCount = len(brickSoundSequence)

// Cue is a fire-and-forget audio event emitted by a tick.
// Index is only meaningful for CueBrickBreak (0-7).
type Cue struct {
	Kind  CueKind
	Index int
}

// Sound returns the brick sample for a CueBrickBreak cue.
func (c Cue) Sound() BrickSound {
	return brickSoundSequence[((c.Index%brickCueCount)+brickCueCount)%brickCueCount]
}
