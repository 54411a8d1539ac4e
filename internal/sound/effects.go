package sound

// Effect names a sound; the file assets/sounds/<effect>.mp3|.wav backs it.
type Effect string

const (
	EffectButton Effect = "button"
	EffectDeal   Effect = "deal"
	EffectWin    Effect = "win"
	EffectLose   Effect = "lose"
)

// Player is the part of the manager the UI needs.
type Player interface {
	Play(e Effect)
}
