//go:build ci

package sound

type SoundManager struct{}

func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Loaded(e Effect) bool {
	return false
}

func (sm *SoundManager) Play(e Effect) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
