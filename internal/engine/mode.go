package engine

// mode holds the two playback flags. It is guarded by Engine.mu.
type mode struct {
	// playbackEnabled is toggled by the editing surface.
	playbackEnabled bool
	// typing is true only while a macro is being emitted.
	typing bool
}

func (m mode) listeningActive() bool {
	return m.playbackEnabled && !m.typing
}
