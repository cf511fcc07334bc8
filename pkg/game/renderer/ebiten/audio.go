package ebiten

import (
	"bytes"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const (
	audioSampleRate = 44100
	launchAudioFile = "assets/launch.mp3"
)

// initAudio prepares the launch sound if the asset is present. Audio is
// purely cosmetic, so every failure here leaves launchPlayer nil and the
// game carries on silent.
func (e *EbitenRenderer) initAudio() {
	data, err := os.ReadFile(launchAudioFile)
	if err != nil {
		return
	}

	e.audioContext = audio.NewContext(audioSampleRate)

	stream, err := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
	if err != nil {
		return
	}

	player, err := e.audioContext.NewPlayer(stream)
	if err != nil {
		return
	}
	e.launchPlayer = player
}

// playLaunchAudio plays the launch sound, if available. The win sequence
// fires once per session, so no replay guard is needed here.
func (e *EbitenRenderer) playLaunchAudio() {
	if e.launchPlayer == nil {
		return
	}
	if err := e.launchPlayer.Rewind(); err != nil {
		return
	}
	e.launchPlayer.Play()
}
