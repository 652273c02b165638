package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
)

// Engine plays synthesized cues through the system speaker. All cues
// are generated once at startup; playback adds a finite streamer to the
// shared mixer. When the speaker cannot initialize the caller keeps a
// nil engine and the game runs silent
type Engine struct {
	mixer *beep.Mixer
	muted atomic.Bool
	cues  [core.SoundCueCount]floatBuffer
}

// NewEngine initializes the speaker and pre-generates every cue
func NewEngine() (*Engine, error) {
	e := &Engine{mixer: &beep.Mixer{}}
	for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
		e.cues[cue] = generateCue(cue)
	}

	sr := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(constant.AudioBufferMs*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(e.mixer)
	return e, nil
}

// Play queues a cue for immediate playback. Fire and forget
func (e *Engine) Play(cue core.SoundCue) {
	if e.muted.Load() || cue < 0 || cue >= core.SoundCueCount {
		return
	}
	buf := e.cues[cue]
	if len(buf) == 0 {
		return
	}

	speaker.Lock()
	e.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// SetMuted toggles cue playback
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Muted reports the mute flag
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Close stops playback and releases the speaker
func (e *Engine) Close() {
	speaker.Clear()
	speaker.Close()
}

// bufferStreamer streams a mono sample buffer to both channels once
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }
