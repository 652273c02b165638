package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
)

func TestOscillator_SampleRange(t *testing.T) {
	for _, waveType := range []int{waveSine, waveSquare, waveSaw, waveNoise} {
		buf := oscillator(waveType, 440, durationToSamples(0.05))
		if len(buf) == 0 {
			t.Fatalf("wave type %d produced no samples", waveType)
		}
		for i, v := range buf {
			if v < -1.0 || v > 1.0 {
				t.Fatalf("wave type %d sample %d = %v outside [-1, 1]", waveType, i, v)
			}
		}
	}
}

func TestApplyEnvelope_RampsToSilence(t *testing.T) {
	buf := make(floatBuffer, durationToSamples(0.1))
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 0.01, 0.02)

	if buf[0] != 0 {
		t.Errorf("first attack sample = %v, want 0", buf[0])
	}
	mid := buf[len(buf)/2]
	if mid != 1.0 {
		t.Errorf("sustain sample = %v, want unity", mid)
	}
	last := buf[len(buf)-1]
	if last > 0.01 {
		t.Errorf("final release sample = %v, want near silence", last)
	}
}

func TestDurationToSamples(t *testing.T) {
	if got := durationToSamples(1.0); got != constant.AudioSampleRate {
		t.Errorf("one second = %d samples, want %d", got, constant.AudioSampleRate)
	}
	if got := durationToSamples(0.5); got != constant.AudioSampleRate/2 {
		t.Errorf("half second = %d samples, want %d", got, constant.AudioSampleRate/2)
	}
}

func TestGenerateCue_AllCuesProduceAudio(t *testing.T) {
	for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
		buf := generateCue(cue)
		if len(buf) == 0 {
			t.Errorf("cue %d produced no samples", cue)
			continue
		}

		peak := 0.0
		for _, v := range buf {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			t.Errorf("cue %d is pure silence", cue)
		}
		if peak > constant.AudioMasterGain+1e-9 {
			t.Errorf("cue %d peak = %v exceeds master gain %v", cue, peak, constant.AudioMasterGain)
		}
	}
}

func TestGenerateCue_UnknownCueIsNil(t *testing.T) {
	if buf := generateCue(core.SoundCueCount); buf != nil {
		t.Errorf("unknown cue produced %d samples, want nil", len(buf))
	}
}

func TestBufferStreamer_StreamsOnceThenEnds(t *testing.T) {
	src := floatBuffer{0.5, -0.5, 0.25}
	s := &bufferStreamer{buf: src}

	out := make([][2]float64, 2)
	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("first Stream() = (%d, %v), want (2, true)", n, ok)
	}
	if out[0][0] != 0.5 || out[0][1] != 0.5 {
		t.Errorf("mono sample should duplicate to both channels, got %v", out[0])
	}

	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("second Stream() = (%d, %v), want (1, true)", n, ok)
	}

	n, ok = s.Stream(out)
	if n != 0 || ok {
		t.Errorf("exhausted Stream() = (%d, %v), want (0, false)", n, ok)
	}
}

func TestEngine_MuteToggle(t *testing.T) {
	// No speaker init: Play must bail out before touching the mixer
	// when muted or when the cue table is empty
	e := &Engine{}

	if e.Muted() {
		t.Fatal("fresh engine should start unmuted")
	}
	e.SetMuted(true)
	if !e.Muted() {
		t.Error("SetMuted(true) not observed by Muted()")
	}
	e.Play(core.CueShoot)

	e.SetMuted(false)
	if e.Muted() {
		t.Error("SetMuted(false) not observed by Muted()")
	}
	e.Play(core.CueShoot)
}
