package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/nova-fighter/constant"
	"github.com/lixenwraith/nova-fighter/core"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constant.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine with frequency gliding from start to end
func sweep(startFreq, endFreq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := startFreq + (endFreq-startFreq)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / float64(constant.AudioSampleRate)
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(constant.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(constant.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// concatFloatBuffers appends b after a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	out := make(floatBuffer, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// durationToSamples converts seconds to a sample count
func durationToSamples(d float64) int {
	return int(d * float64(constant.AudioSampleRate))
}

// generateShootSound is a short bright zap for the player cannon
func generateShootSound() floatBuffer {
	buf := sweep(880, 440, durationToSamples(0.06))
	applyEnvelope(buf, 0.002, 0.03)
	return buf
}

// generateEnemyShootSound is a duller, lower zap
func generateEnemyShootSound() floatBuffer {
	buf := oscillator(waveSquare, 220, durationToSamples(0.07))
	applyEnvelope(buf, 0.002, 0.04)
	return buf
}

// generateExplosionSound is filtered-feeling noise with a long release
func generateExplosionSound() floatBuffer {
	buf := oscillator(waveNoise, 0, durationToSamples(0.25))
	applyEnvelope(buf, 0.001, 0.22)
	return buf
}

// generatePowerUpSound is a rising three-note chime
func generatePowerUpSound() floatBuffer {
	noteLen := durationToSamples(0.07)
	buf := floatBuffer{}
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		note := oscillator(waveSine, freq, noteLen)
		applyEnvelope(note, 0.005, 0.02)
		buf = concatFloatBuffers(buf, note)
	}
	return buf
}

// generateHitSound is a low impact thud
func generateHitSound() floatBuffer {
	buf := sweep(180, 60, durationToSamples(0.12))
	applyEnvelope(buf, 0.001, 0.09)
	return buf
}

// generateCue synthesizes the sample buffer for a cue
func generateCue(cue core.SoundCue) floatBuffer {
	var buf floatBuffer
	switch cue {
	case core.CueShoot:
		buf = generateShootSound()
	case core.CueEnemyShoot:
		buf = generateEnemyShootSound()
	case core.CueExplosion:
		buf = generateExplosionSound()
	case core.CuePowerUp:
		buf = generatePowerUpSound()
	case core.CueHit:
		buf = generateHitSound()
	default:
		return nil
	}

	for i := range buf {
		buf[i] *= constant.AudioMasterGain
	}
	return buf
}
