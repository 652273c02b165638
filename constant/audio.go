package constant

// Audio
const (
	// AudioSampleRate for synthesized cue generation
	AudioSampleRate = 48000

	// AudioBufferMs is the speaker buffer length in milliseconds
	AudioBufferMs = 100

	// AudioMasterGain scales all generated cues
	AudioMasterGain = 0.35
)
