package core

// Cue names a short procedural sound fired by the simulation.
// Games return cues in StepResult; the platform decides how to play them.
type Cue string

const (
	CueVoice     Cue = "voice"     // typewriter blip, one per revealed rune
	CueAmbient   Cue = "ambient"   // low drone on start
	CueSparkle   Cue = "sparkle"   // completion screen
	CueInteract  Cue = "interact"  // dialogue closed
	CueDiscovery Cue = "discovery" // poem line found
	CueStep      Cue = "step"      // footstep
)

// AllCues lists every cue in a stable order.
func AllCues() []Cue {
	return []Cue{CueVoice, CueAmbient, CueSparkle, CueInteract, CueDiscovery, CueStep}
}
