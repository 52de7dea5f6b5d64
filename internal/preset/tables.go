package preset

// FrequencyInfo pairs a frequency with its traditional description.
// The tables below are pure curated data; the synthesis engine never
// reads them.
type FrequencyInfo struct {
	Hz   float64
	Desc string
}

// Solfeggio is the nine-tone Solfeggio scale.
var Solfeggio = []FrequencyInfo{
	{174, "Pain relief, anesthetic"},
	{285, "Tissue healing, regeneration"},
	{396, "Liberation from guilt and fear"},
	{417, "Facilitating change, breaking patterns"},
	{528, "Love frequency, DNA repair, miracles"},
	{639, "Connecting relationships, harmony"},
	{741, "Expression, solutions, cleansing"},
	{852, "Spiritual order, awakening intuition"},
	{963, "Divine consciousness, pineal activation"},
}

// Angels are the repeated-digit "angel number" frequencies.
var Angels = []FrequencyInfo{
	{111, "New beginnings, manifestation"},
	{222, "Balance, harmony, cooperation"},
	{333, "Ascended masters, encouragement"},
	{444, "Protection, angelic presence"},
	{555, "Major life changes coming"},
	{666, "Balance material/spiritual (reclaimed)"},
	{777, "Divine luck, miracles"},
	{888, "Abundance, infinite flow"},
	{999, "Completion, lightworker activation"},
}

// Chakra is one step of the root-to-crown meditation sequence.
type Chakra struct {
	Hz   float64
	Name string
	Desc string
}

// Chakras is ordered root to crown; the meditation sequence plays them
// in this order.
var Chakras = []Chakra{
	{396, "root", "Root chakra (Muladhara) - grounding"},
	{417, "sacral", "Sacral chakra (Svadhisthana) - creativity"},
	{528, "solar_plexus", "Solar plexus (Manipura) - confidence"},
	{639, "heart", "Heart chakra (Anahata) - love"},
	{741, "throat", "Throat chakra (Vishuddha) - expression"},
	{852, "third_eye", "Third eye (Ajna) - intuition"},
	{963, "crown", "Crown chakra (Sahasrara) - enlightenment"},
}

// BrainwaveState is a named EEG band; binaural presets target the middle
// of each band.
type BrainwaveState struct {
	Name   string
	LowHz  float64
	HighHz float64
	Desc   string
}

var BrainwaveStates = []BrainwaveState{
	{"delta", 0.5, 4, "Deep sleep, healing, unconscious"},
	{"theta", 4, 8, "Meditation, creativity, REM sleep"},
	{"alpha", 8, 14, "Relaxation, calm focus, light meditation"},
	{"beta", 14, 30, "Active thinking, focus, alertness"},
	{"gamma", 30, 100, "Higher cognition, peak awareness"},
}

// TargetHz is the beat frequency used for this state's binaural preset.
func (s BrainwaveState) TargetHz() float64 {
	return (s.LowHz + s.HighHz) / 2
}

// Special collects one-off frequencies with their own lore.
var Special = []FrequencyInfo{
	{7.83, "Schumann resonance (Earth's EM frequency)"},
	{40, "Gamma entrainment (Alzheimer's research frequency)"},
	{136.1, "Om frequency (Earth year tone)"},
	{432, "Verdi tuning, 'natural' frequency"},
	{440, "Standard concert pitch (for comparison)"},
	{528, "MI - Miracle tone, DNA repair claims"},
	{639, "FA - Relationship harmony"},
	{852, "LA - Return to spiritual order"},
}
