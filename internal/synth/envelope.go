package synth

// ApplyLinearFade returns a copy of buf with the first fadeIn samples
// ramped 0→1 and the last fadeOut samples ramped 1→0. Windows larger
// than the buffer are clamped to it. When the two windows overlap the
// fade-out ramp wins: its gain replaces, not multiplies, the fade-in
// gain in the overlapping region.
func ApplyLinearFade(buf Mono, fadeIn, fadeOut int) Mono {
	n := len(buf)
	fadeIn = min(max(fadeIn, 0), n)
	fadeOut = min(max(fadeOut, 0), n)

	out := make(Mono, n)
	copy(out, buf)
	for i := 0; i < fadeIn; i++ {
		out[i] = buf[i] * float64(i) / float64(fadeIn)
	}
	for i := n - fadeOut; i < n; i++ {
		out[i] = buf[i] * float64(n-1-i) / float64(fadeOut)
	}
	return out
}

// FadeSamples converts a fade length in seconds to a sample count.
func FadeSamples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(float64(SampleRate) * seconds)
}
