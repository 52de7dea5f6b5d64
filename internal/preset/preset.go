// Package preset renders the curated frequency tables into WAV file
// batches. Each batch is an independent generate-then-write pipeline
// over the synthesis engine; a failed file aborts its batch but batches
// never share state.
package preset

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/resonara/resonara/internal/pcm"
	"github.com/resonara/resonara/internal/synth"
)

// Table entries below this are inaudible as raw tones, so they render as
// isochronic pulses over the carrier instead.
const audibleFloorHz = 20

// OmFundamentalHz is the traditional Om tone.
const OmFundamentalHz = 136.1

// Generator renders preset batches into an output directory.
type Generator struct {
	OutputDir string
	Duration  float64 // seconds per generated file
	Amplitude float64 // normalized peak in (0, 1]
	BaseFreq  float64 // carrier for binaural and isochronic presets
}

// writeTone renders a single table frequency to path. Sub-audible
// entries become isochronic pulses over the carrier.
func (g *Generator) writeTone(path string, hz float64) error {
	var spec synth.Spec
	if hz < audibleFloorHz {
		spec = synth.Isochronic{Carrier: g.BaseFreq, Pulse: hz}
	} else {
		spec = synth.Tone{Frequency: hz}
	}
	buf, err := spec.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	return pcm.WriteFile(path, buf)
}

func (g *Generator) ensureDir(parts ...string) (string, error) {
	dir := filepath.Join(append([]string{g.OutputDir}, parts...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Solfeggio writes one tone per Solfeggio frequency.
func (g *Generator) Solfeggio() error {
	dir, err := g.ensureDir("solfeggio")
	if err != nil {
		return err
	}
	log.Println("=== Generating Solfeggio Frequencies ===")
	for _, fi := range Solfeggio {
		log.Printf("  %g Hz: %s", fi.Hz, fi.Desc)
		path := filepath.Join(dir, fmt.Sprintf("solfeggio_%ghz.wav", fi.Hz))
		if err := g.writeTone(path, fi.Hz); err != nil {
			return err
		}
	}
	return nil
}

// Angels writes one tone per angel number frequency.
func (g *Generator) Angels() error {
	dir, err := g.ensureDir("angels")
	if err != nil {
		return err
	}
	log.Println("=== Generating Angel Frequencies ===")
	for _, fi := range Angels {
		log.Printf("  %g Hz: %s", fi.Hz, fi.Desc)
		path := filepath.Join(dir, fmt.Sprintf("angel_%ghz.wav", fi.Hz))
		if err := g.writeTone(path, fi.Hz); err != nil {
			return err
		}
	}
	return nil
}

// SpecialSet writes one file per special frequency. Sub-audible entries
// like the 7.83 Hz Schumann resonance come out as isochronic pulses.
func (g *Generator) SpecialSet() error {
	dir, err := g.ensureDir("special")
	if err != nil {
		return err
	}
	log.Println("=== Generating Special Frequencies ===")
	for _, fi := range Special {
		log.Printf("  %g Hz: %s", fi.Hz, fi.Desc)
		path := filepath.Join(dir, fmt.Sprintf("special_%ghz.wav", fi.Hz))
		if err := g.writeTone(path, fi.Hz); err != nil {
			return err
		}
	}
	return nil
}

// BinauralSet writes one stereo beat file per brainwave state, pulsing
// at the middle of each band over the configured carrier.
func (g *Generator) BinauralSet() error {
	dir, err := g.ensureDir("binaural")
	if err != nil {
		return err
	}
	log.Println("=== Generating Binaural Beat Presets ===")
	log.Println("(Use headphones for binaural beats to work!)")
	for _, st := range BrainwaveStates {
		target := st.TargetHz()
		log.Printf("  %s (%g Hz): %s", strings.ToUpper(st.Name), target, st.Desc)
		buf, err := synth.Binaural{Base: g.BaseFreq, Beat: target}.Render(g.Duration, g.Amplitude)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("binaural_%s_%.1fhz.wav", st.Name, target))
		if err := pcm.WriteFile(path, buf); err != nil {
			return err
		}
	}
	return nil
}

// Schumann writes the 7.83 Hz resonance both as an isochronic pulse
// (no headphones needed) and as a binaural beat.
func (g *Generator) Schumann() error {
	dir, err := g.ensureDir("schumann")
	if err != nil {
		return err
	}
	const schumannHz = 7.83
	log.Println("=== Generating Schumann Resonance ===")

	log.Println("  Isochronic tone (works without headphones)")
	iso, err := synth.Isochronic{Carrier: g.BaseFreq, Pulse: schumannHz}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	if err := pcm.WriteFile(filepath.Join(dir, "schumann_7.83hz_isochronic.wav"), iso); err != nil {
		return err
	}

	log.Println("  Binaural beat (requires headphones)")
	bin, err := synth.Binaural{Base: g.BaseFreq, Beat: schumannHz}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	return pcm.WriteFile(filepath.Join(dir, "schumann_7.83hz_binaural.wav"), bin)
}

// ChakraMeditation writes one faded tone per chakra plus the full
// root-to-crown sequence concatenated into a single file.
func (g *Generator) ChakraMeditation() error {
	dir, err := g.ensureDir("chakras")
	if err != nil {
		return err
	}
	log.Println("=== Generating Chakra Meditation Sequence ===")

	fade := synth.FadeSamples(2)
	segments := make([]synth.Buffer, 0, len(Chakras))
	for _, c := range Chakras {
		log.Printf("  %g Hz (%s): %s", c.Hz, c.Name, c.Desc)
		buf, err := synth.Tone{Frequency: c.Hz}.Render(g.Duration, g.Amplitude)
		if err != nil {
			return err
		}
		faded := synth.ApplyLinearFade(buf.(synth.Mono), fade, fade)
		path := filepath.Join(dir, fmt.Sprintf("chakra_%s_%.0fhz.wav", c.Name, c.Hz))
		if err := pcm.WriteFile(path, faded); err != nil {
			return err
		}
		segments = append(segments, faded)
	}

	log.Println("  Full meditation sequence...")
	full, err := synth.Concatenate(segments...)
	if err != nil {
		return err
	}
	return pcm.WriteFile(filepath.Join(dir, "chakra_full_meditation.wav"), full)
}

// TuningComparison writes 432 Hz and 440 Hz reference tones plus an
// alternating A/B track with 5 s segments.
func (g *Generator) TuningComparison() error {
	dir, err := g.ensureDir("tuning")
	if err != nil {
		return err
	}
	log.Println("=== Generating 432 Hz vs 440 Hz Comparison ===")

	natural, err := synth.Tone{Frequency: 432}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	standard, err := synth.Tone{Frequency: 440}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	if err := pcm.WriteFile(filepath.Join(dir, "tuning_432hz_natural.wav"), natural); err != nil {
		return err
	}
	if err := pcm.WriteFile(filepath.Join(dir, "tuning_440hz_standard.wav"), standard); err != nil {
		return err
	}

	log.Println("  A-B comparison (alternating)...")
	const segmentDur = 5.0
	a, err := synth.Tone{Frequency: 432}.Render(segmentDur, g.Amplitude)
	if err != nil {
		return err
	}
	b, err := synth.Tone{Frequency: 440}.Render(segmentDur, g.Amplitude)
	if err != nil {
		return err
	}
	repeats := int(g.Duration / (segmentDur * 2))
	comparison, err := synth.Alternate(a, b, repeats)
	if err != nil {
		return err
	}
	return pcm.WriteFile(filepath.Join(dir, "tuning_432_440_comparison.wav"), comparison)
}

// Om writes the 136.1 Hz harmonic stack.
func (g *Generator) Om() error {
	if _, err := g.ensureDir(); err != nil {
		return err
	}
	log.Println("=== Generating Om Tone (136.1 Hz with harmonics) ===")
	buf, err := synth.HarmonicStack{Fundamental: OmFundamentalHz}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	return pcm.WriteFile(filepath.Join(g.OutputDir, "om_136.1hz.wav"), buf)
}

// NoiseSet writes white, pink and brown background noise.
func (g *Generator) NoiseSet() error {
	dir, err := g.ensureDir("noise")
	if err != nil {
		return err
	}
	log.Println("=== Generating Noise Backgrounds ===")
	descs := map[synth.NoiseColor]string{
		synth.White: "all frequencies equal",
		synth.Pink:  "1/f, nature-like",
		synth.Brown: "1/f^2, deep rumble",
	}
	for _, color := range []synth.NoiseColor{synth.White, synth.Pink, synth.Brown} {
		log.Printf("  %s noise (%s)", color, descs[color])
		buf, err := synth.Noise{Color: color}.Render(g.Duration, g.Amplitude)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_noise.wav", color))
		if err := pcm.WriteFile(path, buf); err != nil {
			return err
		}
	}
	return nil
}

// SweepFile writes a linear chirp between two frequencies.
func (g *Generator) SweepFile(start, end float64) error {
	if _, err := g.ensureDir(); err != nil {
		return err
	}
	log.Printf("=== Generating Frequency Sweep: %g Hz to %g Hz ===", start, end)
	buf, err := synth.Sweep{Start: start, End: end}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("sweep_%.0fhz_to_%.0fhz.wav", start, end)
	return pcm.WriteFile(filepath.Join(g.OutputDir, name), buf)
}

// DroneFile writes a multi-voice drone.
func (g *Generator) DroneFile(frequencies []float64) error {
	if _, err := g.ensureDir(); err != nil {
		return err
	}
	labels := make([]string, len(frequencies))
	for i, f := range frequencies {
		labels[i] = fmt.Sprintf("%.0f", f)
	}
	log.Printf("=== Generating Drone: %s Hz ===", strings.Join(labels, ", "))
	buf, err := synth.Drone{Frequencies: frequencies}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("drone_%s.wav", strings.Join(labels, "_"))
	return pcm.WriteFile(filepath.Join(g.OutputDir, name), buf)
}

// BowlFile writes a singing bowl strike.
func (g *Generator) BowlFile(frequency float64) error {
	if _, err := g.ensureDir(); err != nil {
		return err
	}
	log.Printf("=== Generating Singing Bowl: %g Hz ===", frequency)
	buf, err := synth.SingingBowl{Frequency: frequency}.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("bowl_%.0fhz.wav", frequency)
	return pcm.WriteFile(filepath.Join(g.OutputDir, name), buf)
}

// Custom writes one file for an arbitrary frequency in the given mode:
// "sine", "binaural" (frequency becomes the beat over the carrier) or
// "isochronic" (frequency becomes the pulse rate).
func (g *Generator) Custom(frequency float64, mode string) error {
	if _, err := g.ensureDir(); err != nil {
		return err
	}
	log.Printf("=== Generating Custom Frequency: %g Hz (%s) ===", frequency, mode)

	var spec synth.Spec
	switch mode {
	case "sine":
		spec = synth.Tone{Frequency: frequency}
	case "binaural":
		spec = synth.Binaural{Base: g.BaseFreq, Beat: frequency}
	case "isochronic":
		spec = synth.Isochronic{Carrier: g.BaseFreq, Pulse: frequency}
	default:
		return fmt.Errorf("unknown mode %q (want sine, binaural or isochronic)", mode)
	}
	buf, err := spec.Render(g.Duration, g.Amplitude)
	if err != nil {
		return err
	}
	path := filepath.Join(g.OutputDir, fmt.Sprintf("custom_%.2fhz_%s.wav", frequency, mode))
	return pcm.WriteFile(path, buf)
}

// All renders every preset batch. Generation is referentially
// transparent and batches write to disjoint files, so they run
// concurrently, one goroutine per batch.
func (g *Generator) All(ctx context.Context) error {
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(g.Solfeggio)
	eg.Go(g.Angels)
	eg.Go(g.SpecialSet)
	eg.Go(g.BinauralSet)
	eg.Go(g.Schumann)
	eg.Go(g.ChakraMeditation)
	eg.Go(g.TuningComparison)
	eg.Go(g.Om)
	eg.Go(g.NoiseSet)
	return eg.Wait()
}
