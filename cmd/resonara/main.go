package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/resonara/resonara/internal/config"
	"github.com/resonara/resonara/internal/preset"
)

func main() {
	cfg := config.Load()

	output := flag.String("output", cfg.OutputDir, "output directory")
	duration := flag.Float64("duration", cfg.Duration, "duration in seconds per file")
	amplitude := flag.Float64("amplitude", cfg.Amplitude, "peak amplitude in (0, 1]")

	all := flag.Bool("all", false, "generate all preset frequencies")
	solfeggio := flag.Bool("solfeggio", false, "generate Solfeggio frequencies")
	binaural := flag.Bool("binaural", false, "generate binaural beat presets")
	angels := flag.Bool("angels", false, "generate angel frequencies")
	special := flag.Bool("special", false, "generate special frequencies")
	schumann := flag.Bool("schumann", false, "generate Schumann resonance")
	chakras := flag.Bool("chakras", false, "generate chakra meditation sequence")
	compareTuning := flag.Bool("compare-tuning", false, "generate 432 Hz vs 440 Hz comparison")
	om := flag.Bool("om", false, "generate Om tone (136.1 Hz with harmonics)")
	noise := flag.Bool("noise", false, "generate white/pink/brown noise backgrounds")

	sweep := flag.String("sweep", "", "frequency sweep as start:end, e.g. 100:1000")
	drone := flag.String("drone", "", "comma-separated drone frequencies, e.g. 110,220,330")
	bowl := flag.Float64("bowl", 0, "singing bowl fundamental (Hz)")
	custom := flag.Float64("custom", 0, "custom frequency (Hz)")
	mode := flag.String("mode", "sine", "mode for -custom: sine, binaural or isochronic")

	list := flag.Bool("list", false, "list all documented frequencies")
	flag.Parse()

	if *list {
		printTables()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := &preset.Generator{
		OutputDir: *output,
		Duration:  *duration,
		Amplitude: *amplitude,
		BaseFreq:  cfg.BaseFreq,
	}

	if *all {
		if err := gen.All(ctx); err != nil {
			log.Fatalf("generate all: %v", err)
		}
		log.Println("All frequencies generated")
		return
	}

	ran := false
	run := func(name string, fn func() error) {
		ran = true
		if err := fn(); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}

	if *solfeggio {
		run("solfeggio", gen.Solfeggio)
	}
	if *binaural {
		run("binaural", gen.BinauralSet)
	}
	if *angels {
		run("angels", gen.Angels)
	}
	if *special {
		run("special", gen.SpecialSet)
	}
	if *schumann {
		run("schumann", gen.Schumann)
	}
	if *chakras {
		run("chakras", gen.ChakraMeditation)
	}
	if *compareTuning {
		run("compare-tuning", gen.TuningComparison)
	}
	if *om {
		run("om", gen.Om)
	}
	if *noise {
		run("noise", gen.NoiseSet)
	}
	if *sweep != "" {
		start, end, err := parseSweep(*sweep)
		if err != nil {
			log.Fatalf("sweep: %v", err)
		}
		run("sweep", func() error { return gen.SweepFile(start, end) })
	}
	if *drone != "" {
		freqs, err := parseFrequencyList(*drone)
		if err != nil {
			log.Fatalf("drone: %v", err)
		}
		run("drone", func() error { return gen.DroneFile(freqs) })
	}
	if *bowl != 0 {
		run("bowl", func() error { return gen.BowlFile(*bowl) })
	}
	if *custom != 0 {
		run("custom", func() error { return gen.Custom(*custom, *mode) })
	}

	if !ran {
		flag.Usage()
	}
}

// parseSweep splits a "start:end" pair like 100:1000.
func parseSweep(s string) (start, end float64, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("want start:end, got %q", s)
	}
	start, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad start frequency %q", lo)
	}
	end, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad end frequency %q", hi)
	}
	return start, end, nil
}

func parseFrequencyList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	freqs := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad frequency %q", p)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func printTables() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("DOCUMENTED FREQUENCIES DATABASE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Println("\n--- Solfeggio Frequencies ---")
	for _, fi := range preset.Solfeggio {
		fmt.Printf("  %g Hz: %s\n", fi.Hz, fi.Desc)
	}

	fmt.Println("\n--- Angel Number Frequencies ---")
	for _, fi := range preset.Angels {
		fmt.Printf("  %g Hz: %s\n", fi.Hz, fi.Desc)
	}

	fmt.Println("\n--- Chakra Frequencies ---")
	for _, c := range preset.Chakras {
		fmt.Printf("  %g Hz: %s\n", c.Hz, c.Desc)
	}

	fmt.Println("\n--- Brainwave States (for Binaural Beats) ---")
	for _, st := range preset.BrainwaveStates {
		fmt.Printf("  %s (%g-%g Hz): %s\n", strings.ToUpper(st.Name), st.LowHz, st.HighHz, st.Desc)
	}

	fmt.Println("\n--- Special Frequencies ---")
	for _, fi := range preset.Special {
		fmt.Printf("  %g Hz: %s\n", fi.Hz, fi.Desc)
	}
}
