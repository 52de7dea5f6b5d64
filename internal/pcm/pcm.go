// Package pcm converts rendered sample buffers to 16-bit PCM and moves
// them in and out of RIFF/WAVE containers.
package pcm

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/resonara/resonara/internal/synth"
)

const (
	maxSample = 32767
	minSample = -32768
)

// EncodePCM16 converts normalized float samples to 16-bit signed PCM,
// interleaving stereo frames as left,right,left,right. The conversion
// saturates: samples outside [-1, 1] clamp to the int16 range and the
// count of clamped samples is returned so callers can report hot input.
// Go leaves out-of-range float-to-int conversion implementation-dependent,
// so the clamp must be explicit rather than left to the cast.
func EncodePCM16(buf synth.Buffer) ([]int16, int) {
	in := buf.Interleaved()
	out := make([]int16, len(in))
	clipped := 0
	for i, s := range in {
		v := math.Round(s * maxSample)
		if v > maxSample {
			v = maxSample
			clipped++
		} else if v < minSample {
			v = minSample
			clipped++
		}
		out[i] = int16(v)
	}
	return out, clipped
}

// WriteFile encodes buf and writes it as a 16-bit PCM WAV file with the
// fixed process sample rate. The write is one shot: on failure the error
// is surfaced and the file may be left partial, but a partial file is
// never reported as success.
func WriteFile(path string, buf synth.Buffer) error {
	samples, clipped := EncodePCM16(buf)
	if clipped > 0 {
		log.Printf("%s: clamped %d out-of-range samples", path, clipped)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	enc := wav.NewEncoder(f, synth.SampleRate, synth.BitDepth, buf.Channels(), 1)
	ibuf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: buf.Channels(), SampleRate: synth.SampleRate},
		SourceBitDepth: synth.BitDepth,
	}
	if err := enc.Write(ibuf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes a WAV file back to interleaved int16 samples.
func ReadFile(path string) (samples []int16, channels, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	ibuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	samples = make([]int16, len(ibuf.Data))
	for i, v := range ibuf.Data {
		samples[i] = int16(v)
	}
	return samples, ibuf.Format.NumChannels, ibuf.Format.SampleRate, nil
}
