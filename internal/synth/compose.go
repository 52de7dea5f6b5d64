package synth

import (
	"errors"
	"fmt"
)

// Concatenate joins same-arity buffers end to end in argument order,
// preserving sample values exactly. Segments are independently generated,
// so their frequencies usually differ and the boundaries are allowed to
// have phase discontinuities; no crossfade is applied.
func Concatenate(buffers ...Buffer) (Buffer, error) {
	if len(buffers) == 0 {
		return Mono(nil), nil
	}
	switch buffers[0].(type) {
	case Mono:
		var out Mono
		for _, b := range buffers {
			m, ok := b.(Mono)
			if !ok {
				return nil, errors.New("concatenate: mixed channel layouts")
			}
			out = append(out, m...)
		}
		return out, nil
	case Stereo:
		var out Stereo
		for _, b := range buffers {
			s, ok := b.(Stereo)
			if !ok {
				return nil, errors.New("concatenate: mixed channel layouts")
			}
			out = append(out, s...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("concatenate: unsupported buffer type %T", buffers[0])
}

// Alternate chains repeats of the pair a,b: a b a b ... Used for A/B
// comparison tracks. Repeats below one are treated as one.
func Alternate(a, b Buffer, repeats int) (Buffer, error) {
	if repeats < 1 {
		repeats = 1
	}
	segments := make([]Buffer, 0, repeats*2)
	for i := 0; i < repeats; i++ {
		segments = append(segments, a, b)
	}
	return Concatenate(segments...)
}
