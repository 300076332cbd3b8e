package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-fxchain/dsp/dither"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	errNotWAV              = errors.New("not a valid WAV file")
	errNotPCM              = errors.New("only integer PCM WAV input is supported")
	errUnsupportedBitDepth = errors.New("unsupported output bit depth")
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// checkOutputBitDepth accepts the bit depths encodeMono can write.
func checkOutputBitDepth(bits int) error {
	if bits != 16 && bits != 24 {
		return fmt.Errorf("%w: %d (want 16 or 24)", errUnsupportedBitDepth, bits)
	}
	return nil
}

// monoClip is a decoded mono signal with its source format.
type monoClip struct {
	samples    []float32
	sampleRate int
	bitDepth   int
	channels   int
}

// decodeMono reads a PCM WAV stream and averages all channels to mono.
func decodeMono(r io.ReadSeeker) (monoClip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return monoClip{}, errNotWAV
	}
	// Extensible headers are read as PCM; go-audio does not expose the subformat.
	if dec.WavAudioFormat != wavFormatPCM && dec.WavAudioFormat != wavFormatExtensible {
		return monoClip{}, fmt.Errorf("decode: %w (format tag %d)", errNotPCM, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return monoClip{}, fmt.Errorf("decode: %w", err)
	}

	bits := int(dec.BitDepth)
	if bits != 16 && bits != 24 && bits != 32 {
		return monoClip{}, fmt.Errorf("decode: unsupported bit depth %d", bits)
	}
	channels := int(dec.NumChans)
	if channels < 1 {
		return monoClip{}, fmt.Errorf("decode: invalid channel count %d", channels)
	}

	scale := 1 / float64(int64(1)<<(bits-1))
	frames := len(buf.Data) / channels
	samples := make([]float32, frames)
	for i := range samples {
		var sum float64
		for ch := range channels {
			sum += float64(buf.Data[i*channels+ch])
		}
		samples[i] = float32(sum / float64(channels) * scale)
	}

	return monoClip{
		samples:    samples,
		sampleRate: int(dec.SampleRate),
		bitDepth:   bits,
		channels:   channels,
	}, nil
}

// encodeMono writes samples as a mono PCM WAV stream at the quantizer's bit
// depth. Samples outside [-1, 1] are clipped.
func encodeMono(w io.WriteSeeker, samples []float32, sampleRate int, q *dither.Quantizer) error {
	bitDepth := q.BitDepth()
	if err := checkOutputBitDepth(bitDepth); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	data := make([]int, len(samples))
	q.QuantizeBlock(data, samples)

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
