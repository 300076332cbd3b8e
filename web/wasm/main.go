//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-fxchain/dsp/effectchain"
	"github.com/cwbudde/algo-fxchain/internal/webdemo"
)

var (
	engine  *webdemo.Engine
	funcs   []js.Func
	scratch []float32
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 48000.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setParams", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		cfg := engine.Params()
		cfg.Gain = floatField(p, "gain", cfg.Gain)
		cfg.LowpassCutoff = floatField(p, "lowpassCutoff", cfg.LowpassCutoff)
		cfg.HighpassCutoff = floatField(p, "highpassCutoff", cfg.HighpassCutoff)
		cfg.Distortion = floatField(p, "distortion", cfg.Distortion)
		cfg.DelayTime = floatField(p, "delayTime", cfg.DelayTime)
		cfg.DelayFeedback = floatField(p, "delayFeedback", cfg.DelayFeedback)
		cfg.DelayMix = floatField(p, "delayMix", cfg.DelayMix)
		engine.SetParams(cfg)
		return js.Null()
	}))

	api.Set("setSpectrum", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		cur := engine.Spectrum()
		err := engine.SetSpectrum(webdemo.SpectrumParams{
			FFTSize:   int(floatField(p, "fftSize", float64(cur.FFTSize))),
			Overlap:   floatField(p, "overlap", cur.Overlap),
			Smoothing: floatField(p, "smoothing", cur.Smoothing),
			Window:    stringField(p, "window", cur.Window),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	// process runs the chain in place on a Float32Array.
	api.Set("process", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		arr := args[0]
		n := arr.Length()
		if cap(scratch) < n {
			scratch = make([]float32, n)
		}
		buf := scratch[:n]
		for i := 0; i < n; i++ {
			buf[i] = float32(arr.Index(i).Float())
		}
		engine.Process(buf)
		for i := 0; i < n; i++ {
			arr.SetIndex(i, buf[i])
		}
		return js.Null()
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if engine != nil {
			engine.Reset()
		}
		return js.Null()
	}))

	api.Set("responseCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		return float32Array(engine.ResponseCurveDB(float64Slice(args[0])))
	}))

	api.Set("spectrum", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		return float32Array(engine.SpectrumCurveDB(float64Slice(args[0])))
	}))

	api.Set("levels", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		l := engine.Levels()
		out := js.Global().Get("Object").New()
		out.Set("peakDB", l.PeakDB)
		out.Set("rmsDB", l.RMSDB)
		out.Set("holdDB", l.HoldDB)
		out.Set("clips", l.Clips)
		return out
	}))

	api.Set("bufferSize", export(func(args []js.Value) any {
		if engine == nil {
			return 0
		}
		return engine.BufferSizeBytes()
	}))

	api.Set("memoryUsage", export(func(args []js.Value) any {
		if engine == nil {
			return 0
		}
		return engine.MemoryUsage()
	}))

	api.Set("defaults", export(func(args []js.Value) any {
		d := effectchain.DefaultConfig()
		out := js.Global().Get("Object").New()
		out.Set("gain", d.Gain)
		out.Set("lowpassCutoff", d.LowpassCutoff)
		out.Set("highpassCutoff", d.HighpassCutoff)
		out.Set("distortion", d.Distortion)
		out.Set("delayTime", d.DelayTime)
		out.Set("delayFeedback", d.DelayFeedback)
		out.Set("delayMix", d.DelayMix)
		return out
	}))

	js.Global().Set("AlgoFXChain", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func floatField(obj js.Value, name string, fallback float64) float64 {
	v := obj.Get(name)
	if v.Type() != js.TypeNumber {
		return fallback
	}
	return v.Float()
}

func stringField(obj js.Value, name, fallback string) string {
	v := obj.Get(name)
	if v.Type() != js.TypeString {
		return fallback
	}
	return v.String()
}

func float64Slice(arr js.Value) []float64 {
	out := make([]float64, arr.Length())
	for i := range out {
		out[i] = arr.Index(i).Float()
	}
	return out
}

func float32Array(values []float64) js.Value {
	arr := js.Global().Get("Float32Array").New(len(values))
	for i := range values {
		arr.SetIndex(i, values[i])
	}
	return arr
}
