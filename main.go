package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/golang/glog"

	e "github.com/tuboc/chip8vm/emulator"
	"github.com/tuboc/chip8vm/host"
)

var (
	filename = flag.String("f", "", "chip8 image file path")
	scale    = flag.Int("scale", host.DefaultScale, "window pixels per chip8 pixel")
	audio    = flag.String("audio", "sdl", "tone device: sdl, portaudio or none")
	toneHz   = flag.Float64("hz", host.DefaultFrequency, "tone frequency in Hz")
	cycles   = flag.Uint64("cycles", 0, "stop emulation after this many cycles, 0 runs forever")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if *filename == "" {
		glog.Fatalln("no rom given, use -f path/to/rom")
	}
	rom, err := e.LoadROM(*filename)
	if err != nil {
		glog.Fatalln("Failed to load rom: ", err)
	}

	if err := host.Init(); err != nil {
		glog.Fatalln(err)
	}
	tone, err := host.OpenTone(*audio, *toneHz)
	if err != nil {
		glog.Fatalln(err)
	}

	frames := e.NewLatest[e.Frame]()
	keys := e.NewLatest[e.KeyState]()

	cpu, err := e.NewCpu(rom, e.NewRenderer(frames), e.NewKeyboard(keys), e.WithTone(tone))
	if err != nil {
		glog.Fatalln("Failed to initiate Cpu: ", err)
	}

	h, err := host.New(*scale, frames, e.NewKeyPad(keys), tone)
	if err != nil {
		glog.Fatalln(err)
	}
	defer h.Close()

	go func() {
		if err := cpu.Run(*cycles); err != nil {
			glog.Errorf("recent instructions:\n%s", strings.Join(cpu.History(), "\n"))
			glog.Fatalf("emulation aborted: %v", err)
		}
		glog.Infof("stopped after %d cycles", cpu.Cycles())
	}()

	h.Run()
}
