package emulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"
)

type opRecord struct {
	addr uint16
	ins  Instruction
}

// Cpu runs the fetch-decode-execute loop and the 60Hz timers.
// It is owned by a single emulation goroutine.
type Cpu struct {
	reg      Registers
	stack    Stack
	mem      *Memory
	renderer *Renderer
	keyboard *Keyboard
	tone     Tone

	now      func() time.Time
	rand     *rand.Rand
	lastTick time.Time

	awaitingKey bool
	cycles      uint64

	ophistory      [OpHistoryNum]opRecord
	ophistoryIndex int
	ophistoryLen   int
}

// Option configures a Cpu.
type Option func(*Cpu)

// WithTone sets the sound device driven by the sound timer.
func WithTone(t Tone) Option {
	return func(c *Cpu) { c.tone = t }
}

// WithClock replaces time.Now for the timer gate.
func WithClock(now func() time.Time) Option {
	return func(c *Cpu) { c.now = now }
}

// WithRand sets the source for RND.
func WithRand(r *rand.Rand) Option {
	return func(c *Cpu) { c.rand = r }
}

// NewCpu loads program at ProgramOffset and returns a Cpu ready to run it.
func NewCpu(program []byte, r *Renderer, k *Keyboard, opts ...Option) (*Cpu, error) {
	c := &Cpu{
		reg:      newRegisters(),
		mem:      NewMemory(),
		renderer: r,
		keyboard: k,
		tone:     NullTone{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(c.now().UnixNano()))
	}
	if err := c.mem.LoadProgram(program); err != nil {
		return nil, err
	}
	c.lastTick = c.now()
	return c, nil
}

// Registers returns a copy of the register file.
func (c *Cpu) Registers() Registers { return c.reg }

// Memory gives access to the memory image.
func (c *Cpu) Memory() *Memory { return c.mem }

// AwaitingKey reports whether the Cpu is parked on LD Vx,K.
func (c *Cpu) AwaitingKey() bool { return c.awaitingKey }

// Cycles is the number of completed Step calls.
func (c *Cpu) Cycles() uint64 { return c.cycles }

// History returns the most recently executed instructions, oldest first.
func (c *Cpu) History() []string {
	h := make([]string, 0, c.ophistoryLen)
	start := c.ophistoryIndex - c.ophistoryLen
	if start < 0 {
		start += OpHistoryNum
	}
	for i := 0; i < c.ophistoryLen; i++ {
		r := c.ophistory[(start+i)%OpHistoryNum]
		h = append(h, fmt.Sprintf("%03X-%04X %s", r.addr, r.ins.Word, r.ins))
	}
	return h
}

// Run steps the machine until an error occurs or limit cycles have run.
// A zero limit runs forever. While parked on LD Vx,K the loop sleeps until
// the key state changes or one timer frame passes, so timers keep running.
func (c *Cpu) Run(limit uint64) error {
	for limit == 0 || c.cycles < limit {
		if err := c.Step(); err != nil {
			return err
		}
		if c.awaitingKey {
			c.keyboard.wait(TimerPeriod)
		}
	}
	return nil
}

// Step runs one cycle: timers, fetch, decode, execute, advance.
func (c *Cpu) Step() error {
	c.updateTimers()

	pc := c.reg.PC.Address()
	word, err := c.mem.Word(pc)
	if err != nil {
		return fmt.Errorf("fetch at %03X: %w", pc, err)
	}
	ins := Decode(word)
	if glog.V(3) {
		glog.Infof("%03X-%04X %s", pc, word, ins)
	}

	adv, err := c.execute(ins)
	if err != nil {
		return fmt.Errorf("%03X %s: %w", pc, ins, err)
	}
	switch adv {
	case advanceNext:
		c.reg.PC.Increment()
	case advanceSkip:
		c.reg.PC.Skip()
	}
	c.awaitingKey = adv == advanceWait

	c.ophistory[c.ophistoryIndex] = opRecord{addr: pc, ins: ins}
	c.ophistoryIndex = (c.ophistoryIndex + 1) % OpHistoryNum
	if c.ophistoryLen < OpHistoryNum {
		c.ophistoryLen++
	}
	c.cycles++
	return nil
}

// updateTimers decays DT and ST by the whole number of 60Hz frames elapsed
// since the last decay, never below zero, and drives the tone.
func (c *Cpu) updateTimers() {
	now := c.now()
	elapsed := now.Sub(c.lastTick)
	if elapsed < TimerPeriod {
		return
	}
	frames := elapsed / TimerPeriod
	c.lastTick = c.lastTick.Add(frames * TimerPeriod)

	c.reg.DT = decay(c.reg.DT, frames)
	c.reg.ST = decay(c.reg.ST, frames)
	if c.reg.ST > 0 {
		c.tone.ToneOn(c.reg.ST)
	} else {
		c.tone.ToneOff()
	}
}

func decay(t uint8, frames time.Duration) uint8 {
	if time.Duration(t) <= frames {
		return 0
	}
	return t - uint8(frames)
}
