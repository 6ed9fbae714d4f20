package emulator

// ProgramCounter holds the address of the instruction being executed.
// It never points below ProgramOffset.
type ProgramCounter struct {
	addr uint16
}

func newProgramCounter() ProgramCounter {
	return ProgramCounter{addr: ProgramOffset}
}

func (p *ProgramCounter) Address() uint16 { return p.addr }

// Next is the address of the following instruction.
func (p *ProgramCounter) Next() uint16 { return p.addr + 2 }

func (p *ProgramCounter) Increment() { p.addr += 2 }

// Skip steps over the following instruction.
func (p *ProgramCounter) Skip() { p.addr += 4 }

// Set jumps to addr.
func (p *ProgramCounter) Set(addr uint16) error {
	if addr < ProgramOffset {
		return &InvalidAddressError{Target: addr}
	}
	p.addr = addr
	return nil
}

// Stack is the bounded call stack of return addresses.
type Stack struct {
	slots [StackDepth]uint16
	depth int
}

// Push stores a return address.
func (s *Stack) Push(addr uint16) error {
	if s.depth == StackDepth {
		return ErrStackOverflow
	}
	s.slots[s.depth] = addr
	s.depth++
	return nil
}

// Pop removes and returns the most recent return address.
func (s *Stack) Pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.slots[s.depth], nil
}

// Depth is the number of addresses currently on the stack.
func (s *Stack) Depth() int { return s.depth }

// Registers is the machine register file.
type Registers struct {
	V  [RegisterCount]uint8 // V[0xF] is the flag register
	I  uint16               // index register
	DT uint8                // delay timer
	ST uint8                // sound timer
	PC ProgramCounter
}

func newRegisters() Registers {
	return Registers{PC: newProgramCounter()}
}

func (r *Registers) setFlag(b bool) {
	if b {
		r.V[FlagRegister] = 1
	} else {
		r.V[FlagRegister] = 0
	}
}
