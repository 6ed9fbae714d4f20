package emulator

// advance tells Step how to move the program counter after a handler ran.
type advance uint8

const (
	advanceNext advance = iota // PC += 2
	advanceSkip                // PC += 4
	advanceJump                // handler already set PC
	advanceWait                // PC stays, instruction re-runs next cycle
)

type handler func(c *Cpu, ins Instruction) (advance, error)

var handlers = [...]handler{
	OpCls:     (*Cpu).opCls,
	OpRet:     (*Cpu).opRet,
	OpJp:      (*Cpu).opJp,
	OpCall:    (*Cpu).opCall,
	OpSeByte:  (*Cpu).opSeByte,
	OpSneByte: (*Cpu).opSneByte,
	OpSeReg:   (*Cpu).opSeReg,
	OpLdByte:  (*Cpu).opLdByte,
	OpAddByte: (*Cpu).opAddByte,
	OpLdReg:   (*Cpu).opLdReg,
	OpOr:      (*Cpu).opOr,
	OpAnd:     (*Cpu).opAnd,
	OpXor:     (*Cpu).opXor,
	OpAddReg:  (*Cpu).opAddReg,
	OpSub:     (*Cpu).opSub,
	OpShr:     (*Cpu).opShr,
	OpSubn:    (*Cpu).opSubn,
	OpShl:     (*Cpu).opShl,
	OpSneReg:  (*Cpu).opSneReg,
	OpLdI:     (*Cpu).opLdI,
	OpJpV0:    (*Cpu).opJpV0,
	OpRnd:     (*Cpu).opRnd,
	OpDrw:     (*Cpu).opDrw,
	OpSkp:     (*Cpu).opSkp,
	OpSknp:    (*Cpu).opSknp,
	OpLdVxDT:  (*Cpu).opLdVxDT,
	OpLdVxK:   (*Cpu).opLdVxK,
	OpLdDTVx:  (*Cpu).opLdDTVx,
	OpLdSTVx:  (*Cpu).opLdSTVx,
	OpAddI:    (*Cpu).opAddI,
	OpLdF:     (*Cpu).opLdF,
	OpLdB:     (*Cpu).opLdB,
	OpStore:   (*Cpu).opStore,
	OpLoad:    (*Cpu).opLoad,
}

func (c *Cpu) execute(ins Instruction) (advance, error) {
	if int(ins.Op) >= len(handlers) || handlers[ins.Op] == nil {
		return 0, &UnknownInstructionError{Opcode: ins.Word, Address: c.reg.PC.Address()}
	}
	return handlers[ins.Op](c, ins)
}

func skipIf(b bool) advance {
	if b {
		return advanceSkip
	}
	return advanceNext
}

// 00E0 clear display
func (c *Cpu) opCls(Instruction) (advance, error) {
	c.renderer.Clear()
	return advanceNext, nil
}

// 00EE return from subroutine
func (c *Cpu) opRet(Instruction) (advance, error) {
	addr, err := c.stack.Pop()
	if err != nil {
		return 0, err
	}
	return advanceJump, c.reg.PC.Set(addr)
}

// 1NNN goto NNN
func (c *Cpu) opJp(ins Instruction) (advance, error) {
	return advanceJump, c.reg.PC.Set(ins.NNN())
}

// 2NNN call NNN, returning to the following instruction
func (c *Cpu) opCall(ins Instruction) (advance, error) {
	if err := c.stack.Push(c.reg.PC.Next()); err != nil {
		return 0, err
	}
	return advanceJump, c.reg.PC.Set(ins.NNN())
}

// 3XNN if(Vx==NN)
func (c *Cpu) opSeByte(ins Instruction) (advance, error) {
	return skipIf(c.reg.V[ins.X()] == ins.KK()), nil
}

// 4XNN if(Vx!=NN)
func (c *Cpu) opSneByte(ins Instruction) (advance, error) {
	return skipIf(c.reg.V[ins.X()] != ins.KK()), nil
}

// 5XY0 if(Vx==Vy)
func (c *Cpu) opSeReg(ins Instruction) (advance, error) {
	return skipIf(c.reg.V[ins.X()] == c.reg.V[ins.Y()]), nil
}

// 6XNN Vx = NN
func (c *Cpu) opLdByte(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] = ins.KK()
	return advanceNext, nil
}

// 7XNN Vx += NN (Carry flag is not changed)
func (c *Cpu) opAddByte(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] += ins.KK()
	return advanceNext, nil
}

// 8XY0 Vx=Vy
func (c *Cpu) opLdReg(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] = c.reg.V[ins.Y()]
	return advanceNext, nil
}

// The bitwise ops leave VF alone.

// 8XY1 Vx=Vx|Vy
func (c *Cpu) opOr(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] |= c.reg.V[ins.Y()]
	return advanceNext, nil
}

// 8XY2 Vx=Vx&Vy
func (c *Cpu) opAnd(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] &= c.reg.V[ins.Y()]
	return advanceNext, nil
}

// 8XY3 Vx=Vx^Vy
func (c *Cpu) opXor(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] ^= c.reg.V[ins.Y()]
	return advanceNext, nil
}

// The flag-setting ALU ops write Vx first and VF last, so VF as the
// destination ends up holding the flag.

// 8XY4 Vx += Vy, VF = carry
func (c *Cpu) opAddReg(ins Instruction) (advance, error) {
	vx, vy := c.reg.V[ins.X()], c.reg.V[ins.Y()]
	c.reg.V[ins.X()] = vx + vy
	c.reg.setFlag(uint16(vx)+uint16(vy) > 0xff)
	return advanceNext, nil
}

// 8XY5 Vx -= Vy, VF = not borrow
func (c *Cpu) opSub(ins Instruction) (advance, error) {
	vx, vy := c.reg.V[ins.X()], c.reg.V[ins.Y()]
	c.reg.V[ins.X()] = vx - vy
	c.reg.setFlag(vx >= vy)
	return advanceNext, nil
}

// 8XY6 Vx = Vy>>1, VF = bit shifted out of Vy
func (c *Cpu) opShr(ins Instruction) (advance, error) {
	vy := c.reg.V[ins.Y()]
	c.reg.V[ins.X()] = vy >> 1
	c.reg.V[FlagRegister] = vy & 0x01
	return advanceNext, nil
}

// 8XY7 Vx = Vy-Vx, VF = not borrow
func (c *Cpu) opSubn(ins Instruction) (advance, error) {
	vx, vy := c.reg.V[ins.X()], c.reg.V[ins.Y()]
	c.reg.V[ins.X()] = vy - vx
	c.reg.setFlag(vy >= vx)
	return advanceNext, nil
}

// 8XYE Vx = Vy<<1, VF = bit shifted out of Vy
func (c *Cpu) opShl(ins Instruction) (advance, error) {
	vy := c.reg.V[ins.Y()]
	c.reg.V[ins.X()] = vy << 1
	c.reg.V[FlagRegister] = vy >> 7
	return advanceNext, nil
}

// 9XY0 if(Vx!=Vy)
func (c *Cpu) opSneReg(ins Instruction) (advance, error) {
	return skipIf(c.reg.V[ins.X()] != c.reg.V[ins.Y()]), nil
}

// ANNN I = NNN
func (c *Cpu) opLdI(ins Instruction) (advance, error) {
	c.reg.I = ins.NNN()
	return advanceNext, nil
}

// BNNN PC=V0+NNN
func (c *Cpu) opJpV0(ins Instruction) (advance, error) {
	return advanceJump, c.reg.PC.Set(uint16(c.reg.V[0]) + ins.NNN())
}

// CXNN Vx=rand()&NN
func (c *Cpu) opRnd(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] = uint8(c.rand.Intn(256)) & ins.KK()
	return advanceNext, nil
}

// DXYN draw(Vx,Vy,N), VF = collision
func (c *Cpu) opDrw(ins Instruction) (advance, error) {
	sprite, err := c.mem.Read(c.reg.I, int(ins.N()))
	if err != nil {
		return 0, err
	}
	collision := c.renderer.Draw(sprite, c.reg.V[ins.X()], c.reg.V[ins.Y()])
	c.reg.setFlag(collision)
	return advanceNext, nil
}

// EX9E if(key()==Vx)
func (c *Cpu) opSkp(ins Instruction) (advance, error) {
	return skipIf(c.keyboard.IsPressed(c.reg.V[ins.X()])), nil
}

// EXA1 if(key()!=Vx)
func (c *Cpu) opSknp(ins Instruction) (advance, error) {
	return skipIf(!c.keyboard.IsPressed(c.reg.V[ins.X()])), nil
}

// FX07 Vx = get_delay()
func (c *Cpu) opLdVxDT(ins Instruction) (advance, error) {
	c.reg.V[ins.X()] = c.reg.DT
	return advanceNext, nil
}

// FX0A Vx = get_key(), holding PC until a key is down
func (c *Cpu) opLdVxK(ins Instruction) (advance, error) {
	key, ok := c.keyboard.PressedKey()
	if !ok {
		return advanceWait, nil
	}
	c.reg.V[ins.X()] = key
	return advanceNext, nil
}

// FX15 delay_timer(Vx)
func (c *Cpu) opLdDTVx(ins Instruction) (advance, error) {
	c.reg.DT = c.reg.V[ins.X()]
	return advanceNext, nil
}

// FX18 sound_timer(Vx)
func (c *Cpu) opLdSTVx(ins Instruction) (advance, error) {
	c.reg.ST = c.reg.V[ins.X()]
	return advanceNext, nil
}

// FX1E I +=Vx (VF untouched)
func (c *Cpu) opAddI(ins Instruction) (advance, error) {
	c.reg.I += uint16(c.reg.V[ins.X()])
	return advanceNext, nil
}

// FX29 I=sprite_addr[Vx]
func (c *Cpu) opLdF(ins Instruction) (advance, error) {
	c.reg.I = CharacterSpritesOffset + uint16(c.reg.V[ins.X()]&0xf)*CharacterSpriteBytes
	return advanceNext, nil
}

// FX33 set_BCD(Vx)
func (c *Cpu) opLdB(ins Instruction) (advance, error) {
	vx := c.reg.V[ins.X()]
	return advanceNext, c.mem.Write(c.reg.I, []uint8{vx / 100, (vx / 10) % 10, vx % 10})
}

// FX55 reg_dump(Vx,&I), I unchanged
func (c *Cpu) opStore(ins Instruction) (advance, error) {
	return advanceNext, c.mem.Write(c.reg.I, c.reg.V[:ins.X()+1])
}

// FX65 reg_load(Vx,&I), I unchanged
func (c *Cpu) opLoad(ins Instruction) (advance, error) {
	b, err := c.mem.Read(c.reg.I, int(ins.X())+1)
	if err != nil {
		return 0, err
	}
	copy(c.reg.V[:], b)
	return advanceNext, nil
}
