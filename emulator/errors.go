package emulator

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when CALL is issued with all stack slots in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when RET is issued on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrROMTooLarge is returned when a program does not fit above ProgramOffset.
	ErrROMTooLarge = errors.New("rom does not fit into memory")
)

// A MemoryAccessError is returned when a read or write range leaves [0, MemorySize).
type MemoryAccessError struct {
	Address uint16
	Length  int
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("memory access out of range: %03X+%d", e.Address, e.Length)
}

// An UnknownInstructionError is returned when a word matches no opcode pattern.
type UnknownInstructionError struct {
	Opcode  uint16
	Address uint16
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unexpected instruction %04X at %03X", e.Opcode, e.Address)
}

// An InvalidAddressError is returned when the program counter would be set below ProgramOffset.
type InvalidAddressError struct {
	Target uint16
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("program counter target %03X is below %03X", e.Target, ProgramOffset)
}
