package vm

type Instruction byte

const (
	InstructionIncValue  Instruction = 0x2b // '+' increment the value at the data pointer
	InstructionReadChar  Instruction = 0x2c // ',' read a char from the input device
	InstructionDecValue  Instruction = 0x2d // '-' decrement the value at the data pointer
	InstructionWriteChar Instruction = 0x2e // '.' write a char to the output device
	InstructionDecPtr    Instruction = 0x3c // '<' move the data pointer to the left
	InstructionIncPtr    Instruction = 0x3e // '>' move the data pointer to the right
	InstructionJumpFwd   Instruction = 0x5b // '[' jump forward if the data value is 0
	InstructionJumpBck   Instruction = 0x5d // ']' jump backward if the data value is not 0
)

// Known reports whether the byte is one of the eight opcodes.
// Anything else is a comment byte and dispatches as a no-op.
func (i Instruction) Known() bool {
	switch i {
	case InstructionIncValue,
		InstructionReadChar,
		InstructionDecValue,
		InstructionWriteChar,
		InstructionDecPtr,
		InstructionIncPtr,
		InstructionJumpFwd,
		InstructionJumpBck:
		return true
	}
	return false
}

func (i Instruction) String() string {
	if i.Known() {
		return string(byte(i))
	}
	return "noop"
}
