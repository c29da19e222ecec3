package vm

import (
	"errors"
	"fmt"

	"github.com/oaxley/gobrainfuck/types"
)

// ErrUnbalancedBrackets is returned when a ']' has no matching '['
// or a '[' is never closed. Execution must not start in that case.
var ErrUnbalancedBrackets = errors.New("unbalanced number of '[' and ']' in the source code")

// JumpTable maps the offset of a bracket instruction to the offset
// execution continues at when the jump is taken.
type JumpTable map[int]int

// ComputeJumps scans the code once and resolves every bracket pair.
// The entries point one past the partner bracket, not at it:
//
//	jumps[open]  = close + 1
//	jumps[close] = open + 1
//
// so the engine can overwrite its already-advanced pc with the stored
// target directly. Pure function of the code: same bytes, same table.
func ComputeJumps(code []byte) (JumpTable, error) {
	jumps := make(JumpTable)
	stack := types.NewStack[int]()

	for offset, b := range code {
		switch Instruction(b) {
		case InstructionJumpFwd:
			stack.Push(offset)

		case InstructionJumpBck:
			open, err := stack.Pop()
			if err != nil {
				return nil, fmt.Errorf("%w: ']' at offset %d has no matching '['", ErrUnbalancedBrackets, offset)
			}
			jumps[open] = offset + 1
			jumps[offset] = open + 1
		}
	}

	if !stack.Empty() {
		return nil, fmt.Errorf("%w: %d '[' never closed", ErrUnbalancedBrackets, stack.Len())
	}

	return jumps, nil
}
