package vm

import (
	"errors"
	"fmt"
	"os"

	"github.com/oaxley/gobrainfuck/device"
	"go.uber.org/zap"
)

const (
	// TapeSize is the number of data cells. Power of two, so pointer
	// wraparound is a mask instead of a modulo.
	TapeSize = 1 << 15

	tapeMask  = TapeSize - 1
	valueMask = 0xff
)

// ErrStepLimit is returned by Run when a dispatch budget set with
// MaxStepsOpt runs out. It is an embedding bound, not a language error.
var ErrStepLimit = errors.New("instruction budget exhausted")

type VM struct {
	// program counter, index of the next instruction byte
	pc int
	// data pointer, index of the current cell
	dp int

	// instruction bytecode, read-only once loaded
	code []byte
	// the data tape
	data [TapeSize]byte
	// bracket offset -> continuation offset, read-only
	jumps JumpTable

	in  device.Reader
	out device.Writer

	maxSteps int
	steps    int

	logger *zap.Logger
}

type VMOpt func(*VM) *VM

func LoggerOpt(l *zap.Logger) VMOpt {
	return func(vm *VM) *VM {
		vm.logger = l
		return vm
	}
}

func InputOpt(r device.Reader) VMOpt {
	return func(vm *VM) *VM {
		vm.in = r
		return vm
	}
}

func OutputOpt(w device.Writer) VMOpt {
	return func(vm *VM) *VM {
		vm.out = w
		return vm
	}
}

// MaxStepsOpt bounds the number of dispatched instructions. The core
// has no clock; this is the external limit an embedder imposes.
// Zero means unbounded.
func MaxStepsOpt(n int) VMOpt {
	return func(vm *VM) *VM {
		vm.maxSteps = n
		return vm
	}
}

// NewVM loads the code and resolves the jump table up front. A program
// with unbalanced brackets fails here; no instruction is ever
// dispatched with an incomplete table.
func NewVM(code []byte, opts ...VMOpt) (*VM, error) {
	jumps, err := ComputeJumps(code)
	if err != nil {
		return nil, err
	}

	term := device.NewTerminal(os.Stdin, os.Stdout)
	vm := &VM{
		pc:     0,
		dp:     0,
		code:   code,
		jumps:  jumps,
		in:     term,
		out:    term,
		logger: zap.L(),
	}

	for _, opt := range opts {
		vm = opt(vm)
	}

	vm.logger = vm.logger.Named("vm")

	return vm, nil
}

// Run dispatches until pc runs off the end of the code. That is the
// only success path; there is no halt instruction.
func (vm *VM) Run() error {
	for vm.pc < len(vm.code) {
		if vm.maxSteps > 0 && vm.steps >= vm.maxSteps {
			return fmt.Errorf("%w: %d instructions", ErrStepLimit, vm.steps)
		}

		// read the next opcode and advance the program counter
		// before applying the effect. A jump handler then keys the
		// table with pc-1, its own offset.
		inst := Instruction(vm.code[vm.pc])
		vm.pc += 1
		vm.steps += 1

		err := vm.Exec(inst)
		if err != nil {
			return fmt.Errorf("vm run: %w", err)
		}
	}
	return nil
}

func (vm *VM) Exec(inst Instruction) error {
	switch inst {
	case InstructionIncValue:
		vm.data[vm.dp] = (vm.data[vm.dp] + 1) & valueMask

	case InstructionDecValue:
		vm.data[vm.dp] = (vm.data[vm.dp] - 1) & valueMask

	case InstructionIncPtr:
		vm.dp = (vm.dp + 1) & tapeMask

	case InstructionDecPtr:
		vm.dp = (vm.dp - 1 + TapeSize) & tapeMask

	case InstructionJumpFwd:
		if vm.data[vm.dp] == 0 {
			vm.pc = vm.jumpTarget(vm.pc - 1)
		}

	case InstructionJumpBck:
		if vm.data[vm.dp] != 0 {
			vm.pc = vm.jumpTarget(vm.pc - 1)
		}

	case InstructionWriteChar:
		err := vm.out.WriteChar(vm.data[vm.dp])
		if err != nil {
			return fmt.Errorf("write char: %w", err)
		}

	case InstructionReadChar:
		c, ok, err := vm.in.ReadChar()
		if err != nil {
			return fmt.Errorf("read char: %w", err)
		}
		// no character available: leave the cell untouched and keep
		// going, same as the exhausted-input behavior programs
		// already rely on
		if ok {
			vm.data[vm.dp] = c & valueMask
		}

	default:
		// comment byte
		vm.logger.Debug("skipping unknown opcode",
			zap.Uint8("byte", byte(inst)),
			zap.Int("offset", vm.pc-1),
		)
	}
	return nil
}

// jumpTarget looks up the continuation offset for the bracket at the
// given offset. The resolver guarantees an entry for every bracket it
// accepted; a miss is a defect, not a runtime error.
func (vm *VM) jumpTarget(offset int) int {
	target, exists := vm.jumps[offset]
	if !exists {
		panic(fmt.Sprintf("no jump entry for bracket at offset %d", offset))
	}

	vm.logger.Debug("jump",
		zap.Int("from", offset),
		zap.Int("to", target),
	)
	return target
}

// Cell returns the value at the given tape index.
func (vm *VM) Cell(idx int) byte {
	return vm.data[idx&tapeMask]
}

// DataPointer returns the current data pointer.
func (vm *VM) DataPointer() int {
	return vm.dp
}

// Steps returns the number of instructions dispatched so far.
func (vm *VM) Steps() int {
	return vm.steps
}
