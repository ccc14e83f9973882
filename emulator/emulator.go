// Package emulator provides the integration glue that loads an assembled
// image into memory and drives cpu.Step in a loop: register
// initialization followed by a bounded step loop, targeting a flat-buffer
// memory model and a Linux-style ecall surface rather than a
// memory-mapped OS region and interrupt model.
package emulator

import (
	"context"
	"fmt"

	"github.com/rvtoolchain/rv32i/cpu"
	"github.com/rvtoolchain/rv32i/memory"
	"github.com/rvtoolchain/rv32i/syscall"
)

// defaultStepLimit bounds runaway guest programs.
const defaultStepLimit = 1_000_000

// defaultStackWindow is the stack window this package asks memory.New for
// by default, enough for the example programs in this repository's own
// test suite. Any non-zero window makes memory.New back the whole range
// [0, memory.StackTop), so the default image is about 2 GiB.
const defaultStackWindow = 64 * 1024

// NoStackWindow disables automatic stack backing; pass it as
// Config.StackWindow to restore the documented default restriction of
// backing no stack region at all.
const NoStackWindow = ^uint32(0)

// Config controls how Run sets up memory and the CPU before stepping.
type Config struct {
	LoadAddress uint32
	MemorySize  uint32
	StackWindow uint32
	StepLimit   int
	Syscalls    cpu.Syscall

	// Observer, if non-nil, is called after every step with a snapshot of
	// the machine. It is a pure presentation hook: cpu.Step never calls
	// it directly, and Run calls it synchronously between steps, so a
	// slow observer (e.g. the trace package's websocket broadcaster)
	// throttles emulation but never races with it.
	Observer func(snapshot Snapshot)
}

// Snapshot is the (pc, registers, status) triple the trace package
// broadcasts after each step.
type Snapshot struct {
	PC        uint32
	Registers [32]uint32
	Status    cpu.Status
	Step      int
}

// Result is what Run reports once the guest program stops stepping.
type Result struct {
	Status cpu.Status
	Steps  int
	ExitA0 uint32
}

// Run loads img at cfg.LoadAddress, initializes PC to that address, and
// steps the CPU until it reports a non-OK status or the step limit is
// reached. ctx is checked between steps so a driver can honor Ctrl-C; the
// cpu.CPU.Step method itself takes no context.
func Run(ctx context.Context, img []byte, cfg Config) (Result, error) {
	size := cfg.MemorySize
	if size == 0 {
		size = memory.MemorySize
	}
	stackWindow := cfg.StackWindow
	switch stackWindow {
	case 0:
		stackWindow = defaultStackWindow
	case NoStackWindow:
		stackWindow = 0
	}
	stepLimit := cfg.StepLimit
	if stepLimit == 0 {
		stepLimit = defaultStepLimit
	}

	mem := memory.New(size, stackWindow)
	if status := mem.LoadImage(cfg.LoadAddress, img); status != memory.OK {
		return Result{}, fmt.Errorf("emulator: loading image at 0x%08X: %s", cfg.LoadAddress, status)
	}

	syscalls := cfg.Syscalls
	if syscalls == nil {
		syscalls = syscall.New()
	}

	c := cpu.New(syscalls)
	c.SetPC(cfg.LoadAddress)

	return step(ctx, c, mem, stepLimit, cfg.Observer)
}

func step(ctx context.Context, c *cpu.CPU, mem *memory.Memory, stepLimit int, observer func(Snapshot)) (Result, error) {
	var status cpu.Status
	steps := 0
	for steps < stepLimit {
		select {
		case <-ctx.Done():
			return Result{Status: status, Steps: steps}, ctx.Err()
		default:
		}

		status = c.Step(mem)
		steps++

		if observer != nil {
			var regs [32]uint32
			for i := range regs {
				regs[i] = c.Register(uint32(i))
			}
			observer(Snapshot{PC: c.PC(), Registers: regs, Status: status, Step: steps})
		}

		if status != cpu.OK {
			break
		}
	}

	return Result{Status: status, Steps: steps, ExitA0: c.Register(10)}, nil
}
