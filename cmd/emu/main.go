// Command emu loads a raw RV32I binary image and runs it to completion,
// against this repository's flat-buffer memory model.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/rvtoolchain/rv32i/cpu"
	"github.com/rvtoolchain/rv32i/emulator"
	"github.com/rvtoolchain/rv32i/trace"
)

func serveTrace(addr string, hub *trace.Hub) error {
	return http.ListenAndServe(addr, hub)
}

func main() {
	app := &cli.App{
		Name:      "emu",
		Usage:     "run a raw RV32I binary image to completion",
		ArgsUsage: "program.bin [load_address]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "log a line per executed step"},
			&cli.StringFlag{Name: "trace-addr", Usage: "serve a live websocket trace on this address, e.g. :8080"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		cli.HandleExitCoder(err)
		// HandleExitCoder exits the process for any ExitCoder/MultiError it
		// recognizes (which is what run always returns); reaching this line
		// means err was some other, unclassified error.
		log.Fatalf("emu: %v", err)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("usage: emu [--debug] program.bin [load_address]", 1)
	}

	img, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", c.Args().Get(0), err), 1)
	}

	var loadAddr uint32
	if c.Args().Len() >= 2 {
		v, err := strconv.ParseUint(c.Args().Get(1), 0, 32)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid load address %q: %v", c.Args().Get(1), err), 1)
		}
		loadAddr = uint32(v)
	}

	var logger trace.Logger
	if c.Bool("debug") {
		logger = func(format string, args ...any) { log.Printf(format, args...) }
	}

	var hub *trace.Hub
	if addr := c.String("trace-addr"); addr != "" {
		hub = trace.NewHub()
		go func() {
			log.Printf("emu: serving trace websocket on %s", addr)
			if err := serveTrace(addr, hub); err != nil {
				log.Printf("emu: trace server: %v", err)
			}
		}()
	}

	var observer func(emulator.Snapshot)
	if hub != nil || logger != nil {
		observer = trace.Observer(hub, logger)
	}

	result, err := emulator.Run(context.Background(), img, emulator.Config{
		LoadAddress: loadAddr,
		Observer:    observer,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if result.Status != cpu.SyscallExit {
		return cli.Exit(fmt.Sprintf("emu: program stopped with status %s after %d steps", result.Status, result.Steps), 1)
	}

	fmt.Printf("%d\n", result.ExitA0)
	return cli.Exit("", int(result.ExitA0&0xFF))
}
