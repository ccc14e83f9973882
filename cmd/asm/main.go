// Command asm assembles RV32I textual assembly into a raw binary image.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rvtoolchain/rv32i/assembler"
)

func main() {
	app := &cli.App{
		Name:      "asm",
		Usage:     "assemble RV32I textual assembly into a raw binary image",
		ArgsUsage: "input.s output.bin",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "print section sizes and label addresses"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("asm: %v", err)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: asm [--debug] input.s output.bin", 1)
	}
	inPath, outPath := c.Args().Get(0), c.Args().Get(1)

	src, err := os.ReadFile(inPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", inPath, err), 1)
	}

	res, err := assembler.Assemble(string(src))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := os.WriteFile(outPath, res.Image, 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("writing %s: %v", outPath, err), 1)
	}

	if c.Bool("debug") {
		log.Printf("asm: text=%d data=%d total=%d bytes", res.TextSize, res.DataSize, len(res.Image))
		for name, addr := range res.Labels {
			log.Printf("asm: label %s = 0x%08X", name, addr)
		}
	}

	return nil
}
