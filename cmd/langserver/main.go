// Command langserver runs the RV32I assembly language server, speaking
// JSON-RPC 2.0 over stdin/stdout by default or over TCP when --tcp is
// given.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rvtoolchain/rv32i/langserver"
)

func main() {
	app := &cli.App{
		Name:  "langserver",
		Usage: "run the RV32I assembly language server",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "tcp", Usage: "listen on TCP instead of stdin/stdout"},
			&cli.StringFlag{Name: "addr", Value: ":2035", Usage: "TCP address to listen on with --tcp"},
		},
		Action: func(c *cli.Context) error {
			s := langserver.New()
			if c.Bool("tcp") {
				return s.ListenAndServeTCP(c.String("addr"))
			}
			s.ListenAndServe()
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("langserver: %v", err)
	}
}
