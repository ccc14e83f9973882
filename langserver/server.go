package langserver

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"os"
	"strings"
	"sync"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/rvtoolchain/rv32i/assembler"
)

// document is the server's in-memory view of one open file: its current
// text and the label table from the most recent successful assembly
// (used to answer hover queries about labels without re-assembling on
// every keystroke response).
type document struct {
	item   TextDocumentItem
	labels map[string]uint32
}

// Server holds all open documents as instance state rather than a
// package-level map, so multiple Server instances (e.g. one per TCP
// connection) don't share state.
type Server struct {
	mu   sync.Mutex
	docs map[DocumentUri]*document
}

// New returns an empty Server ready to handle jsonrpc2 requests.
func New() *Server {
	return &Server{docs: map[DocumentUri]*document{}}
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ListenAndServe runs the language server over stdin/stdout until the
// client disconnects, the editor-embedding mode.
func (s *Server) ListenAndServe() {
	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), s).DisconnectNotify()
}

// ListenAndServeTCP runs the language server on addr, one Server-backed
// connection per client, for remote-debugging setups.
func (s *Server) ListenAndServeTCP(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Printf("langserver: listening on %s", addr)
	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		h := New()
		rpcConn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), h)
		go func() { <-rpcConn.DisconnectNotify() }()
	}
}

// Handle implements jsonrpc2.Handler.
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case "initialize":
		s.handleInitialize(ctx, conn, req)
	case "textDocument/didOpen":
		s.handleDidOpen(ctx, conn, req)
	case "textDocument/didChange":
		s.handleDidChange(ctx, conn, req)
	case "textDocument/didClose":
		s.handleDidClose(ctx, conn, req)
	case "textDocument/diagnostic":
		s.handleDiagnostic(ctx, conn, req)
	case "textDocument/hover":
		s.handleHover(ctx, conn, req)
	case "shutdown":
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Reply(ctx, req.ID, nil)
		conn.Close()
	}
}

func replyInvalidParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	rpcErr := jsonrpc2.Error{}
	rpcErr.SetError("invalid parameters")
	conn.ReplyWithError(ctx, req.ID, &rpcErr)
}

func (s *Server) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params InitializeParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	var result InitializeResult
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	conn.Reply(ctx, req.ID, result)
}

// diagnosticsFor assembles text and reports the fatal error, if any, as
// a single-line Diagnostic. assembler.Assemble stops at the first
// error, so at most one Diagnostic is produced per call rather than an
// accumulated list.
func diagnosticsFor(text string) (labels map[string]uint32, diags []Diagnostic) {
	res, err := assembler.Assemble(text)
	if err != nil {
		line := 0
		if ae, ok := err.(*assembler.Error); ok {
			line = ae.Line
		}
		lineLen := len(strings.Split(text, "\n")[line])
		diags = append(diags, Diagnostic{
			Range: TextRange{
				Start: TextPosition{Line: line, Char: 0},
				End:   TextPosition{Line: line, Char: lineLen},
			},
			Severity: SeverityError,
			Message:  err.Error(),
		})
		return nil, diags
	}
	return res.Labels, []Diagnostic{}
}
