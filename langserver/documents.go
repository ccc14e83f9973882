package langserver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
)

func (s *Server) setDocument(uri DocumentUri, item TextDocumentItem) *document {
	labels, _ := diagnosticsFor(item.Text)

	s.mu.Lock()
	if labels == nil {
		// Assembly failed: keep the labels of the last successful assembly.
		if prev, ok := s.docs[uri]; ok {
			labels = prev.labels
		}
	}
	doc := &document{item: item, labels: labels}
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

func (s *Server) document(uri DocumentUri) (*document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

func (s *Server) handleDidOpen(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidOpenTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.setDocument(params.TextDocument.URI, params.TextDocument)
	_, diags := diagnosticsFor(params.TextDocument.Text)
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Version:     params.TextDocument.Version,
		Diagnostics: diags,
	})
}

func (s *Server) handleDidChange(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidChangeTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}

	uri := params.TextDocument.URI
	text := params.ContentChanges[0].Text
	item := TextDocumentItem{URI: uri, Version: params.TextDocument.Version, Text: text}
	s.setDocument(uri, item)

	_, diags := diagnosticsFor(text)
	conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Version:     params.TextDocument.Version,
		Diagnostics: diags,
	})
}

func (s *Server) handleDidClose(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidCloseTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
}

func (s *Server) handleDiagnostic(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DocumentDiagnosticsParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{Kind: "full", Items: []Diagnostic{}})
		return
	}

	_, diags := diagnosticsFor(doc.item.Text)
	conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{Kind: "full", Items: diags})
}

func (s *Server) handleHover(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyInvalidParams(ctx, conn, req)
		return
	}

	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	lines := strings.Split(doc.item.Text, "\n")
	if params.Position.Line < 0 || params.Position.Line >= len(lines) {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	text, found := hoverAt(lines[params.Position.Line], params.Position.Char, doc.labels)
	if !found {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	conn.Reply(ctx, req.ID, Hover{Contents: MarkupContent{Kind: "markdown", Value: text}})
}
