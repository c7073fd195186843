package languageServer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
	"github.com/Zaneham/hlasm-strong-type/internal/util"
)

func decodeOrInvalidRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request, out interface{}) bool {
	if req.Params == nil {
		return false
	}
	if err := json.Unmarshal(*req.Params, out); err != nil {
		rpcErr := jsonrpc2.Error{Code: -32600}
		rpcErr.SetError(err.Error())
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
		return false
	}
	return true
}

func toLSPDiagnostics(diags []hlasm.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, Diagnostic{
			Range: TextRange{
				Start: TextPosition{Line: d.Line, Char: d.ColStart},
				End:   TextPosition{Line: d.Line, Char: d.ColEnd},
			},
			Message:  d.Message,
			Source:   "hlasm",
			Severity: int(d.Severity),
		})
	}
	return out
}

// publishDiagnostics sends the diagnostics of the document's cached
// analysis state (already refreshed by the controller on open/change) to
// the client, before returning to the dispatch loop — spec.md §5 requires this publish
// to happen before the next message is read.
func (h *handler) publishDiagnostics(conn *jsonrpc2.Conn, uri DocumentUri, version int) {
	state := h.controller.state(string(uri))
	var diags []hlasm.Diagnostic
	if state != nil {
		diags = state.Diags
	}
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: toLSPDiagnostics(diags),
	})
}

func (h *handler) documentOpenNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidOpenTextDocumentParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	h.controller.openDocument(string(params.TextDocument.URI), params.TextDocument.Text)
	h.publishDiagnostics(conn, params.TextDocument.URI, params.TextDocument.Version)
}

// documentChangeNotification takes the first content-change entry as the
// full new document text. The LSP full-sync contract this server
// registers never sends more than one entry, but if a client misbehaves
// and sends several, the remainder are silently ignored rather than
// concatenated or rejected.
func (h *handler) documentChangeNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidChangeTextDocumentParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}

	uri := params.TextDocument.URI
	h.controller.changeDocument(string(uri), params.ContentChanges[0].Text)
	h.publishDiagnostics(conn, uri, params.TextDocument.Version)
}

func (h *handler) documentCloseNotification(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidCloseTextDocumentParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	h.controller.closeDocument(string(params.TextDocument.URI))
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []Diagnostic{},
	})
}

func (h *handler) documentDiagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DocumentDiagnosticsParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	state := h.controller.state(string(params.TextDocument.URI))
	var diags []hlasm.Diagnostic
	if state != nil {
		diags = state.Diags
	}

	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: toLSPDiagnostics(diags),
	})
}

func (h *handler) documentWillSaveWaitUntil(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DocumentWillSaveWaitUntilParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	text, ok := h.controller.text(string(params.TextDocument.URI))
	if !ok {
		conn.Reply(context.Background(), req.ID, []TextEdit{})
		return
	}

	reformatted := hlasm.Reformat(text)
	lines := strings.Split(text, "\n")
	lastLine := lines[len(lines)-1]

	edits := []TextEdit{{
		Range: TextRange{
			Start: TextPosition{Line: 0, Char: 0},
			End:   TextPosition{Line: len(lines) - 1, Char: len(lastLine)},
		},
		NewText: reformatted,
	}}

	conn.Reply(context.Background(), req.ID, edits)
	util.LogF("hlasm-lsp: reformatted document %s", params.TextDocument.URI)
}
