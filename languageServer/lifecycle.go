package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/Zaneham/hlasm-strong-type/internal/util"
)

const (
	serverName    = "hlasm-lsp"
	serverVersion = "0.3.0"
)

func (h *handler) handleInitialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params InitializeParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	dataDir := h.controller.ResolveDataDir(params.RootURI)
	h.controller.LoadCatalogue(dataDir)
	util.LogF("hlasm-lsp: loaded macro catalogue from %s", dataDir)

	result := InitializeResult{
		ServerInfo: ServerInfo{Name: serverName, Version: serverVersion},
	}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	result.Capabilities.CompletionProvider = CompletionOptions{TriggerCharacters: []string{" "}}
	result.Capabilities.DefinitionProvider = true
	result.Capabilities.ReferencesProvider = true

	conn.Reply(context.Background(), req.ID, result)

	h.registerRemainingCapabilities(conn)
}

// registerRemainingCapabilities asks the client to register
// willSaveWaitUntil, the one capability this server advertises outside the
// InitializeResult, exactly as the teacher does for its own reformatter.
func (h *handler) registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	util.LogF("hlasm-lsp: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "textDocumentSync.willSaveWaitUntil",
				Method: "textDocument/willSaveWaitUntil",
				RegisterOptions: TextDocumentRegistrationOptions{
					DocumentSelector: []DocumentFilter{
						{Scheme: "file", Language: "hlasm"},
					},
				},
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
	util.LogF("hlasm-lsp: registered remaining capabilities")
}
