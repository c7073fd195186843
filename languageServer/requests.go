package languageServer

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

func wordAtCursor(text string, pos TextPosition) (string, bool) {
	return hlasm.WordAt(text, pos.Line, pos.Char)
}

func (h *handler) hoverRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params TextDocumentPositionParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	text, ok := h.controller.text(string(params.TextDocument.URI))
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	word, ok := wordAtCursor(text, params.Position)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	state := h.controller.state(string(params.TextDocument.URI))
	value, ok := hlasm.Hover(state, h.controller.catalogue, word)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	conn.Reply(context.Background(), req.ID, Hover{
		Contents: MarkupContent{Kind: "markdown", Value: value},
	})
}

// completionKindToLSP maps spec.md §4.I's item-kind labels to the numeric
// CompletionItemKind values the protocol expects.
func completionKindToLSP(k hlasm.CompletionKind) int {
	switch k {
	case hlasm.CompletionKeyword:
		return 14
	case hlasm.CompletionFunction:
		return 3
	case hlasm.CompletionVariable:
		return 6
	case hlasm.CompletionValue:
		return 12
	}
	return 1
}

func (h *handler) completionRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params CompletionParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	text, ok := h.controller.text(string(params.TextDocument.URI))
	prefix := ""
	if ok {
		if word, ok := wordAtCursor(text, params.Position); ok {
			prefix = word
		}
	}

	state := h.controller.state(string(params.TextDocument.URI))
	items := hlasm.Complete(state, h.controller.catalogue, prefix)

	lspItems := make([]CompletionItem, 0, len(items))
	for _, it := range items {
		lspItems = append(lspItems, CompletionItem{
			Label:  it.Label,
			Kind:   completionKindToLSP(it.Kind),
			Detail: it.Detail,
		})
	}

	conn.Reply(context.Background(), req.ID, CompletionList{
		IsIncomplete: false,
		Items:        lspItems,
	})
}

func (h *handler) definitionRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DefinitionParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	uri := params.TextDocument.URI
	text, ok := h.controller.text(string(uri))
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	word, ok := wordAtCursor(text, params.Position)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	state := h.controller.state(string(uri))
	result, ok := hlasm.Definition(state, h.controller.catalogue, h.controller.macroDirs, word)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	loc := Location{URI: uri}
	if result.File != "" {
		loc.URI = DocumentUri("file://" + result.File)
		loc.Range = TextRange{Start: TextPosition{Line: 0, Char: 0}, End: TextPosition{Line: 0, Char: 0}}
	} else {
		loc.Range = TextRange{
			Start: TextPosition{Line: result.Line, Char: result.Col},
			End:   TextPosition{Line: result.Line, Char: result.Col + result.Len},
		}
	}

	conn.Reply(context.Background(), req.ID, loc)
}

func (h *handler) referencesRequest(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params ReferenceParams
	if !decodeOrInvalidRequest(conn, req, &params) {
		return
	}

	uri := params.TextDocument.URI
	text, ok := h.controller.text(string(uri))
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	word, ok := wordAtCursor(text, params.Position)
	if !ok {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	state := h.controller.state(string(uri))
	refs := hlasm.References(state, word, params.Context.IncludeDeclaration)
	if len(refs) == 0 {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	locations := make([]Location, 0, len(refs))
	for _, r := range refs {
		locations = append(locations, Location{
			URI: uri,
			Range: TextRange{
				Start: TextPosition{Line: r.Line, Char: r.ColStart},
				End:   TextPosition{Line: r.Line, Char: r.ColEnd},
			},
		})
	}

	conn.Reply(context.Background(), req.ID, locations)
}
