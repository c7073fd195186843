package languageServer

import (
	"context"
	"log"
	"net"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/Zaneham/hlasm-strong-type/internal/util"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ListenAndServe runs the server over stdin/stdout, per spec.md §6's
// transport description. It blocks until the connection is closed, then
// exits the process with the code spec.md §4.K's exit handling computed.
func ListenAndServe(dataDirOverride string, macroDirs []string) {
	h := &handler{controller: NewController(dataDirOverride, macroDirs)}
	conn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), h)
	<-conn.DisconnectNotify()
	os.Exit(h.exitCode())
}

// ListenAndServeTCP runs the server over TCP, accepting one controller per
// connection so that concurrent editor sessions never share document
// state.
func ListenAndServeTCP(addr string, dataDirOverride string, macroDirs []string) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("hlasm-strong-type: could not bind to address %s: %v", addr, err)
	}
	defer listener.Close()

	util.LogF("hlasm-lsp: listening for TCP connections on %s", addr)

	connectionCount := 0
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Fatalf("hlasm-strong-type: failed to accept incoming connection: %v", err)
		}
		connectionCount++
		connectionID := connectionCount
		util.LogF("hlasm-lsp: received incoming connection #%d", connectionID)

		h := &handler{controller: NewController(dataDirOverride, macroDirs)}
		jsonrpc2Conn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), h)
		go func() {
			<-jsonrpc2Conn.DisconnectNotify()
			util.LogF("hlasm-lsp: connection #%d closed", connectionID)
		}()
	}
}

// handler implements jsonrpc2.Handler by dispatching each request to the
// operation it names, single-threaded and message-ordered per spec.md §5:
// jsonrpc2 delivers one Handle call at a time per connection, and every
// notification handler here fully publishes its diagnostics before
// returning.
type handler struct {
	controller *Controller
}

func (h *handler) exitCode() int {
	if h.controller.shutdownReceived {
		return 0
	}
	return 1
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	util.LogF("hlasm-lsp: received request: %s", req.Method)
	switch req.Method {
	case "initialize":
		h.handleInitialize(conn, req)
	case "initialized":
		// no response required
	case "textDocument/didOpen":
		h.documentOpenNotification(conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(conn, req)
	case "textDocument/diagnostic":
		h.documentDiagnostics(conn, req)
	case "textDocument/willSaveWaitUntil":
		h.documentWillSaveWaitUntil(conn, req)
	case "textDocument/hover":
		h.hoverRequest(conn, req)
	case "textDocument/completion":
		h.completionRequest(conn, req)
	case "textDocument/definition":
		h.definitionRequest(conn, req)
	case "textDocument/references":
		h.referencesRequest(conn, req)
	case "shutdown":
		h.controller.shutdownReceived = true
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Reply(context.Background(), req.ID, nil)
		conn.Close()
	default:
		rpcErr := jsonrpc2.Error{Code: -32601}
		rpcErr.SetError("method not found: " + req.Method)
		conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
	}
}
