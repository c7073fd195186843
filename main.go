package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/Zaneham/hlasm-strong-type/internal/util"
	"github.com/Zaneham/hlasm-strong-type/languageServer"
)

func main() {
	var (
		dataDir   string
		macroDirs []string
		tcp       bool
		tcpAddr   string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:   "hlasm-strong-type",
		Short: "An HLASM language server",
		Run: func(cmd *cobra.Command, args []string) {
			if debug {
				util.LoggingEnabled = true
			}
			if tcp {
				languageServer.ListenAndServeTCP(tcpAddr, dataDir, macroDirs)
				return
			}
			languageServer.ListenAndServe(dataDir, macroDirs)
		},
	}

	// Unknown flags are silently ignored, per spec.md §6.
	rootCmd.FParseErrWhitelist.UnknownFlags = true

	flags := rootCmd.Flags()
	flags.StringVar(&dataDir, "data-dir", "", "overrides the derived macro-catalogue directory")
	flags.StringArrayVar(&macroDirs, "macro-dir", nil, "a directory searched for macro source files (repeatable)")
	flags.BoolVar(&tcp, "tcp", false, "listen for JSON-RPC over TCP instead of stdio")
	flags.StringVar(&tcpAddr, "tcp-addr", ":2035", "address to listen on when --tcp is set")
	flags.BoolVar(&debug, "debug", false, "enable stderr logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
