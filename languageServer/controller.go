package languageServer

import (
	"path/filepath"
	"strings"

	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

// maxMacroDirs mirrors the cap spec.md §6 places on honoured --macro-dir
// arguments.
const maxMacroDirs = 64

// Controller owns every piece of state the document lifecycle touches:
// the per-URI document/analysis tables, the catalogue, the macro
// directory list, and the shutdown flag. Per spec.md §9's design note,
// this replaces the teacher's package-level documentMap with a value
// passed through the dispatch path — same lifecycle contract, no global
// state.
type Controller struct {
	documents map[string]string
	states    map[string]*hlasm.AnalysisState

	catalogue        *hlasm.Catalogue
	macroDirs        []string
	dataDirOverride  string
	shutdownReceived bool
}

// NewController builds a controller with the catalogue not yet loaded;
// LoadCatalogue is deferred to initialize so the data directory can be
// resolved from rootUri when no explicit override is given.
func NewController(dataDirOverride string, macroDirs []string) *Controller {
	if len(macroDirs) > maxMacroDirs {
		macroDirs = macroDirs[:maxMacroDirs]
	}
	return &Controller{
		documents:       make(map[string]string),
		states:          make(map[string]*hlasm.AnalysisState),
		macroDirs:       macroDirs,
		dataDirOverride: dataDirOverride,
		catalogue:       hlasm.EmptyCatalogue(),
	}
}

// ResolveDataDir implements spec.md §4.K's initialize resolution order:
// explicit override, else <rootUri-path>/data, else "data".
func (c *Controller) ResolveDataDir(rootURI *string) string {
	if c.dataDirOverride != "" {
		return c.dataDirOverride
	}
	if rootURI != nil {
		if path, ok := uriToPath(*rootURI); ok {
			return filepath.Join(path, "data")
		}
	}
	return "data"
}

// LoadCatalogue loads <dataDir>/macros.json. Failures are swallowed inside
// hlasm.LoadCatalogue; the controller always ends up with a non-nil
// catalogue.
func (c *Controller) LoadCatalogue(dataDir string) {
	c.catalogue = hlasm.LoadCatalogue(filepath.Join(dataDir, "macros.json"))
}

func (c *Controller) openDocument(uri, text string) {
	c.documents[uri] = text
	c.reanalyse(uri)
}

func (c *Controller) changeDocument(uri, text string) {
	c.documents[uri] = text
	c.reanalyse(uri)
}

func (c *Controller) closeDocument(uri string) {
	delete(c.documents, uri)
	delete(c.states, uri)
}

func (c *Controller) reanalyse(uri string) {
	state := hlasm.Analyse(c.documents[uri])
	c.states[uri] = &state
}

func (c *Controller) text(uri string) (string, bool) {
	t, ok := c.documents[uri]
	return t, ok
}

func (c *Controller) state(uri string) *hlasm.AnalysisState {
	return c.states[uri]
}

// uriToPath strips a file:// scheme from a root URI. LSP root URIs are
// always file-scheme for the narrow interface this core consumes; any
// other scheme is treated as unresolvable.
func uriToPath(uri string) (string, bool) {
	const prefix = "file://"
	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	return uri[len(prefix):], true
}
