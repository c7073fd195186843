package hlasm

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/Zaneham/hlasm-strong-type/internal/util"
)

// MacroDef is the macro record from spec.md §3.
type MacroDef struct {
	Name        string
	Description string
	Category    string
	Parameters  []string
	Source      string
}

// FieldDef is the control-block field record from spec.md §3.
type FieldDef struct {
	Name         string
	ControlBlock string
	FieldType    string
	StorageType  string
	Length       int
	Parent       string
	Description  string
}

// Catalogue is the two-table knowledge base from spec.md §4.G. Immutable
// once loaded.
type Catalogue struct {
	macros map[string]MacroDef
	fields map[string]FieldDef
}

// catalogueFile mirrors the on-disk JSON shape from spec.md §6. Fields
// absent from the file decode to the Go zero value, which matches the
// spec's "missing keys default to empty string / 0 / empty list" rule.
type catalogueFile struct {
	Macros []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Parameters  []string `json:"parameters"`
		Source      string   `json:"source"`
	} `json:"macros"`
	ControlBlocks map[string]struct {
		Fields []struct {
			Name        string `json:"name"`
			FieldType   string `json:"fieldType"`
			StorageType string `json:"storageType"`
			Length      int    `json:"length"`
			Parent      string `json:"parent"`
			Description string `json:"description"`
		} `json:"fields"`
	} `json:"controlBlocks"`
}

// EmptyCatalogue returns a catalogue with no entries, used whenever loading
// fails per spec.md §4.G / §7 ("Catalogue load failure — swallowed").
func EmptyCatalogue() *Catalogue {
	return &Catalogue{
		macros: make(map[string]MacroDef),
		fields: make(map[string]FieldDef),
	}
}

// LoadCatalogue reads path and builds a Catalogue. Any I/O or parse error
// is swallowed and an empty catalogue is returned; initialization never
// fails because of a bad or missing catalogue file.
func LoadCatalogue(path string) *Catalogue {
	raw, err := os.ReadFile(path)
	if err != nil {
		util.LogF("could not read macro catalogue %s: %v", path, err)
		return EmptyCatalogue()
	}

	var file catalogueFile
	if err := json.Unmarshal(raw, &file); err != nil {
		util.LogF("could not parse macro catalogue %s: %v", path, err)
		return EmptyCatalogue()
	}

	cat := EmptyCatalogue()

	for _, m := range file.Macros {
		name := strings.ToUpper(m.Name)
		cat.macros[name] = MacroDef{
			Name:        name,
			Description: m.Description,
			Category:    m.Category,
			Parameters:  m.Parameters,
			Source:      m.Source,
		}
	}

	for cb, block := range file.ControlBlocks {
		for _, f := range block.Fields {
			name := strings.ToUpper(f.Name)
			cat.fields[name] = FieldDef{
				Name:         name,
				ControlBlock: cb,
				FieldType:    f.FieldType,
				StorageType:  f.StorageType,
				Length:       f.Length,
				Parent:       f.Parent,
				Description:  f.Description,
			}
		}
	}

	return cat
}

// FindMacro looks up a macro by upper-cased name.
func (c *Catalogue) FindMacro(name string) (MacroDef, bool) {
	m, ok := c.macros[strings.ToUpper(name)]
	return m, ok
}

// FindField looks up a control-block field by upper-cased name.
func (c *Catalogue) FindField(name string) (FieldDef, bool) {
	f, ok := c.fields[strings.ToUpper(name)]
	return f, ok
}

// Macros returns every macro in no particular order;
// callers that need stable ordering (completion) sort by name themselves.
func (c *Catalogue) Macros() []MacroDef {
	out := make([]MacroDef, 0, len(c.macros))
	for _, m := range c.macros {
		out = append(out, m)
	}
	return out
}
