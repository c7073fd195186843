package hlasm

import (
	"fmt"
	"sort"
	"strings"
)

// CompletionKind is the item-kind label from spec.md §4.I, left as an
// opaque enum here; the LSP boundary maps it to the numeric
// CompletionItemKind values the protocol expects.
type CompletionKind int

const (
	CompletionKeyword CompletionKind = iota
	CompletionFunction
	CompletionVariable
	CompletionValue
)

// CompletionItem is one candidate returned by Complete.
type CompletionItem struct {
	Label  string
	Kind   CompletionKind
	Detail string
}

// Complete implements spec.md §4.I: build the fixed candidate set, then
// filter by case-insensitive prefix match. state may be nil (no analysis
// cached yet for this document); cat may be nil (catalogue failed to load).
func Complete(state *AnalysisState, cat *Catalogue, prefix string) []CompletionItem {
	upperPrefix := strings.ToUpper(prefix)

	candidates := make([]CompletionItem, 0, 64)

	for _, op := range instructionSet {
		candidates = append(candidates, CompletionItem{Label: op, Kind: CompletionKeyword, Detail: "HLASM instruction"})
	}

	if cat != nil {
		macros := cat.Macros()
		sort.Slice(macros, func(i, j int) bool { return macros[i].Name < macros[j].Name })
		for _, m := range macros {
			detail := m.Description
			if detail == "" {
				detail = "Macro"
			}
			candidates = append(candidates, CompletionItem{Label: m.Name, Kind: CompletionFunction, Detail: detail})
		}
	}

	for n := 0; n <= 15; n++ {
		candidates = append(candidates, CompletionItem{
			Label:  fmt.Sprintf("R%d", n),
			Kind:   CompletionVariable,
			Detail: fmt.Sprintf("Register %d", n),
		})
	}

	if state != nil {
		regNames := make([]string, 0, len(state.Regs))
		for name := range state.Regs {
			regNames = append(regNames, name)
		}
		sort.Strings(regNames)
		for _, name := range regNames {
			reg := state.Regs[name]
			candidates = append(candidates, CompletionItem{
				Label:  reg.Name,
				Kind:   CompletionVariable,
				Detail: fmt.Sprintf("R%d (%s)", reg.Number, rtypeName(reg.Type)),
			})
		}

		labelNames := make([]string, 0, len(state.Labels))
		for name := range state.Labels {
			labelNames = append(labelNames, name)
		}
		sort.Strings(labelNames)
		for _, name := range labelNames {
			line := state.Labels[name]
			candidates = append(candidates, CompletionItem{
				Label:  name,
				Kind:   CompletionValue,
				Detail: fmt.Sprintf("Label (line %d)", line+1),
			})
		}
	}

	if upperPrefix == "" {
		return candidates
	}

	filtered := make([]CompletionItem, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToUpper(c.Label), upperPrefix) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
