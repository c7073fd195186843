package hlasm

import (
	"fmt"
	"strconv"
	"strings"
)

// Hover implements spec.md §4.H: resolve word against the document's
// EQUREG table, the bare-register table, and the catalogue, in that order
// of precedence, and render the first match as Markdown.
func Hover(state *AnalysisState, cat *Catalogue, word string) (string, bool) {
	if word == "" {
		return "", false
	}
	upper := strings.ToUpper(word)

	if state != nil {
		if reg, ok := state.Regs[upper]; ok {
			return fmt.Sprintf(hoverFormats.equregHeading, reg.Name) + "\n\n" +
				fmt.Sprintf(hoverFormats.equregBody, reg.Number, rtypeName(reg.Type)), true
		}
	}

	if n, ok := regNumber(upper); ok {
		return fmt.Sprintf(hoverFormats.registerHeading, n) + "\n\n" +
			fmt.Sprintf(hoverFormats.registerBody, registerConvention[n]), true
	}

	if cat != nil {
		if m, ok := cat.FindMacro(upper); ok {
			return renderMacroHover(m), true
		}
		if f, ok := cat.FindField(upper); ok {
			return renderFieldHover(f), true
		}
	}

	return "", false
}

func renderMacroHover(m MacroDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s", m.Name)

	if m.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", m.Description)
	}

	if len(m.Parameters) > 0 {
		b.WriteString("\n\n**Parameters:**\n")
		for _, p := range m.Parameters {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
	}

	if m.Category != "" {
		fmt.Fprintf(&b, "\n*Category: %s*", m.Category)
	}
	if m.Source != "" {
		fmt.Fprintf(&b, "\n\n*Source: %s*", m.Source)
	}

	return b.String()
}

func renderFieldHover(f FieldDef) string {
	var b strings.Builder
	if f.ControlBlock != "" {
		fmt.Fprintf(&b, "## %s (%s)", f.Name, f.ControlBlock)
	} else {
		fmt.Fprintf(&b, "## %s", f.Name)
	}

	if f.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", f.Description)
	}

	rows := make([][2]string, 0, 5)
	if f.ControlBlock != "" {
		rows = append(rows, [2]string{"Control Block", f.ControlBlock})
	}
	if f.FieldType != "" {
		rows = append(rows, [2]string{"Field Type", f.FieldType})
	}
	if f.StorageType != "" {
		rows = append(rows, [2]string{"Storage Type", f.StorageType})
	}
	if f.Length != 0 {
		rows = append(rows, [2]string{"Length", strconv.Itoa(f.Length)})
	}
	if f.Parent != "" {
		rows = append(rows, [2]string{"Parent", f.Parent})
	}

	if len(rows) > 0 {
		b.WriteString("\n\n| Property | Value |\n|---|---|\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
		}
	}

	return b.String()
}
