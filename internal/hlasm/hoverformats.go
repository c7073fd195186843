package hlasm

// hoverFormatsType holds the Markdown templates used by Hover,
// grouped the way the teacher's hoverInfoFormatsType groups RISC-V
// instruction text: one struct literal, one field per panel kind.
type hoverFormatsType struct {
	equregHeading  string
	equregBody     string
	registerHeading string
	registerBody   string
}

var hoverFormats = hoverFormatsType{
	equregHeading:   "## %s (EQUREG)",
	equregBody:      "Register R%d, type: %s",
	registerHeading: "## Register R%d",
	registerBody:    "```\n%s\n```",
}
