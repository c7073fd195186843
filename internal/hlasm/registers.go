package hlasm

import "strings"

// RegisterType is the rtype tag from spec.md §3.
type RegisterType int

const (
	RegGeneral RegisterType = iota
	RegAddress
	RegFloat
	RegControl
)

// RegisterName is the register descriptor from spec.md §3.
type RegisterName struct {
	Name   string
	Number int
	Type   RegisterType
}

// rtypeName implements the rtname mapping from spec.md §4.E.
func rtypeName(t RegisterType) string {
	switch t {
	case RegGeneral:
		return "general"
	case RegAddress:
		return "address"
	case RegFloat:
		return "float"
	case RegControl:
		return "control"
	}
	return "general"
}

// parseRegisterType parses a trimmed, upper-cased EQUREG type operand
// ("G", "A", "F", "C") into a RegisterType. ok is false for any other text.
func parseRegisterType(t string) (RegisterType, bool) {
	switch strings.TrimSpace(strings.ToUpper(t)) {
	case "G":
		return RegGeneral, true
	case "A":
		return RegAddress, true
	case "F":
		return RegFloat, true
	case "C":
		return RegControl, true
	}
	return RegGeneral, false
}

// registerConvention is the fixed 16-entry table from spec.md §6, rendered
// verbatim into the bare-Rn hover panel.
var registerConvention = [16]string{
	"R0  — Work register / parameter passing",
	"R1  — Parameter pointer / work register",
	"R2  — Work register",
	"R3  — Work register",
	"R4  — Work register",
	"R5  — Work register",
	"R6  — Work register",
	"R7  — Work register",
	"R8  — Work register",
	"R9  — Work register",
	"R10 — Work register",
	"R11 — Work register",
	"R12 — Base register (conventional)",
	"R13 — Save area pointer",
	"R14 — Return address",
	"R15 — Entry point / return code",
}
