package hlasm

import "sort"

// floatOps and addressOps are the two opcode classes from spec.md §4.E,
// fixed at build time.
var floatOps = opcodeSet(
	"LE", "LER", "LD", "LDR", "STE", "STD", "AE", "AER", "AD", "ADR",
	"SE", "SER", "SD", "SDR", "ME", "MER", "MD", "MDR", "DE", "DER",
	"DD", "DDR", "CE", "CER", "CD", "CDR", "AW", "AWR", "SW", "SWR",
	"HDR", "HER", "LCER", "LCDR", "LNER", "LNDR", "LPER", "LPDR",
	"LTER", "LTDR", "SQER", "SQDR",
)

var addressOps = opcodeSet(
	"LA", "LAE", "LAM", "LAY", "LARL", "BAL", "BALR", "BAS", "BASR",
)

func opcodeSet(ops ...string) map[string]bool {
	m := make(map[string]bool, len(ops))
	for _, op := range ops {
		m[op] = true
	}
	return m
}

func isFloatOp(op string) bool   { return floatOps[op] }
func isAddressOp(op string) bool { return addressOps[op] }

// instructionSet is the fixed HLASM opcode list offered by the completion
// provider (spec.md §4.I): RR/RX-form general instructions, the float and
// address op classes, and the handful of assembler directives the symbol
// scanner and reformatter care about.
var instructionSet = buildInstructionSet()

func buildInstructionSet() []string {
	general := []string{
		"LR", "LTR", "LNR", "LCR", "LA", "L", "LH", "IC", "STH", "STC",
		"ST", "STM", "LM", "AR", "A", "AH", "SR", "S", "SH", "MR", "M",
		"MH", "DR", "D", "NR", "N", "OR", "O", "XR", "X", "CR", "C",
		"CH", "CLR", "CL", "CLI", "CLC", "MVC", "MVI", "MVN", "MVZ",
		"AHI", "LHI", "AFI", "LFI", "B", "BR", "BC", "BCR", "BCT",
		"BCTR", "BXH", "BXLE", "J", "JCT", "BRC", "EQUREG", "CSECT",
		"DSECT", "START", "END", "USING", "DROP", "DC", "DS", "EQU",
	}
	out := make([]string, 0, len(general)+len(floatOps)+len(addressOps))
	out = append(out, general...)
	out = append(out, sortedKeys(floatOps)...)
	out = append(out, sortedKeys(addressOps)...)
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
