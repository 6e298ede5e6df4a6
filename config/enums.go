package config

import "fmt"

// Specification of requested output type.
type OutputFmt int

const (
	OutputFmtSvg OutputFmt = iota
	OutputFmtPng
	OutputFmtDump
)

var outputFmtNames = []string{"svg", "png", "dump"}

func (o OutputFmt) String() string {
	if o < 0 || int(o) >= len(outputFmtNames) {
		return fmt.Sprintf("OutputFmt(%d)", int(o))
	}
	return outputFmtNames[o]
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtSvg:
		return ".svg"
	case OutputFmtPng:
		return ".png"
	case OutputFmtDump:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// OutputFmtNames lists formats recognized on the command line.
func OutputFmtNames() []string {
	names := make([]string, len(outputFmtNames))
	copy(names, outputFmtNames)
	return names
}

// ParseOutputFmt converts a command line value to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if n == name {
			return OutputFmt(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}
