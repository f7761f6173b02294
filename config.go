package acomp

import "fmt"

// CompileMode selects indentation auto-close, logger verbosity,
// downstream optimization flags, and auto-run behavior (§6).
type CompileMode int

const (
	ModeOptimized CompileMode = iota
	ModeRaw
	ModeDebug
	ModeDebugOpt
	ModeDebugRaw
)

// ParseMode maps a CLI mode string to a CompileMode. Unknown strings
// are a caller error (§6 exit code 1: "unknown mode").
func ParseMode(s string) (CompileMode, error) {
	switch s {
	case "", "optimized":
		return ModeOptimized, nil
	case "raw":
		return ModeRaw, nil
	case "debug":
		return ModeDebug, nil
	case "debug_opt":
		return ModeDebugOpt, nil
	case "debug_raw":
		return ModeDebugRaw, nil
	default:
		return ModeOptimized, fmt.Errorf("unknown mode %q", s)
	}
}

func (m CompileMode) String() string {
	switch m {
	case ModeOptimized:
		return "optimized"
	case ModeRaw:
		return "raw"
	case ModeDebug:
		return "debug"
	case ModeDebugOpt:
		return "debug_opt"
	case ModeDebugRaw:
		return "debug_raw"
	default:
		return "optimized"
	}
}

// AutoCloseEnabled reports whether indent-discipline blocks may be
// closed implicitly in this mode (§4.1: "Only permitted when the mode
// is not raw").
func (m CompileMode) AutoCloseEnabled() bool {
	return m != ModeRaw && m != ModeDebugRaw
}

// LogMode is the logger's verbosity (§4.5, §6).
type LogMode int

const (
	LogNone LogMode = iota
	LogHuman
	LogMachine
)

// LogMode is selected by CompileMode: debug -> machine, debug_opt and
// debug_raw -> human, everything else -> none (§6).
func (m CompileMode) LogMode() LogMode {
	switch m {
	case ModeDebug:
		return LogMachine
	case ModeDebugOpt, ModeDebugRaw:
		return LogHuman
	default:
		return LogNone
	}
}

// AutoRun reports whether the produced binary should be executed after
// a successful compile (§6: "all debug modes").
func (m CompileMode) AutoRun() bool {
	switch m {
	case ModeDebug, ModeDebugOpt, ModeDebugRaw:
		return true
	default:
		return false
	}
}

// CCFlags returns the downstream C compiler flags for this mode (§6).
func (m CompileMode) CCFlags() []string {
	switch m {
	case ModeOptimized:
		return []string{"-Ofast", "-w"}
	case ModeRaw, ModeDebugRaw:
		return []string{"-O1", "-g"}
	case ModeDebug, ModeDebugOpt:
		return []string{"-Ofast", "-g"}
	default:
		return []string{"-Ofast", "-w"}
	}
}

// CompileLimits are the module's hard capacity bounds (§5). They are
// lower bounds, not fixed constants (SPEC_FULL.md §9 Open Question 3):
// a caller may raise them, but DefaultCompileLimits reproduces the
// numbers spec.md advertises.
type CompileLimits struct {
	MaxVariables int
	MaxBlocks    int
	MaxFunctions int
	MaxErrors    int
}

// DefaultCompileLimits mirrors spec.md §5's advertised minimums.
func DefaultCompileLimits() CompileLimits {
	return CompileLimits{
		MaxVariables: 1024,
		MaxBlocks:    256,
		MaxFunctions: 512,
		MaxErrors:    256,
	}
}
