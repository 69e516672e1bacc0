package cli

// Mode is what a single invocation does.
type Mode int

const (
	// ModeLookup prints the text of the first parameter.
	ModeLookup Mode = iota
	// ModeHelp prints usage because --help was given; exits 0.
	ModeHelp
	// ModeUsage prints usage because there was nothing to look up; exits 1.
	ModeUsage
)

func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeUsage:
		return "usage"
	default:
		return "lookup"
	}
}

// SelectMode is resolved once per invocation. --help wins over parameters.
func SelectMode(inv *Invocation) Mode {
	if _, ok := inv.Option(OptionHelp); ok {
		return ModeHelp
	}
	if len(inv.Params) == 0 {
		return ModeUsage
	}
	return ModeLookup
}
