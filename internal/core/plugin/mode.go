package plugin

// Mode selects which pair of registration actions a hook invocation performs.
// It is fixed by which hook runs, never by input data.
type Mode int

const (
	// ModeLink registers the plugin at install time.
	ModeLink Mode = iota
	// ModeUnlink deregisters the plugin at uninstall time.
	ModeUnlink
)

func (m Mode) String() string {
	switch m {
	case ModeLink:
		return "link"
	case ModeUnlink:
		return "unlink"
	default:
		return "unknown"
	}
}
