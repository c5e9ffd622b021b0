package config

const (
	defaultInputDir        = "."
	defaultLogDir          = "~/.local/share/imusemap/logs"
	defaultProbeBinary     = "ffprobe"
	defaultOutputExtension = ".imp"
	defaultLogFormat       = "auto"
	defaultLogLevel        = "info"
	defaultJournalEnabled  = true
)

var defaultExtensions = []string{".wav", ".aif", ".aiff", ".ogg", ".mp3", ".flac"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir: defaultInputDir,
			LogDir:   defaultLogDir,
		},
		Probe: Probe{
			Binary:     defaultProbeBinary,
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Output: Output{
			Extension: defaultOutputExtension,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
