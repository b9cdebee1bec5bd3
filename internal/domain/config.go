package domain

// Config is the pngcoder tool configuration loaded from pngcoder.yaml.
type Config struct {
	Backup  BackupConfig
	Journal JournalConfig
	Output  OutputConfig
}

type BackupConfig struct {
	Enabled bool
}

type JournalConfig struct {
	Enabled bool
	Dir     string
}

type OutputConfig struct {
	Format string
}

// DefaultConfig provides sane defaults if pngcoder.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Backup: BackupConfig{Enabled: false},
		Journal: JournalConfig{
			Enabled: false,
			Dir:     ".pngcoder/journal",
		},
		Output: OutputConfig{Format: "table"},
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}
