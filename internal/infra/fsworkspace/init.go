package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

const defaultConfigYAML = `pngcoder:
  backup:
    enabled: false
  journal:
    enabled: false
    dir: .pngcoder/journal
  output:
    format: table
`

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, ".pngcoder", "logs"),
		filepath.Join(root, ".pngcoder", "journal"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := ensureGitignore(root); err != nil {
		return err
	}

	cfgPath := filepath.Join(root, "pngcoder.yaml")
	if !force {
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			return nil
		}
	}
	return os.WriteFile(cfgPath, []byte(defaultConfigYAML), 0o644)
}

func ensureGitignore(root string) error {
	const header = "# pngcoder"
	entries := []string{
		".pngcoder/",
		"*.png.bak",
		"*.png.tmp",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
