package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ignaskar/pngcoder/internal/domain"
)

var (
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	criticalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	ancillaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

func printImage(w io.Writer, path string, img domain.Png, format string) error {
	switch format {
	case "json":
		return printImageJSON(w, path, img)
	case "table", "":
		printImageTable(w, path, img)
		return nil
	case "plain":
		printImagePlain(w, path, img)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|plain|json)", format)
	}
}

func printImageJSON(w io.Writer, path string, img domain.Png) error {
	type chunkInfo struct {
		Type       string `json:"type"`
		Length     uint32 `json:"length"`
		CRC        uint32 `json:"crc"`
		Critical   bool   `json:"critical"`
		Public     bool   `json:"public"`
		SafeToCopy bool   `json:"safe_to_copy"`
		Text       string `json:"text,omitempty"`
	}

	infos := make([]chunkInfo, 0, len(img.Chunks()))
	for _, c := range img.Chunks() {
		info := chunkInfo{
			Type:       c.Type().String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   c.Type().IsCritical(),
			Public:     c.Type().IsPublic(),
			SafeToCopy: c.Type().IsSafeToCopy(),
		}
		if s, err := c.DataAsString(); err == nil {
			info.Text = s
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"file":   path,
		"chunks": infos,
	})
}

func printImageTable(w io.Writer, path string, img domain.Png) {
	fmt.Fprintf(w, "File: %s (%d chunk(s))\n\n", path, len(img.Chunks()))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Type", "Length", "CRC", "Bits", "Text"})
	for i, c := range img.Chunks() {
		typ := c.Type()
		name := typ.String()
		if typ.IsCritical() {
			name = criticalStyle.Render(name)
		} else {
			name = ancillaryStyle.Render(name)
		}
		t.AppendRow(table.Row{
			i + 1,
			name,
			c.Length(),
			fmt.Sprintf("%08X", c.CRC()),
			bitFlags(typ),
			textPreview(c),
		})
	}
	t.Render()
}

func printImagePlain(w io.Writer, path string, img domain.Png) {
	fmt.Fprintf(w, "File: %s\n", path)
	for _, c := range img.Chunks() {
		fmt.Fprintf(w, "- %s  length=%d  crc=%08X", c.Type(), c.Length(), c.CRC())
		if p := textPreview(c); p != "" {
			fmt.Fprintf(w, "  text=%q", p)
		}
		fmt.Fprintln(w)
	}
}

func bitFlags(t domain.ChunkType) string {
	var b strings.Builder
	if t.IsCritical() {
		b.WriteString("critical")
	} else {
		b.WriteString("ancillary")
	}
	if !t.IsPublic() {
		b.WriteString(",private")
	}
	if t.IsSafeToCopy() {
		b.WriteString(",safe-to-copy")
	}
	return b.String()
}

const previewLimit = 32

// textPreview renders UTF-8 payloads for the listing, truncated and with
// newlines flattened. Binary payloads render empty.
func textPreview(c domain.Chunk) string {
	s, err := c.DataAsString()
	if err != nil {
		return ""
	}

	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)

	if utf8.RuneCountInString(s) > previewLimit {
		rs := []rune(s)
		s = string(rs[:previewLimit]) + "..."
	}
	return s
}
