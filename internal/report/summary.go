package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/creditroll/internal/model"
)

// SummaryWriter outputs a short plain-text count of every group, meant for
// the terminal after the documents have been written.
type SummaryWriter struct {
	baseWriter
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer) *SummaryWriter {
	return &SummaryWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the per-group counts.
func (w *SummaryWriter) Write(doc *model.Document) (int, error) {
	var sb strings.Builder

	labels := map[model.Group]string{
		model.GroupContributor:    "Contributors",
		model.GroupTranslator:     "Translators",
		model.GroupGitHubSponsor:  "GitHub Sponsors",
		model.GroupPatreonSponsor: "Patreon Patrons",
	}
	for _, g := range model.Groups {
		fmt.Fprintf(&sb, "  %-16s %d\n", labels[g]+":", len(doc.Group(g)))
	}
	sb.WriteString(strings.Repeat("-", 22))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %-16s %d\n", "Total:", doc.Total())

	return io.WriteString(w.output, sb.String())
}
