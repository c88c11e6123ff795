package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/creditroll/internal/model"
	"github.com/nao1215/markdown"
)

// Donation is a donation page listed in the supporters section.
type Donation struct {
	// Platform is the link text, for example "Patreon".
	Platform string

	// URL is the donation page.
	URL string
}

// Intro holds the prose printed under the section headings.
type Intro struct {
	Contributors string
	Translators  string
	// Supporters replaces the generated donation sentence when non-empty.
	Supporters string
}

// MarkdownWriter outputs the credits page in Markdown format. Every record
// is a bullet linking the name to its URL, in the order of the document.
type MarkdownWriter struct {
	baseWriter

	// project is the name used in the title and the supporters sentence.
	project string

	intro     Intro
	donations []Donation
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithProjectName sets the project name used in the title.
func WithProjectName(name string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.project = name
	}
}

// WithIntro sets the section texts.
func WithIntro(intro Intro) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.intro = intro
	}
}

// WithDonations sets the donation pages. Entries with an empty URL are skipped.
func WithDonations(donations ...Donation) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.donations = w.donations[:0]
		for _, d := range donations {
			if d.URL != "" {
				w.donations = append(w.donations, d)
			}
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		project:    "Project",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *model.Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(w.project + " Contributors & Supporters")
	md.PlainText("")

	md.H2("Contributors")
	md.PlainText("")
	w.writeSection(md, "Code, Media", w.intro.Contributors, doc.Contributor)
	w.writeSection(md, "Translators", w.intro.Translators, doc.Translator)

	md.H2("Supporters")
	md.PlainText(w.supportersText())
	md.PlainText("")
	w.writeSection(md, "GitHub Sponsors", "", doc.Supporter.GitHub)
	w.writeSection(md, "Patreon Patrons", "", doc.Supporter.Patreon)

	return len(md.String()), md.Build()
}

// writeSection writes a heading, its optional intro and one bullet per record.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, title, intro string, records model.SortedRoster) {
	md.H3(title)
	if intro != "" {
		md.PlainText(intro)
		md.PlainText("")
	}
	for _, id := range records {
		md.PlainText("* " + markdown.Link(id.Name, id.URL))
	}
	md.PlainText("")
}

// supportersText returns the configured supporters intro or builds one
// from the donation pages.
func (w *MarkdownWriter) supportersText() string {
	if w.intro.Supporters != "" {
		return w.intro.Supporters
	}

	thanks := fmt.Sprintf("Huge thanks go out to the following people for supporting %s:", w.project)
	if len(w.donations) == 0 {
		return fmt.Sprintf("The %s project relies on generous donations from you. %s", w.project, thanks)
	}

	links := make([]string, len(w.donations))
	for i, d := range w.donations {
		links[i] = markdown.Link(d.Platform, d.URL)
	}
	return fmt.Sprintf("The %s project relies on generous donations from you through %s. %s",
		w.project, joinAlternatives(links), thanks)
}

// joinAlternatives joins items as "a", "a or b" or "a, b or c".
func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
