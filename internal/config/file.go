package config

// Default override file paths, relative to the working directory.
const (
	DefaultContributorOverrides    = "tools/patch-contributors-git.json"
	DefaultTranslatorOverrides     = "tools/patch-translators-crowdin.json"
	DefaultGitHubSponsorOverrides  = "tools/patch-supporters-github.json"
	DefaultPatreonSponsorOverrides = "tools/patch-supporters-patreon.json"
)

// File represents the structure of the creditroll configuration file.
type File struct {
	// Name is the project name used in the document title.
	// Defaults to the repository name.
	Name string `yaml:"name,omitempty"`

	// Locale is the BCP 47 locale used to order names (default "und").
	Locale string `yaml:"locale,omitempty"`

	// Links are the donation pages listed in the supporters section.
	Links Links `yaml:"links,omitempty"`

	// Text holds the prose printed under each heading.
	Text Text `yaml:"text,omitempty"`

	// Overrides holds the override file path for each group.
	Overrides Overrides `yaml:"overrides,omitempty"`

	// Endpoints overrides the API roots, mostly for GitHub Enterprise or tests.
	Endpoints Endpoints `yaml:"endpoints,omitempty"`
}

// Links are donation pages. Empty links are omitted from the document.
type Links struct {
	Patreon string `yaml:"patreon,omitempty"`
	GitHub  string `yaml:"github,omitempty"`
	PayPal  string `yaml:"paypal,omitempty"`
}

// Text is the prose printed under the section headings.
type Text struct {
	Contributors string `yaml:"contributors,omitempty"`
	Translators  string `yaml:"translators,omitempty"`
	Supporters   string `yaml:"supporters,omitempty"`
}

// Overrides maps each group to its override file.
type Overrides struct {
	Contributors   string `yaml:"contributors,omitempty"`
	Translators    string `yaml:"translators,omitempty"`
	GitHubSponsors string `yaml:"githubSponsors,omitempty"`
	Patreon        string `yaml:"patreon,omitempty"`
}

// Endpoints are the API roots used by the clients.
type Endpoints struct {
	Crowdin       string `yaml:"crowdin,omitempty"`
	GitHubGraphQL string `yaml:"githubGraphQL,omitempty"`
}

// NewFile returns a File with every default applied.
func NewFile() *File {
	f := &File{}
	f.ApplyDefaults()
	return f
}

// ApplyDefaults fills empty fields with their default values.
func (f *File) ApplyDefaults() {
	if f.Text.Contributors == "" {
		f.Text.Contributors = "Thanks go to the following people, who have either wrangled with code or wrangled with image editors while saving often in the hopes of not losing any changes:"
	}
	if f.Text.Translators == "" {
		f.Text.Translators = "Much thanks go out to all volunteer translators who have taken some time to submit translations on Crowdin."
	}
	if f.Overrides.Contributors == "" {
		f.Overrides.Contributors = DefaultContributorOverrides
	}
	if f.Overrides.Translators == "" {
		f.Overrides.Translators = DefaultTranslatorOverrides
	}
	if f.Overrides.GitHubSponsors == "" {
		f.Overrides.GitHubSponsors = DefaultGitHubSponsorOverrides
	}
	if f.Overrides.Patreon == "" {
		f.Overrides.Patreon = DefaultPatreonSponsorOverrides
	}
	if f.Endpoints.Crowdin == "" {
		f.Endpoints.Crowdin = DefaultCrowdinBaseURL
	}
	if f.Endpoints.GitHubGraphQL == "" {
		f.Endpoints.GitHubGraphQL = DefaultGitHubGraphQLURL
	}
}
