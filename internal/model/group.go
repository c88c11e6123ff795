package model

import "fmt"

// Group is the category a person is credited under.
type Group int

const (
	// GroupContributor holds people found in version-control history.
	GroupContributor Group = iota

	// GroupTranslator holds members of the translation platform project.
	GroupTranslator

	// GroupGitHubSponsor holds GitHub Sponsors of the account owning the token.
	GroupGitHubSponsor

	// GroupPatreonSponsor holds Patreon patrons. Patreon has no discovery
	// source, so this group is filled from its override file only.
	GroupPatreonSponsor
)

// Groups lists every group in report order.
var Groups = []Group{
	GroupContributor,
	GroupTranslator,
	GroupGitHubSponsor,
	GroupPatreonSponsor,
}

// String returns the key used for the group in the structured output.
func (g Group) String() string {
	switch g {
	case GroupContributor:
		return "contributor"
	case GroupTranslator:
		return "translator"
	case GroupGitHubSponsor:
		return "github"
	case GroupPatreonSponsor:
		return "patreon"
	default:
		return "unknown"
	}
}

// ParseGroup converts a structured output key back into a Group.
func ParseGroup(s string) (Group, error) {
	for _, g := range Groups {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown group %q", s)
}

// IsSupporter reports whether the group is nested under "supporter"
// in the structured output.
func (g Group) IsSupporter() bool {
	return g == GroupGitHubSponsor || g == GroupPatreonSponsor
}
