package model

import "sync"

// Credits accumulates the roster of every group while the pipeline runs.
// It is safe for concurrent use; steps running in parallel each own a
// different group.
type Credits struct {
	mu      sync.RWMutex
	rosters map[Group]Roster
}

// NewCredits creates Credits with an empty roster for every group.
func NewCredits() *Credits {
	c := &Credits{rosters: make(map[Group]Roster, len(Groups))}
	for _, g := range Groups {
		c.rosters[g] = NewRoster()
	}
	return c
}

// Set replaces the roster of group g.
func (c *Credits) Set(g Group, r Roster) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r == nil {
		r = NewRoster()
	}
	c.rosters[g] = r
}

// Roster returns a copy of the roster of group g.
func (c *Credits) Roster(g Group) Roster {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rosters[g].Clone()
}

// Len returns the number of people credited in group g.
func (c *Credits) Len(g Group) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rosters[g])
}

// Document sorts every roster with coll and returns the report tree.
func (c *Credits) Document(coll *Collator) *Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Document{
		Contributor: c.rosters[GroupContributor].Sorted(coll),
		Translator:  c.rosters[GroupTranslator].Sorted(coll),
		Supporter: Supporters{
			GitHub:  c.rosters[GroupGitHubSponsor].Sorted(coll),
			Patreon: c.rosters[GroupPatreonSponsor].Sorted(coll),
		},
	}
}
