package model

import "maps"

// Identity is a credited person: a display name and a profile URL.
// Nothing else about a person is retained.
type Identity struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Roster maps display names to profile URLs within one group.
// Names are unique within a roster; a later Set for the same name replaces
// the earlier URL.
type Roster map[string]string

// NewRoster returns an empty roster.
func NewRoster() Roster {
	return make(Roster)
}

// Set records name with the given URL, replacing any previous URL.
func (r Roster) Set(name, url string) {
	r[name] = url
}

// SetIfAbsent records name only if it is not already present.
// It reports whether the name was added.
func (r Roster) SetIfAbsent(name, url string) bool {
	if _, ok := r[name]; ok {
		return false
	}
	r[name] = url
	return true
}

// Merge returns a new roster holding r with every entry of overrides
// applied on top, replacing entries with the same name. Neither r nor
// overrides is modified, and overrides are not validated.
// Merging the same overrides twice yields the same roster as merging once.
func (r Roster) Merge(overrides Roster) Roster {
	merged := r.Clone()
	maps.Copy(merged, overrides)
	return merged
}

// Clone returns a shallow copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return NewRoster()
	}
	return maps.Clone(r)
}

// Sorted returns the roster's entries in display order.
func (r Roster) Sorted(c *Collator) SortedRoster {
	out := make(SortedRoster, 0, len(r))
	for name, url := range r {
		out = append(out, Identity{Name: name, URL: url})
	}
	c.SortIdentities(out)
	return out
}
