package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the sorted report tree. Both the Markdown and the structured
// writers render from the same Document, so their ordering is identical.
type Document struct {
	Contributor SortedRoster `json:"contributor" yaml:"contributor"`
	Translator  SortedRoster `json:"translator" yaml:"translator"`
	Supporter   Supporters   `json:"supporter" yaml:"supporter"`
}

// Supporters groups the financial supporters by platform.
type Supporters struct {
	GitHub  SortedRoster `json:"github" yaml:"github"`
	Patreon SortedRoster `json:"patreon" yaml:"patreon"`
}

// Group returns the sorted roster of g.
func (d *Document) Group(g Group) SortedRoster {
	switch g {
	case GroupContributor:
		return d.Contributor
	case GroupTranslator:
		return d.Translator
	case GroupGitHubSponsor:
		return d.Supporter.GitHub
	case GroupPatreonSponsor:
		return d.Supporter.Patreon
	default:
		return nil
	}
}

// Total returns the number of entries across all groups.
func (d *Document) Total() int {
	n := 0
	for _, g := range Groups {
		n += len(d.Group(g))
	}
	return n
}

// SortedRoster is a roster in display order. It encodes as a JSON object
// (or YAML mapping) whose keys keep that order, unlike a Go map.
type SortedRoster []Identity

// Roster converts the sorted roster back into a Roster.
func (s SortedRoster) Roster() Roster {
	r := make(Roster, len(s))
	for _, id := range s {
		r[id.Name] = id.URL
	}
	return r
}

// Names returns the names in order.
func (s SortedRoster) Names() []string {
	names := make([]string, len(s))
	for i, id := range s {
		names[i] = id.Name
	}
	return names
}

// MarshalJSON encodes the roster as an ordered object of name to URL.
// HTML characters are written unescaped, but json.Marshal escapes them
// again when it compacts the result; encode through a json.Encoder with
// SetEscapeHTML(false) to keep them.
func (s SortedRoster) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, id.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, id.URL); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString appends s as a JSON string literal.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// UnmarshalJSON decodes an object of name to URL keeping the key order.
// Duplicate keys keep the position of the first occurrence and the value
// of the last, matching how a JSON parser fills a map.
func (s *SortedRoster) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("roster: expected JSON object")
	}

	out := SortedRoster{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("roster: unexpected key %v", keyTok)
		}
		var url string
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("roster: value of %q: %w", key, err)
		}
		if i, dup := index[key]; dup {
			out[i].URL = url
			continue
		}
		index[key] = len(out)
		out = append(out, Identity{Name: key, URL: url})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalYAML encodes the roster as an ordered mapping.
func (s SortedRoster) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, id := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.URL},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping of name to URL keeping the key order.
func (s *SortedRoster) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("roster: expected mapping at line %d", node.Line)
	}
	out := make(SortedRoster, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, Identity{
			Name: node.Content[i].Value,
			URL:  node.Content[i+1].Value,
		})
	}
	*s = out
	return nil
}
