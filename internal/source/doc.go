// Package source discovers the people credited by creditroll.
//
// Three sources are supported:
//   - GitReader runs git shortlog and lists every commit author
//   - CrowdinClient pages through the members of a Crowdin project
//   - SponsorsClient pages through the GitHub Sponsors of the token owner
//
// Every source returns a model.Roster. Paginated clients also expose their
// pages as an iter.Seq2 so callers can fold them without holding every page.
//
// API responses are decoded into typed structs and validated before any
// field is read; a response that does not have the expected shape fails
// with ErrUnexpectedResponse. No request is retried.
package source
