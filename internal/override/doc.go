// Package override loads the hand-curated lists that are merged over the
// discovered rosters.
//
// An override file is a flat JSON object mapping a display name to a URL.
// It is checked against an embedded JSON Schema before it is decoded, so a
// file with a nested value or a non-object root is rejected with a
// ValidationError that names the offending field.
package override
