// Package model defines the data structures shared by every part of creditroll.
//
// This package contains the following main types:
//   - Identity: a credited person (display name and profile URL)
//   - Group: the category a person is credited under
//   - Roster: one group's name to URL mapping, before sorting
//   - Credits: the mutable accumulator filled by the pipeline steps
//   - Document: the sorted, immutable tree rendered by the report writers
//
// Groups never merge with each other. The same name may appear in several
// groups, for example a contributor who is also a sponsor.
package model
