// Package pipeline runs the discovery steps that fill a credits document.
//
// Each group of people (contributors, translators, GitHub sponsors and
// Patreon patrons) is produced by one Step: it asks its source for the
// discovered roster, merges the group's override file on top and stores
// the result in the shared model.Credits. Steps run one after another by
// default; WithConcurrency lets independent steps overlap, bounded by an
// errgroup limit.
//
// The pipeline stops at the first failed step. Nothing is written by this
// package; rendering happens only after Execute returns successfully.
package pipeline
