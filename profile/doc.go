// Package profile defines the personality data model and the per-session
// profile store.
//
// A Profile holds at most one result per assessment kind. Results are
// validated at construction time, mirroring the acquisition boundary of
// the assessment forms:
//   - BigFiveResult: five trait scores, clamped to [1,100] (bounded sliders)
//   - MBTIResult: four axis poles drawn from fixed two-letter alphabets
//   - EnneagramResult: primary type, adjacent wing, dominant instinct
//
// The store itself performs no validation and never fails: Set replaces,
// Get reads, IsEmpty gates the derived views. A Profile has a single
// logical writer (its session), so it carries no locking.
package profile
