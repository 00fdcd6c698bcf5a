package profile

// Profile is the per-session store of assessment results: at most one
// result per kind. Set replaces any prior result of the same kind, so
// resubmitting an assessment overwrites rather than appends.
//
// Profile is not safe for concurrent use. Each session owns exactly one
// Profile and handles one event at a time, so no locking is needed.
type Profile struct {
	results map[Kind]Result
}

// New creates an empty Profile.
func New() *Profile {
	return &Profile{results: make(map[Kind]Result)}
}

// Set stores a result under its own kind, replacing any existing result
// of that kind. It always succeeds; results are validated at construction.
func (p *Profile) Set(r Result) {
	p.results[r.Kind()] = r
}

// Get returns the stored result for a kind, if any.
func (p *Profile) Get(kind Kind) (Result, bool) {
	r, ok := p.results[kind]
	return r, ok
}

// IsEmpty reports whether no assessment has been stored yet. Gated views
// (chat, analytics) check this before rendering.
func (p *Profile) IsEmpty() bool {
	return len(p.results) == 0
}

// StoredKinds returns the kinds present in the store, in canonical
// display order.
func (p *Profile) StoredKinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds {
		if _, ok := p.results[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// BigFive returns the stored Big Five result, if any.
func (p *Profile) BigFive() (BigFiveResult, bool) {
	r, ok := p.results[KindBigFive].(BigFiveResult)
	return r, ok
}

// MBTI returns the stored MBTI result, if any.
func (p *Profile) MBTI() (MBTIResult, bool) {
	r, ok := p.results[KindMBTI].(MBTIResult)
	return r, ok
}

// Enneagram returns the stored Enneagram result, if any.
func (p *Profile) Enneagram() (EnneagramResult, bool) {
	r, ok := p.results[KindEnneagram].(EnneagramResult)
	return r, ok
}
