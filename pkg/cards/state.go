package cards

// Key identifies a card within one load. Names are not guaranteed unique, so
// identity is the name plus the record's position in the catalog.
type Key struct {
	Name  string
	Index int
}

// ViewState is the per-session, UI-local state: the current query and the
// set of expanded cards. It is created on load, mutated by user interaction,
// and discarded when a new catalog supersedes the current one — never
// persisted.
type ViewState struct {
	Query    string
	expanded map[Key]struct{}
}

// NewViewState returns an empty state: no query, every card collapsed.
func NewViewState() *ViewState {
	return &ViewState{expanded: make(map[Key]struct{})}
}

// Expanded reports whether the card is expanded. Cards start collapsed.
func (vs *ViewState) Expanded(key Key) bool {
	_, ok := vs.expanded[key]
	return ok
}

// Toggle flips the card between collapsed and expanded and reports the new
// state.
func (vs *ViewState) Toggle(key Key) bool {
	if _, ok := vs.expanded[key]; ok {
		delete(vs.expanded, key)
		return false
	}
	vs.expanded[key] = struct{}{}
	return true
}

// Reset clears the query and collapses every card.
func (vs *ViewState) Reset() {
	vs.Query = ""
	vs.expanded = make(map[Key]struct{})
}
