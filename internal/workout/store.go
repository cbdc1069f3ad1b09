package workout

import (
	"strings"

	"github.com/LukeFitzGit/MyGymLog/internal/catalog"
	"github.com/LukeFitzGit/MyGymLog/internal/models"
)

// Update carries a partial set of field changes for one row. Nil fields are
// left untouched.
type Update struct {
	Exercise  *string
	Reps      *string
	Weight    *string
	IsEditing *bool
}

// Store owns the in-progress daily log: an ordered list of set rows. The
// presentation layer calls its operations and subscribes for auto-save; all
// mutation happens on one logical sequence, so there is no locking.
type Store struct {
	sets   []models.SetEntry
	loaded bool
	subs   []func([]models.SetEntry)
}

// NewStore creates an empty store. Call Replace + MarkLoaded once the day
// rollover has resolved the initial log.
func NewStore() *Store {
	return &Store{}
}

// Sets returns a snapshot of the current log
func (s *Store) Sets() []models.SetEntry {
	out := make([]models.SetEntry, len(s.sets))
	copy(out, s.sets)
	return out
}

// Len returns the number of rows in the log
func (s *Store) Len() int {
	return len(s.sets)
}

// Replace swaps in a freshly loaded log without notifying subscribers
func (s *Store) Replace(sets []models.SetEntry) {
	s.sets = make([]models.SetEntry, len(sets))
	copy(s.sets, sets)
}

// MarkLoaded enables auto-save notifications. Until the initial load has
// completed, mutations must not overwrite persisted state.
func (s *Store) MarkLoaded() {
	s.loaded = true
}

// Subscribe registers fn to run with a snapshot of the log after every
// mutation once the store is loaded
func (s *Store) Subscribe(fn func([]models.SetEntry)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	if !s.loaded {
		return
	}
	for _, fn := range s.subs {
		fn(s.Sets())
	}
}

func (s *Store) index(id string) int {
	for i := range s.sets {
		if s.sets[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateRow merges the given fields into the row with the given id. Unknown
// ids are ignored.
func (s *Store) UpdateRow(id string, update Update) {
	i := s.index(id)
	if i < 0 {
		return
	}
	if update.Exercise != nil {
		s.sets[i].Exercise = *update.Exercise
	}
	if update.Reps != nil {
		s.sets[i].Reps = *update.Reps
	}
	if update.Weight != nil {
		s.sets[i].Weight = *update.Weight
	}
	if update.IsEditing != nil {
		s.sets[i].IsEditing = *update.IsEditing
	}
	s.notify()
}

// ResolveRowOnBlur turns the row's raw exercise text into the best catalog
// candidate and leaves edit mode. Empty text keeps the row in edit mode.
func (s *Store) ResolveRowOnBlur(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	raw := s.sets[i].Exercise
	if strings.TrimSpace(raw) == "" {
		return
	}
	matches := catalog.Matches(raw, s.prevCategory(i))
	s.sets[i].Exercise = matches[0]
	s.sets[i].IsEditing = false
	s.notify()
}

// CycleRow steps a resolved row to the next exercise sharing its
// abbreviation, wrapping around after the last candidate
func (s *Store) CycleRow(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	current := s.sets[i].Exercise
	search := current
	if def, ok := catalog.Find(current); ok {
		search = def.Abbreviation
	}
	matches := catalog.Matches(search, s.prevCategory(i))
	next := (indexOf(matches, current) + 1) % len(matches)
	s.sets[i].Exercise = matches[next]
	s.notify()
}

// SubmitRow appends a fresh editable row when the submitted row is complete
// and is the last one. Anything else is a no-op.
func (s *Store) SubmitRow(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	if !s.sets[i].IsComplete() || i != len(s.sets)-1 {
		return
	}
	s.sets = append(s.sets, models.NewBlankSet())
	s.notify()
}

// DeleteRow removes the row with the given id. The log is never left empty:
// deleting the only row re-seeds a blank editable one.
func (s *Store) DeleteRow(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.sets = append(s.sets[:i], s.sets[i+1:]...)
	if len(s.sets) == 0 {
		s.sets = []models.SetEntry{models.NewBlankSet()}
	}
	s.notify()
}

// PrevCategory returns the catalog category of the row above index, used as
// the match preference while typing. Row 0 and rows below custom exercises
// have none.
func (s *Store) PrevCategory(index int) catalog.Category {
	return s.prevCategory(index)
}

func (s *Store) prevCategory(index int) catalog.Category {
	if index <= 0 || index > len(s.sets) {
		return ""
	}
	cat, ok := catalog.CategoryOf(s.sets[index-1].Exercise)
	if !ok {
		return ""
	}
	return cat
}

// CanDelete reports whether the row at index should show a delete control.
// Every row gets one except an empty trailing placeholder.
func (s *Store) CanDelete(index int) bool {
	if index < 0 || index >= len(s.sets) {
		return false
	}
	isLast := index == len(s.sets)-1
	return !isLast || s.sets[index].HasData()
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
