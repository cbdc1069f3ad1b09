package workout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeFitzGit/MyGymLog/internal/catalog"
	"github.com/LukeFitzGit/MyGymLog/internal/models"
	"github.com/LukeFitzGit/MyGymLog/internal/workout"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newLoadedStore(sets ...models.SetEntry) *workout.Store {
	store := workout.NewStore()
	store.Replace(sets)
	store.MarkLoaded()
	return store
}

func set(id, exercise, reps, weight string) models.SetEntry {
	return models.SetEntry{ID: id, Exercise: exercise, Reps: reps, Weight: weight}
}

func TestUpdateRow_MergesFields(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "5", "100"))

	store.UpdateRow("a", workout.Update{Reps: strPtr("8"), IsEditing: boolPtr(true)})

	sets := store.Sets()
	require.Len(t, sets, 1)
	assert.Equal(t, "Squat", sets[0].Exercise)
	assert.Equal(t, "8", sets[0].Reps)
	assert.Equal(t, "100", sets[0].Weight)
	assert.True(t, sets[0].IsEditing)
}

func TestUpdateRow_EmptyUpdateIsIdempotent(t *testing.T) {
	before := set("a", "Squat", "5", "100")
	store := newLoadedStore(before)

	store.UpdateRow("a", workout.Update{})

	assert.Equal(t, []models.SetEntry{before}, store.Sets())
}

func TestUpdateRow_UnknownIDIsNoop(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "5", "100"))

	var notified bool
	store.Subscribe(func([]models.SetEntry) { notified = true })
	store.UpdateRow("missing", workout.Update{Reps: strPtr("8")})

	assert.Equal(t, "5", store.Sets()[0].Reps)
	assert.False(t, notified)
}

func TestResolveRowOnBlur_ResolvesFirstCandidate(t *testing.T) {
	entry := set("a", "bp", "", "")
	entry.IsEditing = true
	store := newLoadedStore(entry)

	store.ResolveRowOnBlur("a")

	sets := store.Sets()
	assert.Equal(t, "Bench Press", sets[0].Exercise)
	assert.False(t, sets[0].IsEditing)
}

func TestResolveRowOnBlur_PrefersPreviousRowCategory(t *testing.T) {
	editing := set("b", "lp", "", "")
	editing.IsEditing = true
	store := newLoadedStore(set("a", "Squat", "5", "100"), editing)

	store.ResolveRowOnBlur("b")

	// Previous row is legs, so LP resolves to Leg Press, not Lat Pulldown
	assert.Equal(t, "Leg Press", store.Sets()[1].Exercise)
}

func TestResolveRowOnBlur_KeepsCustomName(t *testing.T) {
	entry := set("a", "Sled Push", "", "")
	entry.IsEditing = true
	store := newLoadedStore(entry)

	store.ResolveRowOnBlur("a")

	sets := store.Sets()
	assert.Equal(t, "Sled Push", sets[0].Exercise)
	assert.False(t, sets[0].IsEditing)
}

func TestResolveRowOnBlur_EmptyTextStaysEditing(t *testing.T) {
	entry := set("a", "   ", "", "")
	entry.IsEditing = true
	store := newLoadedStore(entry)

	store.ResolveRowOnBlur("a")

	assert.True(t, store.Sets()[0].IsEditing)
}

func TestCycleRow_StepsThroughSharedAbbreviation(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "", ""))

	store.CycleRow("a")
	assert.Equal(t, "Split Squat", store.Sets()[0].Exercise)

	// Wraps back around after the last candidate
	store.CycleRow("a")
	assert.Equal(t, "Squat", store.Sets()[0].Exercise)
}

func TestCycleRow_CustomNameCyclesToItself(t *testing.T) {
	store := newLoadedStore(set("a", "Sled Push", "", ""))

	store.CycleRow("a")

	assert.Equal(t, "Sled Push", store.Sets()[0].Exercise)
}

func TestSubmitRow_AppendsBlankRowOnce(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "5", "100"))

	store.SubmitRow("a")
	require.Equal(t, 2, store.Len())

	added := store.Sets()[1]
	assert.Empty(t, added.Exercise)
	assert.Empty(t, added.Reps)
	assert.Empty(t, added.Weight)
	assert.True(t, added.IsEditing)
	assert.NotEmpty(t, added.ID)

	// Submitting again before filling the new row changes nothing
	store.SubmitRow(added.ID)
	assert.Equal(t, 2, store.Len())
}

func TestSubmitRow_NonLastRowIsNoop(t *testing.T) {
	store := newLoadedStore(
		set("a", "Squat", "5", "100"),
		set("b", "Squat", "5", "100"),
	)

	store.SubmitRow("a")

	assert.Equal(t, 2, store.Len())
}

func TestSubmitRow_IncompleteRowIsNoop(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "", "100"))

	store.SubmitRow("a")

	assert.Equal(t, 1, store.Len())
}

func TestDeleteRow_RemovesEntry(t *testing.T) {
	store := newLoadedStore(
		set("a", "Squat", "5", "100"),
		set("b", "Squat", "5", "105"),
	)

	store.DeleteRow("a")

	sets := store.Sets()
	require.Len(t, sets, 1)
	assert.Equal(t, "b", sets[0].ID)
}

func TestDeleteRow_LastRowReseedsBlank(t *testing.T) {
	store := newLoadedStore(set("a", "Squat", "5", "100"))

	store.DeleteRow("a")

	sets := store.Sets()
	require.Len(t, sets, 1)
	assert.NotEqual(t, "a", sets[0].ID)
	assert.Empty(t, sets[0].Exercise)
	assert.True(t, sets[0].IsEditing)
}

func TestPrevCategory(t *testing.T) {
	store := newLoadedStore(
		set("a", "Squat", "5", "100"),
		set("b", "Sled Push", "5", "100"),
		set("c", "", "", ""),
	)

	assert.Equal(t, catalog.Category(""), store.PrevCategory(0))
	assert.Equal(t, catalog.Legs, store.PrevCategory(1))
	// Custom exercise above: no category preference
	assert.Equal(t, catalog.Category(""), store.PrevCategory(2))
}

func TestCanDelete(t *testing.T) {
	store := newLoadedStore(
		set("a", "Squat", "5", "100"),
		set("b", "", "", ""),
	)

	// Non-last rows always have a delete control
	assert.True(t, store.CanDelete(0))
	// Empty trailing placeholder never does
	assert.False(t, store.CanDelete(1))

	store.UpdateRow("b", workout.Update{Reps: strPtr("3")})
	assert.True(t, store.CanDelete(1))
}

func TestSubscribe_NotifiesAfterMutationsOnceLoaded(t *testing.T) {
	store := workout.NewStore()
	store.Replace([]models.SetEntry{set("a", "Squat", "5", "100")})

	var snapshots [][]models.SetEntry
	store.Subscribe(func(sets []models.SetEntry) { snapshots = append(snapshots, sets) })

	// Before loading completes, mutations must not trigger saves
	store.UpdateRow("a", workout.Update{Reps: strPtr("8")})
	assert.Empty(t, snapshots)

	store.MarkLoaded()
	store.UpdateRow("a", workout.Update{Reps: strPtr("9")})
	require.Len(t, snapshots, 1)
	assert.Equal(t, "9", snapshots[0][0].Reps)
}

func TestGroups(t *testing.T) {
	store := newLoadedStore(
		set("a", "Bench Press", "8", "80"),
		set("b", "Bench Press", "8", "80"),
		set("c", "Squat", "5", "100"),
		set("d", "Bench Press", "5", "85"),
	)

	groups := store.Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, "Bench Press", groups[0].Name)
	assert.Len(t, groups[0].Sets, 2)
	assert.Equal(t, 0, groups[0].StartIndex)
	assert.False(t, groups[0].Last)

	assert.Equal(t, "Squat", groups[1].Name)
	assert.Equal(t, 2, groups[1].StartIndex)

	// A later run of the same name is its own group, and the final run is
	// always the expanded one
	assert.Equal(t, "Bench Press", groups[2].Name)
	assert.Equal(t, 3, groups[2].StartIndex)
	assert.True(t, groups[2].Last)
}

func TestGroups_EmptyStore(t *testing.T) {
	assert.Empty(t, workout.NewStore().Groups())
}
