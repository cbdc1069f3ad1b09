package strength_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
	"github.com/LukeFitzGit/MyGymLog/internal/strength"
)

func TestBuildTrend_BasicSeries(t *testing.T) {
	history := []models.ArchivedSession{
		{Date: "1/1/24", Data: []models.SetEntry{
			{Exercise: "Squat", Reps: "5", Weight: "100"},
		}},
		{Date: "2/1/24", Data: []models.SetEntry{
			{Exercise: "Squat", Reps: "3", Weight: "110"},
		}},
	}

	points := strength.BuildTrend(history, "Squat")
	require.Len(t, points, 2)

	// round(100*36/32) and round(110*36/34)
	assert.Equal(t, 113, points[0].Value)
	assert.Equal(t, "1/1", points[0].Label)
	assert.Equal(t, "1/1/24", points[0].FullDate)
	assert.Equal(t, 116, points[1].Value)
	assert.Equal(t, "2/1", points[1].Label)
}

func TestBuildTrend_PicksBestSetPerSession(t *testing.T) {
	history := []models.ArchivedSession{
		{Date: "5/2/2025", Data: []models.SetEntry{
			{Exercise: "Bench Press", Reps: "10", Weight: "80"},
			{Exercise: "Bench Press", Reps: "1", Weight: "120"},
			{Exercise: "Bench Press", Reps: "8", Weight: "90"},
		}},
	}

	points := strength.BuildTrend(history, "Bench Press")
	require.Len(t, points, 1)
	assert.Equal(t, 120, points[0].Value)
}

func TestBuildTrend_SessionsWithoutExerciseContributeNothing(t *testing.T) {
	history := []models.ArchivedSession{
		{Date: "1/3/2025", Data: []models.SetEntry{
			{Exercise: "Deadlift", Reps: "5", Weight: "140"},
		}},
		{Date: "2/3/2025", Data: []models.SetEntry{
			{Exercise: "Squat", Reps: "5", Weight: "100"},
		}},
		{Date: "3/3/2025"},
	}

	points := strength.BuildTrend(history, "Squat")
	require.Len(t, points, 1)
	assert.Equal(t, "2/3", points[0].Label)
}

func TestBuildTrend_SkipsUnparseableSets(t *testing.T) {
	history := []models.ArchivedSession{
		{Date: "1/4/2025", Data: []models.SetEntry{
			{Exercise: "Squat", Reps: "five", Weight: "100"},
			{Exercise: "Squat", Reps: "5", Weight: ""},
			{Exercise: "Squat", Reps: "5", Weight: "102.5"},
		}},
		{Date: "2/4/2025", Data: []models.SetEntry{
			// Every matching set unparseable: no point for this session
			{Exercise: "Squat", Reps: "", Weight: ""},
		}},
	}

	points := strength.BuildTrend(history, "Squat")
	require.Len(t, points, 1)
	assert.Equal(t, 115, points[0].Value) // round(102.5*36/32)
}

func TestBuildTrend_EmptyHistory(t *testing.T) {
	assert.Empty(t, strength.BuildTrend(nil, "Squat"))
}

func TestBuildTrend_ShortLabelFallsBackToFullDate(t *testing.T) {
	history := []models.ArchivedSession{
		{Date: "2025-04-01", Data: []models.SetEntry{
			{Exercise: "Squat", Reps: "5", Weight: "100"},
		}},
	}

	points := strength.BuildTrend(history, "Squat")
	require.Len(t, points, 1)
	assert.Equal(t, "2025-04-01", points[0].Label)
}
