package strength

import (
	"math"
	"strconv"
	"strings"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
)

// BuildTrend reduces the history archive into a chart series for one
// exercise: per session, the best estimated 1RM across that exercise's sets.
// Sessions without a matching set contribute no point, and sets whose reps or
// weight never became valid numbers are skipped rather than crashed on.
func BuildTrend(history []models.ArchivedSession, exercise string) []models.TrendPoint {
	var points []models.TrendPoint

	for _, session := range history {
		best := 0.0
		found := false

		for _, set := range session.Data {
			if set.Exercise != exercise {
				continue
			}
			weight, reps, ok := parseSet(set)
			if !ok {
				continue
			}
			oneRM := Estimate1RM(weight, reps)
			if !found || oneRM > best {
				best = oneRM
				found = true
			}
		}

		if !found {
			continue
		}

		points = append(points, models.TrendPoint{
			Value:    int(math.Round(best)),
			Label:    shortDate(session.Date),
			FullDate: session.Date,
		})
	}

	return points
}

// parseSet extracts numeric weight and reps from a set's free-form fields
func parseSet(set models.SetEntry) (float64, int, bool) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(set.Weight), 64)
	if err != nil {
		return 0, 0, false
	}
	reps, err := strconv.Atoi(strings.TrimSpace(set.Reps))
	if err != nil {
		return 0, 0, false
	}
	return weight, reps, true
}

// shortDate keeps the first two /-delimited components of a date, e.g.
// "1/9/2025" becomes "1/9"
func shortDate(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) < 2 {
		return date
	}
	return parts[0] + "/" + parts[1]
}
