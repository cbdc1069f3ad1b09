package workout

import "github.com/LukeFitzGit/MyGymLog/internal/models"

// Group is a contiguous run of rows sharing the same exercise name. The view
// renders earlier groups collapsed behind a header with a set-count badge,
// while the most recent run stays inline.
type Group struct {
	Name string
	Sets []models.SetEntry
	// StartIndex is the position of the group's first row in the full log
	StartIndex int
	// Last marks the most recent run, which always renders expanded
	Last bool
}

// Groups partitions the log into contiguous runs of equal exercise name
func (s *Store) Groups() []Group {
	var groups []Group

	for i, set := range s.sets {
		if len(groups) == 0 || groups[len(groups)-1].Name != set.Exercise {
			groups = append(groups, Group{Name: set.Exercise, StartIndex: i})
		}
		last := &groups[len(groups)-1]
		last.Sets = append(last.Sets, set)
	}

	if len(groups) > 0 {
		groups[len(groups)-1].Last = true
	}
	return groups
}
