package workout

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
	"github.com/LukeFitzGit/MyGymLog/internal/storage"
)

// DateLayout is the calendar date stamp format (day/month/year, no padding)
const DateLayout = "2/1/2006"

// Today returns the current calendar date stamp
func Today() string {
	return time.Now().Format(DateLayout)
}

// OpenDay runs once at startup and decides what the live log starts as:
// resume today's saved log, or archive a stale one and start fresh. It never
// fails; unreadable state is logged and treated as absent. The archive
// append, the fresh log and the new date stamp are committed in one atomic
// write, so a rollover can never half-apply and duplicate a session on the
// next run.
func OpenDay(ctx context.Context, kv storage.KV, today string) []models.SetEntry {
	lastDate, hasLastDate := readKey(ctx, kv, storage.KeyLastDate)
	savedRaw, hasSaved := readKey(ctx, kv, storage.KeyCurrentWorkout)

	var sets []models.SetEntry
	writes := map[string]string{storage.KeyLastDate: today}

	switch {
	case !hasLastDate:
		// First-ever run
		sets = []models.SetEntry{models.NewBlankSet()}

	case lastDate != today:
		// New day: archive whatever was in progress, then start fresh
		if hasSaved {
			if saved, err := decodeSets(savedRaw); err == nil {
				if encoded, ok := archiveSession(ctx, kv, lastDate, saved); ok {
					writes[storage.KeyHistory] = encoded
				}
			} else {
				logrus.WithError(err).Warn("discarding unreadable in-progress log")
			}
		}
		sets = []models.SetEntry{models.NewBlankSet()}

	default:
		// Same day: resume the saved session
		if hasSaved {
			saved, err := decodeSets(savedRaw)
			if err != nil {
				logrus.WithError(err).Warn("discarding unreadable in-progress log")
			} else if len(saved) > 0 {
				sets = saved
			}
		}
		if len(sets) == 0 {
			sets = []models.SetEntry{models.NewBlankSet()}
		}
	}

	if encoded, err := json.Marshal(sets); err == nil {
		writes[storage.KeyCurrentWorkout] = string(encoded)
	} else {
		logrus.WithError(err).Error("encode current workout")
	}

	if err := kv.SetMulti(ctx, writes); err != nil {
		logrus.WithError(err).Error("persist day rollover")
	}

	return sets
}

// archiveSession appends one finished day to the history archive and returns
// the new encoded archive
func archiveSession(ctx context.Context, kv storage.KV, date string, data []models.SetEntry) (string, bool) {
	history := LoadHistory(ctx, kv)
	history = append(history, models.ArchivedSession{Date: date, Data: data})

	encoded, err := json.Marshal(history)
	if err != nil {
		logrus.WithError(err).Error("encode workout history")
		return "", false
	}
	logrus.WithField("date", date).Info("archived workout session")
	return string(encoded), true
}

// LoadHistory reads the full history archive, oldest first. Missing or
// unreadable history degrades to empty.
func LoadHistory(ctx context.Context, kv storage.KV) []models.ArchivedSession {
	raw, found := readKey(ctx, kv, storage.KeyHistory)
	if !found {
		return nil
	}
	var history []models.ArchivedSession
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		logrus.WithError(err).Warn("discarding unreadable workout history")
		return nil
	}
	return history
}

// AttachAutoSave persists the in-progress log after every store mutation.
// Write failures are logged and swallowed; the session lives on in memory.
func AttachAutoSave(ctx context.Context, store *Store, kv storage.KV) {
	store.Subscribe(func(sets []models.SetEntry) {
		encoded, err := json.Marshal(sets)
		if err != nil {
			logrus.WithError(err).Error("encode current workout")
			return
		}
		if err := kv.Set(ctx, storage.KeyCurrentWorkout, string(encoded)); err != nil {
			logrus.WithError(err).Error("auto-save current workout")
		}
	})
}

func readKey(ctx context.Context, kv storage.KV, key string) (string, bool) {
	value, found, err := kv.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage read failed, treating as absent")
		return "", false
	}
	return value, found
}

func decodeSets(raw string) ([]models.SetEntry, error) {
	var sets []models.SetEntry
	if err := json.Unmarshal([]byte(raw), &sets); err != nil {
		return nil, err
	}
	return sets, nil
}
