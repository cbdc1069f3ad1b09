package models

// ArchivedSession is one finished day of training, moved from the live log
// into the history archive by the day rollover.
type ArchivedSession struct {
	Date string     `json:"date"`
	Data []SetEntry `json:"data"`
}

// TrendPoint is a single chart point in a strength trend series. Derived from
// the archive on demand, never persisted.
type TrendPoint struct {
	Value    int    `json:"value"`
	Label    string `json:"label"`
	FullDate string `json:"fullDate"`
}

// KVEntry is a persisted key/value pair
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
