package service

import (
	"fmt"
	"sort"
	"time"
)

// Activity is the common projection every source row is mapped into before
// the feed is merged. ID doubles as the notification idempotency key.
type Activity struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	User        string         `json:"user"`
	Email       string         `json:"email"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Time        time.Time      `json:"time"`
}

func ActivityID(kind string, id fmt.Stringer) string {
	return kind + "-" + id.String()
}

// SortActivities orders the merged feed newest first. Ties break on ID so
// repeated aggregations page identically.
func SortActivities(list []Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Time.Equal(list[j].Time) {
			return list[i].ID < list[j].ID
		}
		return list[i].Time.After(list[j].Time)
	})
}

// PageActivities slices one page out of the sorted feed. Pagination happens
// in memory because the sources are read whole.
func PageActivities(list []Activity, page, perPage int) []Activity {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return []Activity{}
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
