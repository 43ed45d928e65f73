package service

import (
	"testing"
	"time"
)

func feedAt(base time.Time) []Activity {
	return []Activity{
		{ID: "order-1", Time: base.Add(2 * time.Hour)},
		{ID: "user-1", Time: base},
		{ID: "payment-1", Time: base.Add(2 * time.Hour)},
		{ID: "attempt-1", Time: base.Add(time.Hour)},
	}
}

func TestSortActivitiesNewestFirst(t *testing.T) {
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	feed := feedAt(base)
	SortActivities(feed)

	// Equal timestamps break on ID so repeated sorts page identically.
	want := []string{"order-1", "payment-1", "attempt-1", "user-1"}
	for i, id := range want {
		if feed[i].ID != id {
			t.Fatalf("feed[%d].ID = %s, want %s", i, feed[i].ID, id)
		}
	}
}

func TestSortActivitiesDeterministic(t *testing.T) {
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	a := feedAt(base)
	b := feedAt(base)
	// Different input order, same output order.
	b[0], b[2] = b[2], b[0]

	SortActivities(a)
	SortActivities(b)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order diverged at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestPageActivities(t *testing.T) {
	feed := make([]Activity, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		feed = append(feed, Activity{ID: id})
	}

	page := PageActivities(feed, 1, 2)
	if len(page) != 2 || page[0].ID != "a" || page[1].ID != "b" {
		t.Fatalf("page 1 = %+v", page)
	}

	page = PageActivities(feed, 3, 2)
	if len(page) != 1 || page[0].ID != "e" {
		t.Fatalf("page 3 = %+v", page)
	}

	if page = PageActivities(feed, 4, 2); len(page) != 0 {
		t.Fatalf("page past end = %+v", page)
	}

	// Zero values normalize instead of panicking.
	if page = PageActivities(feed, 0, 0); len(page) != 5 {
		t.Fatalf("normalized page = %+v", page)
	}
}
