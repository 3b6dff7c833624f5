package tasks

import (
	"testing"
	"time"
)

func queryFixture() []Task {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Task{
		{ID: "1", Title: "Pending Task 2", Status: StatusPending, CreatedAt: base},
		{ID: "2", Title: "Pending Task 1", Status: StatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: "3", Title: "Running Task", Status: StatusInProgress, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "4", Title: "Done Task", Status: StatusCompleted, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func titles(list []Task) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Title
	}
	return out
}

func TestQueryFilterAndTitleSortCompose(t *testing.T) {
	q := Query{Status: StatusFilter(StatusPending), Sort: SortTitle, Order: OrderAsc}

	got := titles(q.Apply(queryFixture()))
	want := []string{"Pending Task 1", "Pending Task 2"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestQueryDefaultsToNewestFirst(t *testing.T) {
	got := DefaultQuery().Apply(queryFixture())
	if len(got) != 4 {
		t.Fatalf("expected all 4 tasks, got %d", len(got))
	}
	if got[0].ID != "4" || got[3].ID != "1" {
		t.Errorf("unexpected order: %v", titles(got))
	}
}

func TestQueryTitleDescending(t *testing.T) {
	q := Query{Status: FilterAll, Sort: SortTitle, Order: OrderDesc}
	got := q.Apply(queryFixture())
	if got[0].Title != "Running Task" {
		t.Errorf("unexpected first title %q", got[0].Title)
	}
	if got[len(got)-1].Title != "Done Task" {
		t.Errorf("unexpected last title %q", got[len(got)-1].Title)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	in := queryFixture()
	firstID := in[0].ID

	q := Query{Status: FilterAll, Sort: SortTitle, Order: OrderAsc}
	q.Apply(in)

	if in[0].ID != firstID {
		t.Error("Apply reordered the input slice")
	}
}

func TestParseQuery(t *testing.T) {
	cases := []struct {
		name    string
		status  string
		sort    string
		order   string
		want    Query
		wantErr bool
	}{
		{name: "all defaults", want: DefaultQuery()},
		{name: "explicit all", status: "all", want: DefaultQuery()},
		{name: "pending filter", status: "pending", want: Query{Status: StatusFilter(StatusPending), Sort: SortCreated, Order: OrderDesc}},
		{name: "title defaults ascending", sort: "title", want: Query{Status: FilterAll, Sort: SortTitle, Order: OrderAsc}},
		{name: "title descending", sort: "title", order: "desc", want: Query{Status: FilterAll, Sort: SortTitle, Order: OrderDesc}},
		{name: "bad status", status: "archived", wantErr: true},
		{name: "bad sort", sort: "due", wantErr: true},
		{name: "bad order", order: "sideways", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuery(tc.status, tc.sort, tc.order)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
