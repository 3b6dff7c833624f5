package tasks

import (
	"fmt"
	"sort"
)

// StatusFilter narrows a listing to one status. The zero value ("all")
// performs no filtering.
type StatusFilter string

const FilterAll StatusFilter = "all"

// SortKey selects the ordering attribute of a listing.
type SortKey string

const (
	SortCreated SortKey = "created"
	SortTitle   SortKey = "title"
)

// SortOrder selects the direction of a listing.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Query composes a status filter with a sort key and direction. Filter and
// sort are orthogonal; either can change independently of the other.
type Query struct {
	Status StatusFilter
	Sort   SortKey
	Order  SortOrder
}

// DefaultQuery lists everything, newest first.
func DefaultQuery() Query {
	return Query{Status: FilterAll, Sort: SortCreated, Order: OrderDesc}
}

// ParseQuery validates raw filter/sort/order strings, substituting the
// defaults for empty values.
func ParseQuery(status, sortKey, order string) (Query, error) {
	q := DefaultQuery()

	switch status {
	case "", string(FilterAll):
	case string(StatusPending), string(StatusInProgress), string(StatusCompleted):
		q.Status = StatusFilter(status)
	default:
		return Query{}, fmt.Errorf("unknown status filter %q", status)
	}

	switch sortKey {
	case "", string(SortCreated):
	case string(SortTitle):
		q.Sort = SortTitle
	default:
		return Query{}, fmt.Errorf("unknown sort key %q", sortKey)
	}

	switch order {
	case "":
		// created defaults to newest first, title to ascending
		if q.Sort == SortTitle {
			q.Order = OrderAsc
		}
	case string(OrderAsc), string(OrderDesc):
		q.Order = SortOrder(order)
	default:
		return Query{}, fmt.Errorf("unknown sort order %q", order)
	}

	return q, nil
}

// Apply filters and sorts a fresh copy of list. The input is never mutated.
func (q Query) Apply(list []Task) []Task {
	out := make([]Task, 0, len(list))
	for _, t := range list {
		if q.Status != "" && q.Status != FilterAll && string(t.Status) != string(q.Status) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case SortTitle:
		sort.Slice(out, func(i, j int) bool {
			if q.Order == OrderDesc {
				return out[i].Title > out[j].Title
			}
			return out[i].Title < out[j].Title
		})
	default:
		sort.Slice(out, func(i, j int) bool {
			if q.Order == OrderAsc {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}
