package memory

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/specification"
)

// query is the in-memory reading of a specification list.
type query struct {
	filters       []func(row any) bool
	orders        []specification.OrderBy
	offset        int
	limit         int // -1 means no limit
	withCompanion bool
}

func compile(specs []specification.Specification) (query, error) {
	q := query{limit: -1}
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			q.filters = append(q.filters, equals("id", s.ID.String()))
		case specification.ByAuthor:
			q.filters = append(q.filters, equals("author", s.Author))
		case specification.ByUserID:
			q.filters = append(q.filters, equals("user_id", s.UserID))
		case specification.ByCompanionID:
			q.filters = append(q.filters, equals("companion_id", s.CompanionID.String()))
		case specification.SubjectLike:
			q.filters = append(q.filters, contains("subject", s.Subject))
		case specification.TopicOrNameLike:
			topic, name := contains("topic", s.Topic), contains("name", s.Topic)
			q.filters = append(q.filters, func(row any) bool { return topic(row) || name(row) })
		case specification.OrderBy:
			q.orders = append(q.orders, s)
		case specification.Limit:
			q.limit = s.N
		case specification.Range:
			q.offset = s.From
			q.limit = s.Size()
		case specification.WithCompanion:
			q.withCompanion = true
		default:
			return q, fmt.Errorf("memory store: unsupported specification %T", spec)
		}
	}
	return q, nil
}

func (q query) run(rows []record) []any {
	matched := make([]record, 0, len(rows))
	for _, row := range rows {
		if q.matches(row.value) {
			matched = append(matched, row)
		}
	}

	if len(q.orders) > 0 {
		q.sort(matched)
	}

	offset := max(q.offset, 0)
	if offset >= len(matched) {
		return []any{}
	}
	matched = matched[offset:]
	if q.limit >= 0 && q.limit < len(matched) {
		matched = matched[:q.limit]
	}

	values := make([]any, len(matched))
	for i, row := range matched {
		values[i] = row.value
	}
	return values
}

// count ignores paging, like SELECT count(*).
func (q query) count(rows []record) int64 {
	var n int64
	for _, row := range rows {
		if q.matches(row.value) {
			n++
		}
	}
	return n
}

func (q query) matches(value any) bool {
	for _, filter := range q.filters {
		if !filter(value) {
			return false
		}
	}
	return true
}

func (q query) sort(rows []record) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, order := range q.orders {
			c := compareOn(order.Field, rows[i], rows[j])
			if c == 0 {
				continue
			}
			if order.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareOn(field string, a, b record) int {
	if field == "created_at" {
		// insertion order is creation order
		return cmp.Compare(a.seq, b.seq)
	}
	x, _ := column(a.value, field)
	y, _ := column(b.value, field)
	return strings.Compare(x, y)
}

func equals(field, want string) func(any) bool {
	return func(row any) bool {
		got, ok := column(row, field)
		return ok && got == want
	}
}

func contains(field, substr string) func(any) bool {
	needle := strings.ToLower(substr)
	return func(row any) bool {
		got, ok := column(row, field)
		return ok && strings.Contains(strings.ToLower(got), needle)
	}
}

func column(row any, field string) (string, bool) {
	switch r := row.(type) {
	case entity.Companion:
		switch field {
		case "id":
			return r.Id.String(), true
		case "name":
			return r.Name, true
		case "subject":
			return r.Subject, true
		case "topic":
			return r.Topic, true
		case "color":
			return r.Color, true
		case "author":
			return r.Author, true
		}
	case entity.SessionHistory:
		switch field {
		case "id":
			return r.Id.String(), true
		case "companion_id":
			return r.CompanionId.String(), true
		case "user_id":
			return r.UserId, true
		}
	case entity.Bookmark:
		switch field {
		case "id":
			return r.Id.String(), true
		case "companion_id":
			return r.CompanionId.String(), true
		case "user_id":
			return r.UserId, true
		}
	}
	return "", false
}
