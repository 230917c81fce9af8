package listview

import (
	"testing"
	"time"
)

type testRow struct {
	id         int64
	department string
	status     string
	owner      string
	assigned   *time.Time
}

func (r testRow) Field(key string) (Value, bool) {
	switch key {
	case "id":
		return Number(r.id), true
	case "department":
		return Text(r.department), true
	case "operational_status":
		return Text(r.status), true
	case "owner_fullname":
		return Text(r.owner), true
	case "assigned_date":
		return Date(r.assigned), true
	}
	return Value{}, false
}

func (r testRow) SearchText() []string {
	return []string{r.department, r.owner}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func ids(rows []testRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sampleRows() []testRow {
	return []testRow{
		{id: 1, department: "IT", status: "Active", owner: "Alice Mburu", assigned: date(2024, 1, 10)},
		{id: 2, department: "HR", status: "Active", owner: "Brian Otieno", assigned: date(2024, 3, 5)},
		{id: 3, department: "IT", status: "Maintenance", owner: "Carol Wanjiru", assigned: nil},
		{id: 4, department: "Finance", status: "Active", owner: "David Kim", assigned: date(2023, 11, 20)},
		{id: 5, department: "IT", status: "Active", owner: "Eve Njoroge", assigned: date(2024, 2, 1)},
	}
}

func TestFilterConjunction(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, Query{Filters: map[string]string{
		"department":         "IT",
		"operational_status": "Active",
	}})
	if !equalIDs(ids(got), []int64{1, 5}) {
		t.Fatalf("expected rows 1 and 5, got %v", ids(got))
	}

	// A single failing filter excludes the row even when others match.
	got = Filter(rows, Query{Filters: map[string]string{
		"department":         "IT",
		"operational_status": "Retired",
	}})
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %v", ids(got))
	}
}

func TestFilterEmptyValueIsNoConstraint(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, Query{Filters: map[string]string{"department": ""}})
	if len(got) != len(rows) {
		t.Fatalf("empty filter value must not constrain, got %d of %d rows", len(got), len(rows))
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, Query{Search: "wanjiru"})
	if !equalIDs(ids(got), []int64{3}) {
		t.Fatalf("expected row 3, got %v", ids(got))
	}

	got = Filter(rows, Query{Search: "OTIE"})
	if !equalIDs(ids(got), []int64{2}) {
		t.Fatalf("expected row 2, got %v", ids(got))
	}

	got = Filter(rows, Query{Search: "no-such-term"})
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %v", ids(got))
	}
}

func TestSearchANDsWithFilters(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, Query{
		Filters: map[string]string{"department": "IT"},
		Search:  "alice",
	})
	if !equalIDs(ids(got), []int64{1}) {
		t.Fatalf("expected row 1, got %v", ids(got))
	}
}

func TestDateRange(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, Query{Ranges: map[string]Range{
		"assigned_date": {
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 2, 28, 23, 59, 59, 0, time.UTC),
		},
	}})
	if !equalIDs(ids(got), []int64{1, 5}) {
		t.Fatalf("expected rows 1 and 5, got %v", ids(got))
	}

	// A missing date never satisfies a constrained range.
	for _, r := range got {
		if r.assigned == nil {
			t.Fatalf("row %d has no date and must not match", r.id)
		}
	}
}

func TestSortTextAscDescReversal(t *testing.T) {
	asc := sampleRows()
	SortRows(asc, Sort{Key: "owner_fullname", Direction: Ascending})

	desc := sampleRows()
	SortRows(desc, Sort{Key: "owner_fullname", Direction: Descending})

	for i := range asc {
		if asc[i].id != desc[len(desc)-1-i].id {
			t.Fatalf("descending order is not the reverse of ascending: asc=%v desc=%v", ids(asc), ids(desc))
		}
	}
}

func TestSortNumericNotLexical(t *testing.T) {
	rows := []testRow{{id: 2}, {id: 10}, {id: 1}}
	SortRows(rows, Sort{Key: "id", Direction: Ascending})
	if !equalIDs(ids(rows), []int64{1, 2, 10}) {
		t.Fatalf("expected numeric order 1,2,10, got %v", ids(rows))
	}
}

func TestSortMissingDatesLast(t *testing.T) {
	for _, dir := range []Direction{Ascending, Descending} {
		rows := sampleRows()
		SortRows(rows, Sort{Key: "assigned_date", Direction: dir})
		last := rows[len(rows)-1]
		if last.assigned != nil {
			t.Fatalf("direction %s: row without a date must sort last, got row %d", dir, last.id)
		}
		for _, r := range rows[:len(rows)-1] {
			if r.assigned == nil {
				t.Fatalf("direction %s: dateless row %d sorted before dated rows", dir, r.id)
			}
		}
	}
}

func TestSortStable(t *testing.T) {
	rows := []testRow{
		{id: 1, department: "IT"},
		{id: 2, department: "IT"},
		{id: 3, department: "IT"},
	}
	SortRows(rows, Sort{Key: "department", Direction: Ascending})
	if !equalIDs(ids(rows), []int64{1, 2, 3}) {
		t.Fatalf("equal keys must keep their relative order, got %v", ids(rows))
	}
}

func TestPaginateCoversEveryRowExactlyOnce(t *testing.T) {
	rows := sampleRows()
	for limit := 1; limit <= len(rows)+1; limit++ {
		seen := map[int64]int{}
		first := Paginate(rows, 1, limit)
		for page := 1; page <= first.TotalPages; page++ {
			res := Paginate(rows, page, limit)
			if res.Total != len(rows) {
				t.Fatalf("limit %d page %d: total %d, want %d", limit, page, res.Total, len(rows))
			}
			for _, r := range res.Rows {
				seen[r.id]++
			}
		}
		if len(seen) != len(rows) {
			t.Fatalf("limit %d: pages covered %d distinct rows, want %d", limit, len(seen), len(rows))
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("limit %d: row %d appeared %d times", limit, id, n)
			}
		}
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	rows := sampleRows()

	res := Paginate(rows, 99, 2)
	if res.Page != res.TotalPages {
		t.Fatalf("page beyond the end must clamp to the last page, got %d of %d", res.Page, res.TotalPages)
	}
	if len(res.Rows) == 0 {
		t.Fatalf("clamped page must not be empty")
	}

	res = Paginate(rows, 0, 2)
	if res.Page != 1 {
		t.Fatalf("page below 1 must clamp to 1, got %d", res.Page)
	}

	res = Paginate([]testRow(nil), 1, 50)
	if res.Total != 0 || res.TotalPages != 0 || len(res.Rows) != 0 {
		t.Fatalf("empty set: got total=%d pages=%d rows=%d", res.Total, res.TotalPages, len(res.Rows))
	}
}

func TestApplyPipelineScenario(t *testing.T) {
	rows := []testRow{
		{id: 1, department: "IT", status: "Active"},
		{id: 2, department: "HR", status: "Active"},
		{id: 3, department: "IT", status: "Maintenance"},
	}
	res := Apply(rows, Query{
		Filters: map[string]string{"department": "IT"},
		Sort:    Sort{Key: "id", Direction: Descending},
		Page:    1,
		Limit:   50,
	})
	if !equalIDs(ids(res.Rows), []int64{3, 1}) {
		t.Fatalf("expected [3 1], got %v", ids(res.Rows))
	}
	if res.Total != 2 || res.TotalPages != 1 {
		t.Fatalf("expected total 2 over 1 page, got total=%d pages=%d", res.Total, res.TotalPages)
	}
}
