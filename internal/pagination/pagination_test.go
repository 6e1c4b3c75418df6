package pagination

import "testing"

func TestNormalizeClampsInputs(t *testing.T) {
	cases := []struct {
		name             string
		page, size, def  int
		wantPage, wantPP int
	}{
		{"defaults", 0, 0, 10, 1, 10},
		{"negative page", -3, 5, 10, 1, 5},
		{"size over cap", 1, 500, 10, 1, 100},
		{"size at cap", 2, 100, 10, 2, 100},
		{"plain", 3, 7, 10, 3, 7},
	}
	for _, tc := range cases {
		p := Normalize(tc.page, tc.size, tc.def)
		if p.Page != tc.wantPage || p.PerPage != tc.wantPP {
			t.Fatalf("%s: got page=%d perPage=%d, want %d/%d", tc.name, p.Page, p.PerPage, tc.wantPage, tc.wantPP)
		}
	}
}

func TestMetaBounds(t *testing.T) {
	cases := []struct {
		name       string
		total      int
		page, size int
		wantLast   int
		wantFrom   int
		wantTo     int
	}{
		{"empty", 0, 1, 10, 0, 0, 0},
		{"single partial page", 3, 1, 10, 1, 1, 3},
		{"exact page", 10, 1, 10, 1, 1, 10},
		{"second page", 25, 2, 10, 3, 11, 20},
		{"last short page", 25, 3, 10, 3, 21, 25},
		{"page past end", 25, 9, 10, 3, 0, 0},
		{"page size one", 5, 4, 1, 5, 4, 4},
	}
	for _, tc := range cases {
		m := NewMeta(tc.total, Params{Page: tc.page, PerPage: tc.size})
		if m.LastPage != tc.wantLast {
			t.Fatalf("%s: lastPage=%d want %d", tc.name, m.LastPage, tc.wantLast)
		}
		if m.From != tc.wantFrom || m.To != tc.wantTo {
			t.Fatalf("%s: from/to=%d/%d want %d/%d", tc.name, m.From, m.To, tc.wantFrom, tc.wantTo)
		}
		if m.Total != tc.total || m.CurrentPage != tc.page || m.PerPage != tc.size {
			t.Fatalf("%s: meta echoes wrong inputs: %+v", tc.name, m)
		}
	}
}

func TestMetaInvariantsHold(t *testing.T) {
	for total := 0; total <= 53; total += 7 {
		for page := 1; page <= 8; page++ {
			for _, size := range []int{1, 3, 10} {
				m := NewMeta(total, Params{Page: page, PerPage: size})
				if m.From < 0 || m.From > m.To && m.From != 0 {
					t.Fatalf("total=%d page=%d size=%d: from=%d to=%d", total, page, size, m.From, m.To)
				}
				if m.To > m.Total {
					t.Fatalf("total=%d page=%d size=%d: to=%d exceeds total", total, page, size, m.To)
				}
				wantLast := 0
				if total > 0 {
					wantLast = (total + size - 1) / size
				}
				if m.LastPage != wantLast {
					t.Fatalf("total=%d size=%d: lastPage=%d want %d", total, size, m.LastPage, wantLast)
				}
			}
		}
	}
}

func TestMetaIdempotent(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	a := NewMeta(25, p)
	b := NewMeta(25, p)
	if a != b {
		t.Fatalf("same inputs produced different meta: %+v vs %+v", a, b)
	}
}
