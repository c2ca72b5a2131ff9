package nav

import "testing"

func TestEntriesOrderAndCount(t *testing.T) {
	entries := Entries()
	if len(entries) != 19 {
		t.Fatalf("len(Entries()) = %d, want 19", len(entries))
	}
	if entries[0].Label != "Home" {
		t.Fatalf("entries[0] = %q, want Home", entries[0].Label)
	}
	if entries[3].Label != "Job" {
		t.Fatalf("entries[3] = %q, want Job", entries[3].Label)
	}
	if entries[len(entries)-1].Label != "Rules" {
		t.Fatalf("last entry = %q, want Rules", entries[len(entries)-1].Label)
	}
}

func TestEntriesCategories(t *testing.T) {
	want := map[string]Category{
		"Home":      CategoryNormal,
		"Newspaper": CategoryUnread,
		"Hospital":  CategoryImportant,
		"Jail":      CategoryImportant,
		// Crimes is in both sets; important wins.
		"Crimes": CategoryImportant,
		"Rules":  CategoryNormal,
	}
	for _, entry := range Entries() {
		expected, ok := want[entry.Label]
		if !ok {
			continue
		}
		if entry.Category != expected {
			t.Fatalf("category for %q = %v, want %v", entry.Label, entry.Category, expected)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	unread := map[string]struct{}{"Both": {}, "OnlyUnread": {}}
	important := map[string]struct{}{"Both": {}, "OnlyImportant": {}}

	cases := []struct {
		label string
		want  Category
	}{
		{"Both", CategoryImportant},
		{"OnlyUnread", CategoryUnread},
		{"OnlyImportant", CategoryImportant},
		{"Neither", CategoryNormal},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			if got := Classify(tc.label, unread, important); got != tc.want {
				t.Fatalf("Classify(%q) = %v, want %v", tc.label, got, tc.want)
			}
		})
	}
}

func TestMoveClamping(t *testing.T) {
	const n = 5

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"up_at_top", MoveUp(0, n), 0},
		{"up_mid", MoveUp(3, n), 2},
		{"down_at_bottom", MoveDown(n-1, n), n - 1},
		{"down_mid", MoveDown(1, n), 2},
		{"clamp_negative", Clamp(-7, n), 0},
		{"clamp_overflow", Clamp(99, n), n - 1},
		{"clamp_empty", Clamp(3, 0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %d, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryNormal.String() != "normal" {
		t.Fatalf("CategoryNormal = %q", CategoryNormal.String())
	}
	if CategoryUnread.String() != "unread" {
		t.Fatalf("CategoryUnread = %q", CategoryUnread.String())
	}
	if CategoryImportant.String() != "important" {
		t.Fatalf("CategoryImportant = %q", CategoryImportant.String())
	}
}
