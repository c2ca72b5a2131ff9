package nav

// Category classifies a navigation entry for display.
type Category int

const (
	// CategoryNormal is the default classification.
	CategoryNormal Category = iota
	// CategoryUnread marks entries with unseen content.
	CategoryUnread
	// CategoryImportant marks entries needing attention. Takes precedence
	// over CategoryUnread when a label is in both sets.
	CategoryImportant
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryUnread:
		return "unread"
	case CategoryImportant:
		return "important"
	default:
		return "normal"
	}
}

// Entry is one selectable item in the navigation menu. Entries are immutable
// after startup; the category is derived once from the membership sets.
type Entry struct {
	Label    string
	Category Category
}

// menuLabels is the fixed navigation order.
var menuLabels = []string{
	"Home", "Items", "City", "Job", "Gym", "Properties", "Education",
	"Crimes", "Missions", "Newspaper", "Jail", "Hospital", "Casino",
	"Forums", "Hall of Fame", "Faction", "Recruit Citizens", "Calendar", "Rules",
}

// Static membership sets. "Messages" appears in the unread set but not in the
// menu; it is harmless there and kept for parity with the mockup data.
var (
	unreadLabels    = map[string]struct{}{"Newspaper": {}, "Crimes": {}, "Messages": {}}
	importantLabels = map[string]struct{}{"Hospital": {}, "Jail": {}, "Crimes": {}}
)

// Classify returns the category for a label given the membership sets.
func Classify(label string, unread, important map[string]struct{}) Category {
	if _, ok := important[label]; ok {
		return CategoryImportant
	}
	if _, ok := unread[label]; ok {
		return CategoryUnread
	}
	return CategoryNormal
}

// Entries builds the navigation menu with categories precomputed. The returned
// slice is a fresh copy each call; callers own it.
func Entries() []Entry {
	entries := make([]Entry, 0, len(menuLabels))
	for _, label := range menuLabels {
		entries = append(entries, Entry{
			Label:    label,
			Category: Classify(label, unreadLabels, importantLabels),
		})
	}
	return entries
}

// Clamp restricts index i to the valid range for n entries.
func Clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// MoveUp returns the index one step up, clamped at the first entry.
func MoveUp(i, n int) int {
	return Clamp(i-1, n)
}

// MoveDown returns the index one step down, clamped at the last entry.
func MoveDown(i, n int) int {
	return Clamp(i+1, n)
}
