package pages

// Page is the static text payload shown for a navigation entry: a short info
// blurb plus two side-by-side content panes.
type Page struct {
	Info  string
	Left  string
	Right string
}

// Table is an immutable label-to-page lookup built once at startup.
type Table struct {
	pages    map[string]Page
	fallback Page
}

// NewTable builds the full static content table.
func NewTable() *Table {
	return &Table{
		pages:    staticPages(),
		fallback: fallbackPage,
	}
}

// Lookup returns the page for a label, or the fallback placeholder when the
// label has no content mapped.
func (t *Table) Lookup(label string) Page {
	if page, ok := t.pages[label]; ok {
		return page
	}
	return t.fallback
}

// Fallback returns the placeholder page used for unmapped labels.
func (t *Table) Fallback() Page {
	return t.fallback
}

// Has reports whether a label has dedicated content.
func (t *Table) Has(label string) bool {
	_, ok := t.pages[label]
	return ok
}

var fallbackPage = Page{
	Info:  "This page is under construction.",
	Left:  "Left Box",
	Right: "Right Box",
}

func staticPages() map[string]Page {
	return map[string]Page{
		"Home": {
			Info:  "Welcome to your home screen. Here you’ll find your basic stats and property info.",
			Left:  "Stats overview",
			Right: "Current property info",
		},
		"Items": {
			Info:  "This is your inventory. All your collected items will be listed here.",
			Left:  "You have no items yet.",
			Right: "Use or discard items here.",
		},
		"City": {
			Info:  "Visit shops, explore zones, and interact with the city here.",
			Left:  "City zones overview",
			Right: "Shops and NPCs",
		},
		"Job": {
			Info:  "Check your current job, salary, and available tasks.",
			Left:  "Job title and salary",
			Right: "Current tasks",
		},
		"Gym": {
			Info:  "Train your stats here. Strength, speed, defense—you name it.",
			Left:  "Stat training panel",
			Right: "Recent training log",
		},
		"Properties": {
			Info:  "Buy, sell, or upgrade your properties.",
			Left:  "Owned properties",
			Right: "Market listings",
		},
		"Education": {
			Info:  "Enroll in courses to gain skills that unlock new opportunities.",
			Left:  "Current courses",
			Right: "Completed courses",
		},
		"Crimes": {
			Info:  "Perform crimes to gain money and experience. Risk vs reward!",
			Left:  "Available crimes",
			Right: "Crime success history",
		},
		"Missions": {
			Info:  "Complete missions for rewards and progression.",
			Left:  "Current missions",
			Right: "Completed missions",
		},
		"Newspaper": {
			Info:  "Read updates, events, and changes in the game world.",
			Left:  "Today’s headlines",
			Right: "Archived news",
		},
		"Jail": {
			Info:  "See your jail status and how to escape or wait it out.",
			Left:  "Time remaining",
			Right: "Escape options",
		},
		"Hospital": {
			Info:  "Check your injuries and time to recover.",
			Left:  "Injury status",
			Right: "Recovery tips",
		},
		"Casino": {
			Info:  "Try your luck with slots, blackjack, and roulette.",
			Left:  "Available games",
			Right: "Last win history",
		},
		"Forums": {
			Info:  "Chat with other players or browse announcements.",
			Left:  "Recent threads",
			Right: "Your replies",
		},
		"Hall of Fame": {
			Info:  "View top players ranked by wealth, strength, and more.",
			Left:  "Leaderboard",
			Right: "Your rank",
		},
		"Faction": {
			Info:  "Manage or join a faction to collaborate with others.",
			Left:  "Faction info",
			Right: "Member list",
		},
		"Recruit Citizens": {
			Info:  "Invite new players and earn rewards.",
			Left:  "Referral link",
			Right: "Recruit rewards",
		},
		"Calendar": {
			Info:  "Track daily and weekly events.",
			Left:  "Today’s events",
			Right: "Upcoming events",
		},
		"Rules": {
			Info:  "Review game rules and avoid punishment.",
			Left:  "Most broken rules",
			Right: "Reporting system",
		},
	}
}
