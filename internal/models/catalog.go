package models

import (
	"sort"
	"strings"
)

// Club is one entry in the clubs directory.
type Club struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CatalogEvent is an event as published on the events page, before a user
// saves it. Saving turns it into the EventRecord embedded here.
type CatalogEvent struct {
	EventRecord
	Description string `json:"description"`
}

// Clubs is the site's club directory.
var Clubs = []Club{
	{Name: "Art Society", Category: CategoryArts, URL: "club-art-society.html", Description: "Open studio sessions, gallery trips, and collaborative murals."},
	{Name: "Robotics Club", Category: CategoryTechnology, URL: "club-robotics.html", Description: "Build bots, enter competitions, and run hands-on workshops."},
	{Name: "Dance Club", Category: CategoryArts, URL: "club-dance.html", Description: "Weekly classes across styles, from salsa to hip hop."},
	{Name: "Outdoor Rec", Category: CategorySports, URL: "club-outdoor-rec.html", Description: "Hikes, paddles, and climbing days for every skill level."},
	{Name: "Cultural Exchange", Category: CategoryCultural, URL: "club-cultural-exchange.html", Description: "Share food, language, and traditions from around the world."},
	{Name: "Women in STEM", Category: CategoryAcademic, URL: "club-women-in-stem.html", Description: "Mentorship, panels, and study groups for women in science."},
	{Name: "Volunteers United", Category: CategoryService, URL: "club-volunteers-united.html", Description: "Campus and community service projects, one drive at a time."},
	{Name: "UMSU Clubs", Category: CategoryGeneral, URL: "club-umsu.html", Description: "The umbrella group behind club fairs and campus-wide socials."},
}

// Events is the published events catalog. Dates are stated explicitly here;
// the derivation in ExtractDateFromDatetime exists for records that arrive
// without one.
var Events = []CatalogEvent{
	{
		EventRecord: EventRecord{
			ID: "event-welcome-week-fair", Title: "Welcome Week Fair",
			Datetime: "Mon 8 Jan • 10:00–16:00", Location: "UMSU Quad",
			Club: "UMSU Clubs", URL: "event-welcome-week-fair.html",
			Category: CategoryGeneral, Date: "2024-01-08",
		},
		Description: "Meet every club on campus in one afternoon.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-hack-night", Title: "Hack Night",
			Datetime: "Tue 4 Feb • 18:00–22:00", Location: "E2 Atrium",
			Club: "Robotics Club", URL: "event-hack-night.html",
			Category: CategoryTechnology, Date: "2024-02-04",
		},
		Description: "An evening of team hacking, pizza included.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-robotics-workshop", Title: "Robotics Workshop",
			Datetime: "Sat 17 Feb • 13:00–16:00", Location: "Engineering Lab 230",
			Club: "Robotics Club", URL: "event-robotics-workshop.html",
			Category: CategoryTechnology, Date: "2024-02-17",
		},
		Description: "Intro to sensors and servos. No experience needed.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-cultural-potluck", Title: "Cultural Potluck",
			Datetime: "Fri 23 Feb • 17:30–20:00", Location: "Multipurpose Room",
			Club: "Cultural Exchange", URL: "event-cultural-potluck.html",
			Category: CategoryCultural, Date: "2024-02-23",
		},
		Description: "Bring a dish from home, leave with new friends.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-charity-drive", Title: "Charity Drive",
			Datetime: "Sat 2 Mar • 09:00–14:00", Location: "Campus Centre",
			Club: "Volunteers United", URL: "event-charity-drive.html",
			Category: CategoryService, Date: "2024-03-02",
		},
		Description: "Clothing and food collection for local shelters.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-dance-night", Title: "Dance Night",
			Datetime: "Fri 8 Mar • 19:00–23:00", Location: "Grand Hall",
			Club: "Dance Club", URL: "event-dance-night.html",
			Category: CategoryArts, Date: "2024-03-08",
		},
		Description: "Social dance with beginner lessons in the first hour.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-outdoor-rec-day-hike", Title: "Day Hike",
			Datetime: "Sun 24 Mar • 08:00–15:00", Location: "Trailhead Parking Lot",
			Club: "Outdoor Rec", URL: "event-outdoor-rec-day-hike.html",
			Category: CategorySports, Date: "2024-03-24",
		},
		Description: "A guided 12 km loop. Carpool spots available.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-wis-mentor-panel", Title: "Mentor Panel",
			Datetime: "Wed 3 Apr • 16:00–18:00", Location: "Lecture Theatre B",
			Club: "Women in STEM", URL: "event-wis-mentor-panel.html",
			Category: CategoryAcademic, Date: "2024-04-03",
		},
		Description: "Alumni talk careers, grad school, and everything between.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-art-jam", Title: "Art Jam",
			Datetime: "Thu 11 Apr • 17:00–20:00", Location: "Studio 3",
			Club: "Art Society", URL: "event-art-jam.html",
			Category: CategoryArts, Date: "2024-04-11",
		},
		Description: "Drop-in painting session, supplies provided.",
	},
	{
		EventRecord: EventRecord{
			ID: "event-meetup", Title: "Clubs Meetup",
			Datetime: "Tue 16 Apr • 12:00–13:00", Location: "Student Lounge",
			Club: "UMSU Clubs", URL: "event-meetup.html",
			Category: CategoryGeneral, Date: "2024-04-16",
		},
		Description: "Casual lunch meetup for club execs and members.",
	},
}

// EventFilter holds the events-page filter controls. Zero values mean the
// control is inactive.
type EventFilter struct {
	Query     string
	Category  string
	Club      string
	DateStart string
	DateEnd   string
}

// EventDateBounds returns the earliest and latest dated events in the
// catalog, for constraining date pickers. Both are empty when no event
// carries a date.
func EventDateBounds(events []CatalogEvent) (min, max string) {
	for _, e := range events {
		if e.Date == "" {
			continue
		}
		if min == "" || e.Date < min {
			min = e.Date
		}
		if e.Date > max {
			max = e.Date
		}
	}
	return min, max
}

// NormalizeDateRange cleans up a user-selected date range against the
// catalog bounds: a reversed range is swapped, a lone start past the last
// event or a lone end before the first is cleared so everything shows.
func NormalizeDateRange(start, end, minDate, maxDate string) (string, string) {
	if start != "" && end != "" && start > end {
		start, end = end, start
	}
	if start != "" && end == "" && maxDate != "" && start > maxDate {
		start = ""
	}
	if end != "" && start == "" && minDate != "" && end < minDate {
		end = ""
	}
	return start, end
}

// FilterEvents applies the events-page filters and returns matches sorted by
// date. Text matching is case-insensitive substring on the title; category
// and club are exact; the date range is inclusive and never excludes undated
// events.
func FilterEvents(events []CatalogEvent, f EventFilter) []CatalogEvent {
	minDate, maxDate := EventDateBounds(events)
	start, end := NormalizeDateRange(f.DateStart, f.DateEnd, minDate, maxDate)
	q := strings.ToLower(f.Query)

	var out []CatalogEvent
	for _, e := range events {
		if q != "" && !strings.Contains(strings.ToLower(e.Title), q) {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Club != "" && e.Club != f.Club {
			continue
		}
		if e.Date != "" {
			if start != "" && e.Date < start {
				continue
			}
			if end != "" && e.Date > end {
				continue
			}
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Date, out[j].Date
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
	return out
}

// FilterClubs applies the clubs-page filters: case-insensitive substring on
// name or description, exact category.
func FilterClubs(clubs []Club, query, category string) []Club {
	q := strings.ToLower(query)
	var out []Club
	for _, c := range clubs {
		matchText := q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q)
		if !matchText {
			continue
		}
		if category != "" && c.Category != category {
			continue
		}
		out = append(out, c)
	}
	return out
}
