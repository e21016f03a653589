package models

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// EventRecord is one event a user has chosen to track. All fields are strings;
// absent values are empty strings, never omitted, so renderers stay total.
type EventRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Datetime string `json:"datetime"` // free-form display text, e.g. "Tue 4 Feb • 18:00–22:00"
	Location string `json:"location"`
	Club     string `json:"club"`
	URL      string `json:"url"` // relative link to the event detail page
	Category string `json:"category"`
	Date     string `json:"date"` // ISO YYYY-MM-DD, empty when undeterminable
}

// The seven event categories. Anything else normalizes to CategoryGeneral.
const (
	CategoryGeneral    = "General"
	CategoryTechnology = "Technology"
	CategoryCultural   = "Cultural"
	CategoryService    = "Service"
	CategoryArts       = "Arts"
	CategorySports     = "Sports & Rec"
	CategoryAcademic   = "Academic"
)

// Categories lists the enumerated categories in display order.
var Categories = []string{
	CategoryGeneral,
	CategoryTechnology,
	CategoryCultural,
	CategoryService,
	CategoryArts,
	CategorySports,
	CategoryAcademic,
}

// eventCategories maps event page names to their categories.
var eventCategories = map[string]string{
	"event-welcome-week-fair.html":    CategoryGeneral,
	"event-hack-night.html":           CategoryTechnology,
	"event-robotics-workshop.html":    CategoryTechnology,
	"event-cultural-potluck.html":     CategoryCultural,
	"event-charity-drive.html":        CategoryService,
	"event-dance-night.html":          CategoryArts,
	"event-outdoor-rec-day-hike.html": CategorySports,
	"event-wis-mentor-panel.html":     CategoryAcademic,
	"event-art-jam.html":              CategoryArts,
	"event-meetup.html":               CategoryGeneral,
}

// canonicalCategories resolves lowercased user/page input to an enumerated
// category. "sports" is accepted as shorthand for "Sports & Rec".
var canonicalCategories = map[string]string{
	"general":      CategoryGeneral,
	"technology":   CategoryTechnology,
	"cultural":     CategoryCultural,
	"service":      CategoryService,
	"arts":         CategoryArts,
	"sports & rec": CategorySports,
	"sports":       CategorySports,
	"academic":     CategoryAcademic,
}

// categoryColorClasses maps lowercased categories to tile styling classes.
var categoryColorClasses = map[string]string{
	"arts":         "event-cat-arts",
	"technology":   "event-cat-technology",
	"sports & rec": "event-cat-sports",
	"sports":       "event-cat-sports",
	"general":      "event-cat-general",
	"cultural":     "event-cat-cultural",
	"service":      "event-cat-service",
	"academic":     "event-cat-academic",
}

// clubIcons maps club display names to a decorative glyph.
var clubIcons = map[string]string{
	"Art Society":       "🎨",
	"Robotics Club":     "🤖",
	"Dance Club":        "💃",
	"Outdoor Rec":       "🥾",
	"Cultural Exchange": "🌍",
	"Women in STEM":     "🧪",
	"Volunteers United": "🤝",
	"UMSU Clubs":        "🎉",
}

// defaultClubIcon is used for clubs without an entry in clubIcons.
const defaultClubIcon = "⭐"

// EventCategory returns the category for a known event page name.
// Unknown pages map to General.
func EventCategory(page string) string {
	if c, ok := eventCategories[page]; ok {
		return c
	}
	return CategoryGeneral
}

// CanonicalCategory snaps arbitrary category text onto the enumerated set.
// Matching is case-insensitive; unrecognized or empty input maps to General.
func CanonicalCategory(category string) string {
	if c, ok := canonicalCategories[strings.ToLower(category)]; ok {
		return c
	}
	return CategoryGeneral
}

// CategoryColorClass returns the tile styling class for a category.
// Total over all strings: unknown and empty input map to the General class.
func CategoryColorClass(category string) string {
	if c, ok := categoryColorClasses[strings.ToLower(category)]; ok {
		return c
	}
	return "event-cat-general"
}

// ChipColorClass returns the compact-chip variant of the category class.
func ChipColorClass(category string) string {
	return strings.Replace(CategoryColorClass(category), "event-", "chip-", 1)
}

// PillColorClass returns the calendar-pill variant of the category class.
func PillColorClass(category string) string {
	return strings.TrimPrefix(CategoryColorClass(category), "event-")
}

// ClubIcon returns the glyph for a club display name, or a default star
// for unknown clubs.
func ClubIcon(name string) string {
	if icon, ok := clubIcons[name]; ok {
		return icon
	}
	return defaultClubIcon
}

var datetimePattern = regexp.MustCompile(`(?i)(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// derivedYear is the year assumed for every date derived from display text.
// The source data never states a year, so events spanning a year boundary
// would be misdated; changing this needs a decision from the site owners.
const derivedYear = "2024"

// ExtractDateFromDatetime derives an ISO YYYY-MM-DD date from a display
// string like "Tue 4 Feb • 18:00–22:00". It matches a 1-2 digit day followed
// by a three-letter month abbreviation, case-insensitively. No match yields
// the empty string.
func ExtractDateFromDatetime(datetime string) string {
	m := datetimePattern.FindStringSubmatch(datetime)
	if m == nil {
		return ""
	}
	day := m[1]
	if len(day) == 1 {
		day = "0" + day
	}
	month, ok := monthNumbers[strings.ToLower(m[2])]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", derivedYear, month, day)
}

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatCalendarDate splits an ISO YYYY-MM-DD date into the month abbreviation
// and day number shown on a tearaway date badge. Empty or unparseable input
// yields two empty strings.
func FormatCalendarDate(date string) (month, day string) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return "", ""
	}
	var m, d int
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil || m < 1 || m > 12 {
		return "", ""
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &d); err != nil || d < 1 || d > 31 {
		return "", ""
	}
	return monthAbbrevs[m-1], fmt.Sprintf("%d", d)
}

// Normalize fills derived fields the caller did not supply: category from the
// event page name, date from the display datetime. The category is always
// snapped onto the enumerated set so renderers never see free-form text.
func Normalize(r EventRecord) EventRecord {
	if r.Category == "" {
		r.Category = EventCategory(r.URL)
	} else {
		r.Category = CanonicalCategory(r.Category)
	}
	if r.Date == "" {
		r.Date = ExtractDateFromDatetime(r.Datetime)
	}
	return r
}

// SortEventsByDate sorts records ascending by ISO date. Records without a
// date sort after all dated records. The sort is stable: ties and the
// undated tail keep their input order.
func SortEventsByDate(events []EventRecord) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Date, events[j].Date
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
}
