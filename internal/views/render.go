// Package views turns store contents and catalog data into the structures
// the pages display. Renderers are pure: they read records and produce view
// models, never touching the store.
package views

import (
	"fmt"
	"strings"

	"github.com/chimd111/umsu-clubs/internal/models"
)

// CalendarBadge is the tearaway date badge shown beside an event. Both
// fields are empty for undated events.
type CalendarBadge struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

// EventTile is a full event tile on the "My Upcoming Events" list.
type EventTile struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	URL        string          `json:"url"`
	Badge      CalendarBadge   `json:"badge"`
	Meta       string          `json:"meta"`
	HostedBy   string          `json:"hostedBy,omitempty"`
	ClubIcon   string          `json:"clubIcon"`
	ColorClass string          `json:"colorClass"`
	RemoveID   string          `json:"removeId,omitempty"`
	Region     ClickableRegion `json:"region"`
}

// EventChip is a compact saved-event chip on the main page bar.
type EventChip struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	URL        string          `json:"url"`
	Badge      CalendarBadge   `json:"badge"`
	Meta       string          `json:"meta"`
	Club       string          `json:"club,omitempty"`
	ClubIcon   string          `json:"clubIcon"`
	ColorClass string          `json:"colorClass"`
	Region     ClickableRegion `json:"region"`
}

// CalendarPill is one event link on the calendar grid.
type CalendarPill struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	Club       string `json:"club"`
	ColorClass string `json:"colorClass"`
	Mine       bool   `json:"mine"`
}

func badgeFor(date string) CalendarBadge {
	month, day := models.FormatCalendarDate(date)
	return CalendarBadge{Month: month, Day: day}
}

func metaLine(datetime, location string) string {
	meta := datetime
	if location != "" {
		meta = strings.TrimSpace(meta + " • " + location)
	}
	return strings.TrimSpace(meta)
}

// RenderTiles renders saved events as full tiles, sorted ascending by date
// with undated events last.
func RenderTiles(records []models.EventRecord) []EventTile {
	sorted := append([]models.EventRecord(nil), records...)
	models.SortEventsByDate(sorted)

	tiles := make([]EventTile, 0, len(sorted))
	for _, r := range sorted {
		tile := EventTile{
			ID:         r.ID,
			Title:      r.Title,
			URL:        r.URL,
			Badge:      badgeFor(r.Date),
			Meta:       metaLine(r.Datetime, r.Location),
			ClubIcon:   models.ClubIcon(r.Club),
			ColorClass: models.CategoryColorClass(r.Category),
			RemoveID:   r.ID,
			Region:     NewClickableRegion(r.URL, fmt.Sprintf("Event: %s", r.Title)),
		}
		if r.Club != "" {
			tile.HostedBy = fmt.Sprintf("Hosted by %s", r.Club)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// RenderChips renders saved events as compact chips in the same order as
// RenderTiles.
func RenderChips(records []models.EventRecord) []EventChip {
	sorted := append([]models.EventRecord(nil), records...)
	models.SortEventsByDate(sorted)

	chips := make([]EventChip, 0, len(sorted))
	for _, r := range sorted {
		chips = append(chips, EventChip{
			ID:         r.ID,
			Title:      r.Title,
			URL:        r.URL,
			Badge:      badgeFor(r.Date),
			Meta:       metaLine(r.Datetime, r.Location),
			Club:       r.Club,
			ClubIcon:   models.ClubIcon(r.Club),
			ColorClass: models.ChipColorClass(r.Category),
			Region:     NewClickableRegion(r.URL, fmt.Sprintf("Event: %s", r.Title)),
		})
	}
	return chips
}

// RenderPills renders catalog events as calendar pills, marking those whose
// URL matches a saved event.
func RenderPills(events []models.CatalogEvent, saved []models.EventRecord) []CalendarPill {
	mine := make(map[string]bool, len(saved))
	for _, r := range saved {
		mine[r.URL] = true
	}

	pills := make([]CalendarPill, 0, len(events))
	for _, e := range events {
		pills = append(pills, CalendarPill{
			Title:      e.Title,
			URL:        e.URL,
			Date:       e.Date,
			Category:   e.Category,
			Club:       e.Club,
			ColorClass: models.PillColorClass(e.Category),
			Mine:       mine[e.URL],
		})
	}
	return pills
}

// CatalogTile is an event tile on the events page: a full tile plus the
// catalog description and the state of its Add control.
type CatalogTile struct {
	EventTile
	Description string `json:"description"`
	AddDisabled bool   `json:"addDisabled"`
}

// ClubCard is one card on the clubs page.
type ClubCard struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Region      ClickableRegion `json:"region"`
}

// RenderCatalogTiles renders the events page: catalog events in the given
// (already filtered and sorted) order, with Add controls pre-disabled for
// events present in the saved list.
func RenderCatalogTiles(events []models.CatalogEvent, saved []models.EventRecord) []CatalogTile {
	savedIDs := make(map[string]bool, len(saved))
	for _, r := range saved {
		savedIDs[r.ID] = true
	}

	tiles := make([]CatalogTile, 0, len(events))
	for _, e := range events {
		tile := CatalogTile{
			EventTile: EventTile{
				ID:         e.ID,
				Title:      e.Title,
				URL:        e.URL,
				Badge:      badgeFor(e.Date),
				Meta:       metaLine(e.Datetime, e.Location),
				ClubIcon:   models.ClubIcon(e.Club),
				ColorClass: models.CategoryColorClass(e.Category),
				Region:     NewClickableRegion(e.URL, fmt.Sprintf("Event: %s", e.Title)),
			},
			Description: e.Description,
			AddDisabled: savedIDs[e.ID],
		}
		if e.Club != "" {
			tile.HostedBy = fmt.Sprintf("Hosted by %s", e.Club)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// RenderClubCards renders the clubs directory.
func RenderClubCards(clubs []models.Club) []ClubCard {
	cards := make([]ClubCard, 0, len(clubs))
	for _, c := range clubs {
		cards = append(cards, ClubCard{
			Name:        c.Name,
			Category:    c.Category,
			URL:         c.URL,
			Description: c.Description,
			Icon:        models.ClubIcon(c.Name),
			Region:      NewClickableRegion(c.URL, fmt.Sprintf("Club: %s", c.Name)),
		})
	}
	return cards
}

// AddButtonStates reports, per catalog event id, whether its Add control
// should render disabled because the event is already saved. Computed from
// the full store contents so buttons are correct before first paint.
func AddButtonStates(events []models.CatalogEvent, saved []models.EventRecord) map[string]bool {
	savedIDs := make(map[string]bool, len(saved))
	for _, r := range saved {
		savedIDs[r.ID] = true
	}
	states := make(map[string]bool, len(events))
	for _, e := range events {
		states[e.ID] = savedIDs[e.ID]
	}
	return states
}
