package views

import (
	"testing"

	"github.com/chimd111/umsu-clubs/internal/models"
)

var savedFixture = []models.EventRecord{
	{
		ID: "event-dance-night", Title: "Dance Night",
		Datetime: "Fri 8 Mar • 19:00–23:00", Location: "Grand Hall",
		Club: "Dance Club", URL: "event-dance-night.html",
		Category: models.CategoryArts, Date: "2024-03-08",
	},
	{
		ID: "event-tba", Title: "Date TBA",
		URL: "event-tba.html",
	},
	{
		ID: "event-hack-night", Title: "Hack Night",
		Datetime: "Tue 4 Feb • 18:00–22:00", Location: "E2 Atrium",
		Club: "Robotics Club", URL: "event-hack-night.html",
		Category: models.CategoryTechnology, Date: "2024-02-04",
	},
}

func TestRenderTilesOrderAndFields(t *testing.T) {
	tiles := RenderTiles(savedFixture)
	if len(tiles) != 3 {
		t.Fatalf("got %d tiles", len(tiles))
	}

	wantOrder := []string{"event-hack-night", "event-dance-night", "event-tba"}
	for i, id := range wantOrder {
		if tiles[i].ID != id {
			t.Fatalf("tile[%d] = %q, want %q", i, tiles[i].ID, id)
		}
	}

	hack := tiles[0]
	if hack.Badge != (CalendarBadge{Month: "Feb", Day: "4"}) {
		t.Errorf("badge = %+v", hack.Badge)
	}
	if hack.Meta != "Tue 4 Feb • 18:00–22:00 • E2 Atrium" {
		t.Errorf("meta = %q", hack.Meta)
	}
	if hack.HostedBy != "Hosted by Robotics Club" {
		t.Errorf("hostedBy = %q", hack.HostedBy)
	}
	if hack.ClubIcon != "🤖" {
		t.Errorf("clubIcon = %q", hack.ClubIcon)
	}
	if hack.ColorClass != "event-cat-technology" {
		t.Errorf("colorClass = %q", hack.ColorClass)
	}
	if hack.RemoveID != "event-hack-night" {
		t.Errorf("removeId = %q", hack.RemoveID)
	}
	if hack.Region.Href != "event-hack-night.html" || hack.Region.Label != "Event: Hack Night" {
		t.Errorf("region = %+v", hack.Region)
	}
}

func TestRenderTilesUndatedEvent(t *testing.T) {
	tiles := RenderTiles(savedFixture)
	tba := tiles[2]
	if tba.Badge != (CalendarBadge{}) {
		t.Errorf("undated badge = %+v, want empty", tba.Badge)
	}
	if tba.HostedBy != "" {
		t.Errorf("clubless hostedBy = %q, want empty", tba.HostedBy)
	}
	if tba.ClubIcon != "⭐" {
		t.Errorf("unknown club icon = %q", tba.ClubIcon)
	}
}

func TestRenderTilesDoesNotReorderInput(t *testing.T) {
	first := savedFixture[0].ID
	RenderTiles(savedFixture)
	if savedFixture[0].ID != first {
		t.Error("RenderTiles mutated its input")
	}
}

func TestRenderChips(t *testing.T) {
	chips := RenderChips(savedFixture)
	if len(chips) != 3 {
		t.Fatalf("got %d chips", len(chips))
	}
	if chips[0].ID != "event-hack-night" {
		t.Errorf("chip order differs from tile order: first is %q", chips[0].ID)
	}
	if chips[0].ColorClass != "chip-cat-technology" {
		t.Errorf("chip colorClass = %q", chips[0].ColorClass)
	}
	if chips[0].Club != "Robotics Club" {
		t.Errorf("chip club = %q", chips[0].Club)
	}
}

func TestRenderPillsMarksMine(t *testing.T) {
	pills := RenderPills(models.Events, savedFixture)
	if len(pills) != len(models.Events) {
		t.Fatalf("got %d pills, want %d", len(pills), len(models.Events))
	}
	for _, p := range pills {
		wantMine := p.URL == "event-hack-night.html" || p.URL == "event-dance-night.html"
		if p.Mine != wantMine {
			t.Errorf("pill %q mine = %v, want %v", p.URL, p.Mine, wantMine)
		}
	}
	if pills[1].ColorClass != "cat-technology" {
		t.Errorf("pill colorClass = %q", pills[1].ColorClass)
	}
}

func TestRenderCatalogTilesAddDisabled(t *testing.T) {
	tiles := RenderCatalogTiles(models.Events, savedFixture)
	for _, tile := range tiles {
		wantDisabled := tile.ID == "event-hack-night" || tile.ID == "event-dance-night"
		if tile.AddDisabled != wantDisabled {
			t.Errorf("tile %q addDisabled = %v, want %v", tile.ID, tile.AddDisabled, wantDisabled)
		}
	}
	if tiles[0].Description == "" {
		t.Error("catalog tile lost its description")
	}
}

// Catalog tiles keep the caller's order; filtering decides it upstream.
func TestRenderCatalogTilesKeepsOrder(t *testing.T) {
	events := []models.CatalogEvent{models.Events[3], models.Events[0]}
	tiles := RenderCatalogTiles(events, nil)
	if tiles[0].ID != events[0].ID || tiles[1].ID != events[1].ID {
		t.Errorf("order changed: %q, %q", tiles[0].ID, tiles[1].ID)
	}
}

func TestRenderClubCards(t *testing.T) {
	cards := RenderClubCards(models.Clubs)
	if len(cards) != len(models.Clubs) {
		t.Fatalf("got %d cards", len(cards))
	}
	for _, card := range cards {
		if card.Icon == "" {
			t.Errorf("club %q has no icon", card.Name)
		}
		if card.Region.Href != card.URL {
			t.Errorf("club %q region href = %q", card.Name, card.Region.Href)
		}
	}
}

func TestAddButtonStates(t *testing.T) {
	states := AddButtonStates(models.Events, savedFixture)
	if len(states) != len(models.Events) {
		t.Fatalf("got %d states, want one per catalog event", len(states))
	}
	if !states["event-hack-night"] {
		t.Error("saved event not marked disabled")
	}
	if states["event-art-jam"] {
		t.Error("unsaved event marked disabled")
	}
}

func TestNavMarksCurrent(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/events.html", "events.html"},
		{"calendar.html", "calendar.html"},
		{"/deep/path/clubs.html", "clubs.html"},
		{"", "index.html"},
		{"/", "index.html"},
	}
	for _, tt := range tests {
		links := Nav(tt.path)
		for _, l := range links {
			if l.Current != (l.Href == tt.want) {
				t.Errorf("Nav(%q): link %q current = %v", tt.path, l.Href, l.Current)
			}
		}
	}
}
