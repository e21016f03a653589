package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chimd111/umsu-clubs/database"
	"github.com/chimd111/umsu-clubs/internal/models"
	"github.com/chimd111/umsu-clubs/internal/notify"
	"github.com/chimd111/umsu-clubs/internal/views"
)

type Handler struct {
	Store *database.SavedEventStore
	Hub   *notify.Hub
}

func (h *Handler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetConfigHandler returns site metadata: categories, clubs, navigation, and
// the date bounds of the events catalog.
func (h *Handler) GetConfigHandler(c *gin.Context) {
	minDate, maxDate := models.EventDateBounds(models.Events)
	c.JSON(http.StatusOK, gin.H{
		"categories":   models.Categories,
		"clubs":        views.RenderClubCards(models.Clubs),
		"nav":          views.Nav(c.Query("page")),
		"minEventDate": minDate,
		"maxEventDate": maxDate,
		"storeKey":     database.StoreKey,
	})
}

// ListClubsHandler returns club cards filtered by ?q= and ?category=.
func (h *Handler) ListClubsHandler(c *gin.Context) {
	clubs := models.FilterClubs(models.Clubs, c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"clubs": views.RenderClubCards(clubs)})
}

// ListEventsHandler returns the events page: catalog tiles filtered by
// ?q=, ?category=, ?club=, ?dateStart=, ?dateEnd=, sorted by date, with Add
// controls pre-disabled for already-saved events.
func (h *Handler) ListEventsHandler(c *gin.Context) {
	filter := models.EventFilter{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		Club:      c.Query("club"),
		DateStart: strings.TrimSpace(c.Query("dateStart")),
		DateEnd:   strings.TrimSpace(c.Query("dateEnd")),
	}
	filtered := models.FilterEvents(models.Events, filter)
	saved := h.Store.ReadAll()
	c.JSON(http.StatusOK, gin.H{"events": views.RenderCatalogTiles(filtered, saved)})
}

// CalendarHandler returns calendar pills filtered by ?q=, ?category= and
// ?club=, with saved events marked.
func (h *Handler) CalendarHandler(c *gin.Context) {
	filter := models.EventFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Club:     c.Query("club"),
	}
	filtered := models.FilterEvents(models.Events, filter)
	c.JSON(http.StatusOK, gin.H{"pills": views.RenderPills(filtered, h.Store.ReadAll())})
}

// MyEventsHandler returns the full tile render of the saved-events list.
func (h *Handler) MyEventsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": views.RenderTiles(h.Store.ReadAll())})
}

// MyEventsBarHandler returns the compact chip render of the saved-events list.
func (h *Handler) MyEventsBarHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": views.RenderChips(h.Store.ReadAll())})
}

// SaveEventHandler is the Add binding: it accepts the tile's displayed
// attributes, derives category and date when absent, upserts the record, and
// responds with the full re-render of every saved-events surface so the
// calling view is consistent before any notification arrives.
func (h *Handler) SaveEventHandler(c *gin.Context) {
	var record models.EventRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if record.ID == "" {
		record.ID = eventIDFromURL(record.URL)
	}
	if record.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event id or url required"})
		return
	}

	list := h.Store.Upsert(record)
	c.JSON(http.StatusOK, h.fanOut(list))
}

// RemoveEventHandler is the Remove binding. Removing an unknown id succeeds
// with the unchanged list.
func (h *Handler) RemoveEventHandler(c *gin.Context) {
	list := h.Store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.fanOut(list))
}

// fanOut re-renders every surface that shows saved events, mirroring the
// render fan-out a view performs after a local mutation.
func (h *Handler) fanOut(list []models.EventRecord) gin.H {
	return gin.H{
		"events":    views.RenderTiles(list),
		"bar":       views.RenderChips(list),
		"addStates": views.AddButtonStates(models.Events, list),
		"pills":     views.RenderPills(models.Events, list),
	}
}

// eventIDFromURL derives a stable event id from its page URL, e.g.
// "event-hack-night.html" -> "event-hack-night".
func eventIDFromURL(url string) string {
	base := url
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".html")
}
