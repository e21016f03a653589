package api

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chimd111/umsu-clubs/internal/models"
)

const icsProductID = "-//UMSU Clubs//My Upcoming Events//EN"

// ExportHandler downloads the saved-events list as ICS, CSV or JSON.
func (h *Handler) ExportHandler(c *gin.Context) {
	list := h.Store.ReadAll()
	models.SortEventsByDate(list)

	switch c.Query("format") {
	case "ics":
		c.Header("Content-Type", "text/calendar; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename=my-events.ics")
		c.String(http.StatusOK, buildICS(list, false))
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename=my-events.csv")
		writeCSV(c, list)
	case "json":
		c.Header("Content-Disposition", "attachment; filename=my-events.json")
		c.JSON(http.StatusOK, gin.H{"events": list})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format"})
	}
}

// SubscribeHandler serves the saved-events list as an inline ICS feed
// suitable for calendar subscriptions: METHOD:PUBLISH and no attachment
// disposition, so calendar apps can poll it.
func (h *Handler) SubscribeHandler(c *gin.Context) {
	list := h.Store.ReadAll()
	models.SortEventsByDate(list)

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.String(http.StatusOK, buildICS(list, true))
}

// buildICS renders saved events as all-day VEVENTs with stable UIDs so
// re-downloads update rather than duplicate. Undated events cannot be placed
// on a calendar and are skipped.
func buildICS(list []models.EventRecord, publish bool) string {
	cal := ics.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")
	if publish {
		cal.SetMethod(ics.MethodPublish)
	}

	now := time.Now().UTC()
	for _, r := range list {
		day, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s@umsu-clubs", r.ID))
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(r.Title)
		if r.Location != "" {
			ev.SetLocation(r.Location)
		}
		if r.Club != "" {
			ev.SetDescription(fmt.Sprintf("%s • Hosted by %s", r.Datetime, r.Club))
		} else {
			ev.SetDescription(r.Datetime)
		}
	}

	return cal.Serialize()
}

func writeCSV(c *gin.Context, list []models.EventRecord) {
	w := csv.NewWriter(c.Writer)
	records := [][]string{{"id", "title", "datetime", "location", "club", "url", "category", "date"}}
	for _, r := range list {
		records = append(records, []string{r.ID, r.Title, r.Datetime, r.Location, r.Club, r.URL, r.Category, r.Date})
	}
	if err := w.WriteAll(records); err != nil {
		zap.L().Error("Failed to write CSV export", zap.Error(err))
	}
}
