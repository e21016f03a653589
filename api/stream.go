package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamChangesHandler holds an SSE connection open and forwards store-change
// notifications to the view. The payload names only the storage key; clients
// filter on it and re-fetch the surfaces they show rather than applying any
// delta from the notification.
func (h *Handler) StreamChangesHandler(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	sub := h.Store.OnExternalChange()
	defer h.Hub.Unsubscribe(sub.ID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	zap.L().Debug("View subscribed to change stream", zap.String("subscriber", sub.ID))

	for {
		select {
		case change, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(change)
			if err != nil {
				zap.L().Error("Failed to marshal change notification", zap.Error(err))
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
