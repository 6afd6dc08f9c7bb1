package handler

import (
	"net/http"
	"os"

	"github.com/NotBunBun/simulacion-roles/internal/storage"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. The only dependency worth
// probing is the data directory; a missing dir is fine (created on first
// write), anything else unreadable is not.
func Health(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataStatus := "ok"
		if _, err := os.Stat(store.Dir()); err != nil && !os.IsNotExist(err) {
			dataStatus = "error"
		}

		status := http.StatusOK
		if dataStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":   status == http.StatusOK,
			"data": dataStatus,
		})
	}
}
