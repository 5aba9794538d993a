package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDailyAnalytics(c *gin.Context) {
	summary, err := s.analytics.DailySummary(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "analytics fetched", summary)
}

func (s *Server) handleFilteredAnalytics(c *gin.Context) {
	month := c.Query("month")
	year := 0
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		year = parsed
	}

	summary, err := s.analytics.PeriodSummary(c.Request.Context(), month, year)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "analytics fetched", summary)
}
