package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (s *Handler) list(c *gin.Context) {
	movies, err := s.api.ListMovies(c.Request.Context(), Limit)
	if err != nil {
		log.WithError(err).Error("failed to list movies")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if movies == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	c.JSON(http.StatusOK, movies)
}
