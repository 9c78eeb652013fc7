package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Handler) update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	input, ok := bindBody(c)
	if !ok {
		return
	}
	movie, err := s.api.UpdateMovie(c.Request.Context(), id, input)
	if err != nil {
		s.abortWithError(c, err, "failed to update movie")
		return
	}
	c.JSON(http.StatusOK, movie)
}
