package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Handler) create(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}
	movie, err := s.api.CreateMovie(c.Request.Context(), input)
	if err != nil {
		s.abortWithError(c, err, "failed to create movie")
		return
	}
	c.JSON(http.StatusCreated, movie)
}
