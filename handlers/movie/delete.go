package movie

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// delete answers 204 even when nothing matched the id.
func (s *Handler) delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := s.api.DeleteMovie(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err, "failed to delete movie")
		return
	}
	c.Status(http.StatusNoContent)
}
