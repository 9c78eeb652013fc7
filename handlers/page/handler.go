package page

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-api/services/template"
)

// RegisterHandler binds the static pages and the not found fallback. The
// engine must render with template.NewRenderer.
func RegisterHandler(r *gin.Engine) {
	r.GET("/", view(http.StatusOK, template.Home))
	r.GET("/movies", view(http.StatusOK, template.Movies))
	r.GET("/about", view(http.StatusOK, template.About))
	r.NoRoute(view(http.StatusNotFound, template.NotFound))
}

func view(code int, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(code, name, nil)
	}
}
