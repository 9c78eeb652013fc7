package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Info struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

var info = &Info{
	Message: "Movie API Server",
	Endpoints: []string{
		"GET /movies",
		"GET /movies.json",
		"POST /movies",
		"PUT /movies/:id",
		"DELETE /movies/:id",
		"/about",
	},
}

func RegisterHandler(r *gin.Engine) {
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	})
}
