package main

import (
	"github.com/gin-gonic/gin"
	"github.com/webtor-io/movie-api/handlers/api"
	"github.com/webtor-io/movie-api/handlers/movie"
	"github.com/webtor-io/movie-api/handlers/page"
	"github.com/webtor-io/movie-api/services/supabase"
	"github.com/webtor-io/movie-api/services/template"
	w "github.com/webtor-io/movie-api/services/web"
)

// makeRouter builds the full route table. Middleware must be attached before
// any route is registered, so extra handlers are passed in.
func makeRouter(sapi *supabase.Api, middleware ...gin.HandlerFunc) (*gin.Engine, error) {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), w.Logger())
	r.Use(middleware...)

	// Setting template renderer
	re, err := template.NewRenderer()
	if err != nil {
		return nil, err
	}
	r.HTMLRender = re

	// Setting MovieHandler
	movie.RegisterHandler(r, sapi)

	// Setting ApiHandler
	api.RegisterHandler(r)

	// Setting PageHandler
	page.RegisterHandler(r)

	return r, nil
}
