package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/movie-api/services/supabase"
	w "github.com/webtor-io/movie-api/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = supabase.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting Supabase Api
	sapi, err := supabase.New(c, supabase.NewClient(c))
	if err != nil {
		return err
	}

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Gin
	var middleware []gin.HandlerFunc
	if cors := w.NewCORS(c); cors != nil {
		middleware = append(middleware, cors)
	}
	r, err := makeRouter(sapi, middleware...)
	if err != nil {
		return err
	}

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
