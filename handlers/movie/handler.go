package movie

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/movie-api/models"
	"github.com/webtor-io/movie-api/services/supabase"
)

// Limit caps the number of movies returned by the list endpoint.
const Limit = 100

type Handler struct {
	api *supabase.Api
}

func RegisterHandler(r *gin.Engine, api *supabase.Api) {
	h := &Handler{
		api: api,
	}
	r.GET("/movies.json", h.list)
	r.POST("/movies", h.create)
	r.PUT("/movies/:id", h.update)
	r.DELETE("/movies/:id", h.delete)
}

// idParam matches the int4 primary key of the movies table, so ids out of
// the 32-bit range are rejected before reaching the backend.
type idParam struct {
	ID int32 `uri:"id"`
}

// movieBody is the inbound create/update payload. Title is a pointer so that
// a missing title is rejected while an empty one is passed through.
type movieBody struct {
	Title       *string  `json:"title" binding:"required"`
	Tagline     *string  `json:"tagline"`
	Popularity  *float64 `json:"popularity"`
	ReleaseDate *string  `json:"release_date"`
}

func (b *movieBody) input() *models.MovieInput {
	return &models.MovieInput{
		Title:       *b.Title,
		Tagline:     b.Tagline,
		Popularity:  b.Popularity,
		ReleaseDate: b.ReleaseDate,
	}
}

func bindID(c *gin.Context) (int64, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.String(http.StatusBadRequest, "Invalid movie id: %v", c.Param("id"))
		return 0, false
	}
	return int64(p.ID), true
}

// bindBody decodes the whole body as a single JSON value. Trailing content
// after the value is a decode error.
func bindBody(c *gin.Context) (*models.MovieInput, bool) {
	var b movieBody
	if err := decodeBody(c, &b); err != nil {
		c.String(http.StatusBadRequest, "Failed to parse the request body as JSON: %v", err)
		return nil, false
	}
	return b.input(), true
}

func decodeBody(c *gin.Context, b *movieBody) error {
	data, err := c.GetRawData()
	if err != nil {
		return errors.Wrap(err, "failed to read body")
	}
	if err = json.Unmarshal(data, b); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(b)
}

func (s *Handler) abortWithError(c *gin.Context, err error, msg string) {
	var (
		notFound *supabase.NotFoundError
		rejected *supabase.RejectedError
	)
	switch {
	case errors.As(err, &notFound):
		c.String(http.StatusNotFound, "Movie not found")
	case errors.As(err, &rejected):
		log.WithError(err).WithField("status", rejected.StatusCode).Warn(msg)
		c.String(http.StatusBadRequest, rejected.Body)
	default:
		log.WithError(err).Error(msg)
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
