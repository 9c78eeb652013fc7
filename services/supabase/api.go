package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/movie-api/models"
)

const (
	urlFlag     = "supabase-url"
	keyFlag     = "supabase-key"
	timeoutFlag = "supabase-timeout"
)

const moviesPath = "/rest/v1/movies"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   urlFlag,
			Usage:  "supabase project url",
			EnvVar: "SUPABASE_URL",
		},
		cli.StringFlag{
			Name:   keyFlag,
			Usage:  "supabase api key",
			EnvVar: "SUPABASE_KEY",
		},
		cli.DurationFlag{
			Name:   timeoutFlag,
			Usage:  "supabase request timeout",
			EnvVar: "SUPABASE_TIMEOUT",
			Value:  10 * time.Second,
		},
	)
}

func NewClient(c *cli.Context) *http.Client {
	return &http.Client{
		Timeout: c.Duration(timeoutFlag),
	}
}

type Api struct {
	url            string
	cl             *http.Client
	prepareRequest func(r *http.Request) (*http.Request, error)
}

// New reads backend settings once. Both url and key are required, so a
// misconfigured process fails before it starts serving.
func New(c *cli.Context, cl *http.Client) (*Api, error) {
	u := c.String(urlFlag)
	if u == "" {
		return nil, errors.Wrapf(ErrConfigMissing, "flag %v (env SUPABASE_URL)", urlFlag)
	}
	key := c.String(keyFlag)
	if key == "" {
		return nil, errors.Wrapf(ErrConfigMissing, "flag %v (env SUPABASE_KEY)", keyFlag)
	}
	log.Infof("supabase api endpoint %v", u)
	return NewApi(cl, u, key), nil
}

func NewApi(cl *http.Client, url string, key string) *Api {
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		r.Header.Set("apikey", key)
		r.Header.Set("Authorization", "Bearer "+key)
		return r, nil
	}
	return &Api{
		url:            strings.TrimSuffix(url, "/"),
		cl:             cl,
		prepareRequest: prepareRequest,
	}
}

// ListMovies returns up to limit most recently created movies, newest first.
func (api *Api) ListMovies(ctx context.Context, limit int) ([]models.Movie, error) {
	query := fmt.Sprintf("select=*&limit=%d&order=id.desc", limit)
	req, err := api.newRequest(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}
	data, err := api.do(req)
	if err != nil {
		return nil, err
	}
	return decodeMovies(data)
}

func (api *Api) CreateMovie(ctx context.Context, input *models.MovieInput) (*models.Movie, error) {
	req, err := api.newRequest(ctx, http.MethodPost, "", input)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	data, err := api.do(req)
	if err != nil {
		return nil, err
	}
	movies, err := decodeRepresentation(data)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrEmptyResult
	}
	return &movies[0], nil
}

// UpdateMovie patches the movie with the given id. An empty representation
// means nothing matched and is reported as NotFoundError.
func (api *Api) UpdateMovie(ctx context.Context, id int64, input *models.MovieInput) (*models.Movie, error) {
	req, err := api.newRequest(ctx, http.MethodPatch, idFilter(id), input)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	data, err := api.do(req)
	if err != nil {
		return nil, err
	}
	movies, err := decodeRepresentation(data)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, &NotFoundError{ID: id}
	}
	return &movies[0], nil
}

func (api *Api) DeleteMovie(ctx context.Context, id int64) error {
	req, err := api.newRequest(ctx, http.MethodDelete, idFilter(id), nil)
	if err != nil {
		return err
	}
	_, err = api.do(req)
	return err
}

func idFilter(id int64) string {
	return fmt.Sprintf("id=eq.%d", id)
}

func (api *Api) newRequest(ctx context.Context, method string, query string, payload any) (*http.Request, error) {
	u := api.url + moviesPath
	if query != "" {
		u += "?" + query
	}
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode payload")
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req, err = api.prepareRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "prepare request")
	}
	return req, nil
}

func (api *Api) do(req *http.Request) ([]byte, error) {
	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := string(data)
		if err != nil {
			text = "Unknown error"
		}
		return nil, &RejectedError{StatusCode: resp.StatusCode, Body: text}
	}
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "read response")}
	}
	return data, nil
}

func decodeMovies(data []byte) ([]models.Movie, error) {
	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return movies, nil
}

// decodeRepresentation reads the rows echoed back by a write. Besides the
// default array it accepts a single object, which the backend returns when
// asked for one row.
func decodeRepresentation(data []byte) ([]models.Movie, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return decodeMovies(trimmed)
	}
	var movie models.Movie
	if err := json.Unmarshal(trimmed, &movie); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return []models.Movie{movie}, nil
}
