package models

// Movie mirrors a row of the backend movies table. Optional columns stay nil
// and are encoded as null.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Tagline     *string  `json:"tagline"`
	Popularity  *float64 `json:"popularity"`
	ReleaseDate *string  `json:"release_date"`
}

// MovieInput is the writable projection of Movie used for both create and
// update. The id is always assigned by the backend.
type MovieInput struct {
	Title       string   `json:"title"`
	Tagline     *string  `json:"tagline"`
	Popularity  *float64 `json:"popularity"`
	ReleaseDate *string  `json:"release_date"`
}
