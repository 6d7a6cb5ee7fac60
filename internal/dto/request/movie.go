package request

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=1000"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
}
