package entities

// StarRating is a single 1-10 quality score for a provider; scores are averaged at query time
type StarRating struct {
	ProviderKey int64   `json:"-" db:"provider_id"`
	Rating      int     `json:"rating" db:"rating"`
	Source      *string `json:"source,omitempty" db:"source"`
}

const (
	MinStarRating = 1
	MaxStarRating = 10
)

// Valid reports whether the rating is within the 1-10 scale
func (r StarRating) Valid() bool {
	return r.Rating >= MinStarRating && r.Rating <= MaxStarRating
}
