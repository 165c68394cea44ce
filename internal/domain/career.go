package domain

// Career is the wire shape served by GET /api/carreras. Both "id" and
// "_id" are emitted for compatibility with older app builds.
type Career struct {
	ID            string `json:"id"`
	AltID         string `json:"_id,omitempty"`
	Title         string `json:"title"`
	Tours         string `json:"tours,omitempty"`
	Rating        string `json:"rating,omitempty"`
	Reviews       string `json:"reviews,omitempty"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	IsHighlighted bool   `json:"isHighlighted"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	UpdatedAtAlt  string `json:"updated_at,omitempty"`
}

func (c Career) Key() string {
	return NormalizeID(c.ID, c.AltID)
}

func (c Career) LastUpdated() string {
	return NormalizeUpdatedAt(c.UpdatedAt, c.UpdatedAtAlt)
}

// CareerRecord is the database row behind a Career.
type CareerRecord struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Category      string  `db:"category"`
	IsHighlighted bool    `db:"is_highlighted"`
	TourCount     int     `db:"tour_count"`
	AverageRating float64 `db:"average_rating"`
	UpdatedAt     string  `db:"updated_at"`
}
