package domain

// Testimonial is the wire shape served by GET /api/testimonios. Older
// documents used Spanish field names ("autor", "testimonio"); the server
// maps them to the canonical fields, but the app still tolerates both.
type Testimonial struct {
	ID           string `json:"id"`
	AltID        string `json:"_id,omitempty"`
	Author       string `json:"author,omitempty"`
	Autor        string `json:"autor,omitempty"`
	AuthorImage  string `json:"authorImage,omitempty"`
	Role         string `json:"role,omitempty"`
	Year         string `json:"year,omitempty"`
	Text         string `json:"text"`
	MediaURL     string `json:"mediaUrl,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	UpdatedAtAlt string `json:"updated_at,omitempty"`
}

func (t Testimonial) Key() string {
	return NormalizeID(t.ID, t.AltID)
}

// AuthorName resolves the author alias pair, falling back to the label
// the original app showed for anonymous testimonials.
func (t Testimonial) AuthorName() string {
	if t.Author != "" {
		return t.Author
	}
	if t.Autor != "" {
		return t.Autor
	}
	return "Anónimo"
}

func (t Testimonial) LastUpdated() string {
	return NormalizeUpdatedAt(t.UpdatedAt, t.UpdatedAtAlt)
}

// TestimonialRecord is the database row behind a Testimonial.
type TestimonialRecord struct {
	ID          string  `db:"id"`
	Author      string  `db:"author"`
	AuthorImage *string `db:"author_image"`
	Role        string  `db:"role"`
	Year        string  `db:"year"`
	Text        string  `db:"text"`
	MediaURL    *string `db:"media_url"`
	UpdatedAt   string  `db:"updated_at"`
}
