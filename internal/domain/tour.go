package domain

import "encoding/json"

type TourType string

const (
	TourTypeAR  TourType = "ar"
	TourType360 TourType = "360"
)

// Tour is the wire shape served by GET /api/tours and /api/tours/:id.
// The career reference historically appeared as either "careerId" or
// "career"; use CareerKey for comparisons.
type Tour struct {
	ID           string          `json:"id"`
	AltID        string          `json:"_id,omitempty"`
	Title        string          `json:"title"`
	Duration     string          `json:"duration"`
	Progress     float64         `json:"progress"`
	Image        string          `json:"image,omitempty"`
	Description  string          `json:"description"`
	CareerID     string          `json:"careerId,omitempty"`
	CareerRef    string          `json:"career,omitempty"`
	Type         string          `json:"type"`
	Multimedia   json.RawMessage `json:"multimedia,omitempty"`
	Hotspots     json.RawMessage `json:"hotspots,omitempty"`
	ARConfig     json.RawMessage `json:"arConfig,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
	UpdatedAtAlt string          `json:"updated_at,omitempty"`
}

func (t Tour) Key() string {
	return NormalizeID(t.ID, t.AltID)
}

func (t Tour) CareerKey() string {
	return NormalizeID(t.CareerID, t.CareerRef)
}

func (t Tour) LastUpdated() string {
	return NormalizeUpdatedAt(t.UpdatedAt, t.UpdatedAtAlt)
}

// TourRecord is the database row behind a Tour.
type TourRecord struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	Duration    string          `db:"duration"`
	Progress    float64         `db:"progress"`
	ImageURL    *string         `db:"image_url"`
	Description string          `db:"description"`
	CareerID    *string         `db:"career_id"`
	Type        string          `db:"type"`
	Multimedia  json.RawMessage `db:"multimedia"`
	Hotspots    json.RawMessage `db:"hotspots"`
	ARConfig    json.RawMessage `db:"ar_config"`
	ModelObject *string         `db:"model_object"`
	UpdatedAt   string          `db:"updated_at"`
}
