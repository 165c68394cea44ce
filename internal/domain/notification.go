package domain

import "time"

type NotificationType string

const (
	NotifNewCareer         NotificationType = "new_career"
	NotifNewTour           NotificationType = "new_tour"
	NotifNewTestimonio     NotificationType = "new_testimonio"
	NotifCareerUpdated     NotificationType = "career_updated"
	NotifTourUpdated       NotificationType = "tour_updated"
	NotifTestimonioUpdated NotificationType = "testimonio_updated"
	NotifNewVersion        NotificationType = "new_version"
	NotifFeaturedCareer    NotificationType = "featured_career"
	NotifSystem            NotificationType = "system"
)

type Notification struct {
	ID        string            `json:"id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Read      bool              `json:"read"`
}
