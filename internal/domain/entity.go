package domain

// The API historically exposed entity identifiers under two spellings:
// "id" and the Mongo-style "_id". Every comparison in the app must go
// through NormalizeID so that the same document is never treated as two
// different entities.
func NormalizeID(id, altID string) string {
	if id != "" {
		return id
	}
	return altID
}

// NormalizeUpdatedAt resolves the "updatedAt"/"updated_at" pair the same
// way: the camelCase spelling wins when both are present.
func NormalizeUpdatedAt(camel, snake string) string {
	if camel != "" {
		return camel
	}
	return snake
}
