package models

// StoredImage references an uploaded image in remote storage.
type StoredImage struct {
	PublicID string `json:"filename"`
	URL      string `json:"url"`
}
