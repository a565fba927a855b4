package domain

// VideoGame represents one entry in the catalog. The ID is assigned by
// the storage layer on insert and is immutable afterwards. All four
// text fields are optional and carry no format or uniqueness
// constraints.
type VideoGame struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Developer string `json:"developer"`
	Publisher string `json:"publisher"`
}

// NewVideoGame creates a VideoGame with the given field values and no
// ID. The store assigns the ID when the record is persisted.
func NewVideoGame(title, platform, developer, publisher string) *VideoGame {
	return &VideoGame{
		Title:     title,
		Platform:  platform,
		Developer: developer,
		Publisher: publisher,
	}
}
