package model

// CategoryCount is the number of contacts carrying a category.
type CategoryCount struct {
	Name  string
	Count int
}

// Stats summarizes a contact collection.
type Stats struct {
	Total            int
	Favorites        int
	WithPhone        int
	WithEmail        int
	FavoritesPercent int
	WithPhonePercent int
	WithEmailPercent int
	CategoryCounts   []CategoryCount
	TopCategory      *CategoryCount
}

// Overview is the derived view of the whole directory.
type Overview struct {
	Stats      Stats
	Letters    []string
	Colors     map[string]string
	Categories []Category
}
