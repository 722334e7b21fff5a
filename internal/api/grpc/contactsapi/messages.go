package contactsapi

import "time"

type Attachment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type Contact struct {
	ID          int64        `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Initials    string       `json:"initials"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Company     string       `json:"company"`
	JobTitle    string       `json:"jobTitle"`
	Notes       string       `json:"notes"`
	Categories  []string     `json:"categories"`
	IsFavorite  bool         `json:"isFavorite"`
	PhotoURL    string       `json:"photoUrl"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ContactInput carries the mutable contact fields. Omitted optional fields are stored empty.
type ContactInput struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Phone      *string  `json:"phone,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Company    *string  `json:"company,omitempty"`
	JobTitle   *string  `json:"jobTitle,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Categories []string `json:"categories,omitempty"`
	IsFavorite bool     `json:"isFavorite"`
	PhotoURL   *string  `json:"photoUrl,omitempty"`
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type CategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	Total            int             `json:"total"`
	Favorites        int             `json:"favorites"`
	WithPhone        int             `json:"withPhone"`
	WithEmail        int             `json:"withEmail"`
	FavoritesPercent int             `json:"favoritesPercent"`
	WithPhonePercent int             `json:"withPhonePercent"`
	WithEmailPercent int             `json:"withEmailPercent"`
	CategoryCounts   []CategoryCount `json:"categoryCounts"`
	TopCategory      *CategoryCount  `json:"topCategory,omitempty"`
}

// ListContactsRequest selects contacts. Letter is the letter clicked in the
// alphabet index and ActiveLetter the one currently applied; clicking the
// active letter clears it.
type ListContactsRequest struct {
	Query         string   `json:"query,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Letter        string   `json:"letter,omitempty"`
	ActiveLetter  string   `json:"activeLetter,omitempty"`
	FavoritesOnly bool     `json:"favoritesOnly,omitempty"`
}

type ListContactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Letter   string    `json:"letter,omitempty"`
}

type GetContactRequest struct {
	ID int64 `json:"id"`
}

type CreateContactRequest struct {
	Contact ContactInput `json:"contact"`
}

type UpdateContactRequest struct {
	ID      int64        `json:"id"`
	Contact ContactInput `json:"contact"`
}

type DeleteContactRequest struct {
	ID int64 `json:"id"`
}

type ToggleFavoriteRequest struct {
	ID int64 `json:"id"`
}

type ContactResponse struct {
	Contact Contact `json:"contact"`
}

type GetOverviewRequest struct{}

type OverviewResponse struct {
	Stats      Stats             `json:"stats"`
	Letters    []string          `json:"letters"`
	Colors     map[string]string `json:"colors"`
	Categories []Category        `json:"categories"`
}

type UploadAttachmentRequest struct {
	ContactID   int64  `json:"contactId"`
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Data        []byte `json:"data"`
}

type UploadAttachmentResponse struct {
	Contact    Contact    `json:"contact"`
	Attachment Attachment `json:"attachment"`
}

type DownloadAttachmentRequest struct {
	ContactID    int64  `json:"contactId"`
	AttachmentID string `json:"attachmentId"`
}

type DownloadAttachmentResponse struct {
	Attachment Attachment `json:"attachment"`
	Data       []byte     `json:"data"`
}

type DeleteAttachmentRequest struct {
	ContactID    int64  `json:"contactId"`
	AttachmentID string `json:"attachmentId"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type GetCategoryRequest struct {
	ID int64 `json:"id"`
}

type CreateCategoryRequest struct {
	Category CategoryInput `json:"category"`
}

type UpdateCategoryRequest struct {
	ID       int64         `json:"id"`
	Category CategoryInput `json:"category"`
}

type DeleteCategoryRequest struct {
	ID int64 `json:"id"`
}

type CategoryResponse struct {
	Category Category `json:"category"`
}
