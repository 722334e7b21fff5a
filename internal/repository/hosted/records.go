package hosted

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dtroode/contacts-server/internal/model"
)

const (
	contactTable  = "contact_c"
	categoryTable = "category_c"
)

var contactFields = []string{
	"Id", "first_name_c", "last_name_c", "phone_c", "email_c", "company_c", "job_title_c",
	"categories_c", "notes_c", "is_favorite_c", "photo_url_c", "attachments_c", "CreatedOn", "ModifiedOn",
}

var categoryFields = []string{"Id", "name_c", "color_c", "icon_c"}

// errNoRecord marks a successful write envelope that carries no record.
var errNoRecord = errors.New("write returned no record")

type contactRecord struct {
	ID          int64      `json:"Id,omitempty"`
	FirstName   string     `json:"first_name_c"`
	LastName    string     `json:"last_name_c"`
	Phone       string     `json:"phone_c"`
	Email       string     `json:"email_c"`
	Company     string     `json:"company_c"`
	JobTitle    string     `json:"job_title_c"`
	Categories  string     `json:"categories_c"`
	Notes       string     `json:"notes_c"`
	IsFavorite  bool       `json:"is_favorite_c"`
	PhotoURL    string     `json:"photo_url_c"`
	Attachments string     `json:"attachments_c"`
	CreatedOn   *time.Time `json:"CreatedOn,omitempty"`
	ModifiedOn  *time.Time `json:"ModifiedOn,omitempty"`
}

type categoryRecord struct {
	ID    int64  `json:"Id,omitempty"`
	Name  string `json:"name_c"`
	Color string `json:"color_c"`
	Icon  string `json:"icon_c"`
}

func toContactRecord(c model.Contact) (contactRecord, error) {
	attachments := c.Attachments
	if attachments == nil {
		attachments = []model.Attachment{}
	}
	raw, err := json.Marshal(attachments)
	if err != nil {
		return contactRecord{}, err
	}

	return contactRecord{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		Email:       c.Email,
		Company:     c.Company,
		JobTitle:    c.JobTitle,
		Categories:  strings.Join(c.Categories, ","),
		Notes:       c.Notes,
		IsFavorite:  c.IsFavorite,
		PhotoURL:    c.PhotoURL,
		Attachments: string(raw),
	}, nil
}

func (r contactRecord) toModel() model.Contact {
	c := model.Contact{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Email:       r.Email,
		Company:     r.Company,
		JobTitle:    r.JobTitle,
		Categories:  splitCategories(r.Categories),
		Notes:       r.Notes,
		IsFavorite:  r.IsFavorite,
		PhotoURL:    r.PhotoURL,
		Attachments: []model.Attachment{},
	}
	if r.CreatedOn != nil {
		c.CreatedAt = r.CreatedOn.UTC()
	}
	if r.ModifiedOn != nil {
		c.UpdatedAt = r.ModifiedOn.UTC()
	}
	// Unparseable attachment lists are treated as empty.
	if r.Attachments != "" {
		var attachments []model.Attachment
		if err := json.Unmarshal([]byte(r.Attachments), &attachments); err == nil && attachments != nil {
			c.Attachments = attachments
		}
	}
	return c
}

func splitCategories(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toCategoryRecord(c model.Category) categoryRecord {
	return categoryRecord{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}

func (r categoryRecord) toModel() model.Category {
	return model.Category{ID: r.ID, Name: r.Name, Color: r.Color, Icon: r.Icon}
}

func recordsPayload(records ...any) (RecordsPayload, error) {
	p := RecordsPayload{Records: make([]json.RawMessage, 0, len(records))}
	for _, r := range records {
		raw, err := json.Marshal(r)
		if err != nil {
			return RecordsPayload{}, err
		}
		p.Records = append(p.Records, raw)
	}
	return p, nil
}

// decodeList reads an envelope whose data is an array of records.
func decodeList[T any](env Envelope) ([]T, error) {
	out := []T{}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeOne reads an envelope whose data is a single record. ok is false when
// the data is null.
func decodeOne[T any](env Envelope) (rec T, ok bool, err error) {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return rec, false, nil
	}
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return rec, false, err
	}
	return rec, true, nil
}
