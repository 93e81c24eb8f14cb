package dto

import (
	"errors"

	"growth-archive-backend/internal/archive/domain"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrEmptyUpdate = errors.New("没有要更新的数据")

type CreateArchiveRequest struct {
	Title        string `json:"title" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	ImageURL     string `json:"image_url"`
	Description  string `json:"description"`
}

func (r CreateArchiveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.RuneLength(1, 50)),
		validation.Field(&r.Date, validation.Date(domain.DateLayout)),
	)
}

// UpdateArchiveRequest is a sparse patch: nil fields are left untouched.
type UpdateArchiveRequest struct {
	Title        *string `json:"title"`
	Category     *string `json:"category"`
	Organization *string `json:"organization"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
	ImageURL     *string `json:"image_url"`
	Description  *string `json:"description"`
}

func (r UpdateArchiveRequest) Validate() error {
	if len(r.Fields()) == 0 {
		return ErrEmptyUpdate
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.RuneLength(1, 200)),
		validation.Field(&r.Category, validation.NilOrNotEmpty, validation.RuneLength(1, 50)),
		validation.Field(&r.Date, validation.Date(domain.DateLayout)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(statusValues()...)),
	)
}

// Fields maps the present fields to their column names.
func (r UpdateArchiveRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("title", r.Title)
	set("category", r.Category)
	set("organization", r.Organization)
	set("date", r.Date)
	set("status", r.Status)
	set("image_url", r.ImageURL)
	set("description", r.Description)
	return fields
}

func statusValues() []interface{} {
	values := make([]interface{}, len(domain.Statuses))
	for i, s := range domain.Statuses {
		values[i] = string(s)
	}
	return values
}

// PresignUploadRequest asks for a URL to PUT an archive image to.
type PresignUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}
