package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrEmptyUpdate = errors.New("没有要更新的数据")

// UpdateProfileRequest is a sparse patch of the caller's profile.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	StudentID  *string `json:"student_id"`
	Avatar     *string `json:"avatar"`
	Grade      *string `json:"grade"`
	Major      *string `json:"major"`
	University *string `json:"university"`
}

func (r UpdateProfileRequest) Validate() error {
	if len(r.Fields()) == 0 {
		return ErrEmptyUpdate
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.RuneLength(1, 50)),
		validation.Field(&r.StudentID, validation.RuneLength(0, 32)),
	)
}

func (r UpdateProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("name", r.Name)
	set("student_id", r.StudentID)
	set("avatar", r.Avatar)
	set("grade", r.Grade)
	set("major", r.Major)
	set("university", r.University)
	return fields
}
