package models

import "time"

// StudentData holds every student attribute supplied by the create form.
// Grade and Major are free text at this level; only the form restricts them.
type StudentData struct {
	Name      string `json:"name" form:"name" validate:"required" example:"Ana"`
	NIS       string `json:"nis" form:"nis" validate:"required" example:"001"`                   // Student number, not unique
	Grade     string `json:"grade" form:"grade" validate:"required" example:"X"`
	Major     string `json:"major" form:"major" validate:"required" example:"IPA"`
	Phone     string `json:"phone" form:"phone" example:"081234567890"`
	Email     string `json:"email" form:"email" example:"ana@sekolah.sch.id"`
	Address   string `json:"address" form:"address" example:"Jl. Merdeka No. 1"`
	BirthDate string `json:"birthDate" form:"birthDate" example:"2008-05-17"`                     // YYYY-MM-DD, optional
	Gender    Gender `json:"gender" form:"gender" validate:"oneof=Laki-laki Perempuan" example:"Perempuan"`
}

// Student is a stored student record
type Student struct {
	ID string `json:"id" example:"5f0c7f0e-9a3b-4c55-8a61-2e0b1f3b6c2d"`
	StudentData
	CreatedAt time.Time `json:"createdAt" example:"2025-04-23T12:01:05Z"`
}
