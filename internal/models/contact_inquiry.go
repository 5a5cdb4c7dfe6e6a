package models

// ContactInquiry is a write-only record from the public contact form.
type ContactInquiry struct {
	BaseModel
	Name    string `gorm:"size:200;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}
