package models

// Customer represents a person who has booked or may book a detailing service.
type Customer struct {
	BaseModel
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string `gorm:"size:30" json:"phone,omitempty"`
	Address   string `gorm:"size:255" json:"address,omitempty"`
	City      string `gorm:"size:100" json:"city,omitempty"`
	State     string `gorm:"size:50" json:"state,omitempty"`
	ZipCode   string `gorm:"size:20" json:"zipCode,omitempty"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
}
