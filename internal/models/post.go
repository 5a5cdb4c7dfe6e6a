package models

// Post represents a content post managed from the admin dashboard.
type Post struct {
	BaseModel
	Title string `gorm:"size:255;not null" json:"title"`
	Body  string `gorm:"type:text;not null" json:"body"`
}

// Setting is a singular key/value site setting, e.g. the home page
// hero description.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// SettingHeroKey is the key under which the home page hero description is stored.
const SettingHeroKey = "hero"
