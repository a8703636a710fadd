package models

type Tag struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex" validate:"lowercase"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags"`
}

type Category struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Posts       []Post `json:"posts,omitempty"`
}
