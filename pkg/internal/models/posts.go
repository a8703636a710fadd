package models

import (
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Slug        string                      `json:"slug" gorm:"uniqueIndex"`
	Title       string                      `json:"title"`
	Content     string                      `json:"content"`
	Description *string                     `json:"description"`
	Thumbnail   *string                     `json:"thumbnail"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
	Language    string                      `json:"language"`

	Published bool `json:"published"`

	Tags       []Tag       `json:"tags" gorm:"many2many:post_tags"`
	CategoryID *uint       `json:"category_id"`
	Category   *Category   `json:"category"`
	Comments   []Comment   `json:"comments,omitempty"`
	Likes      []Like      `json:"likes,omitempty"`
	SavedBy    []SavedPost `json:"saved_by,omitempty"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

// OwnerID feeds the authorization policy.
func (v Post) OwnerID() uint {
	return v.AuthorID
}

type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
	LikeCount    int64 `json:"like_count"`
	SaveCount    int64 `json:"save_count"`
}
