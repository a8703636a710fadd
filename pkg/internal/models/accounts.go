package models

const (
	RoleReader = "READER"
	RoleEditor = "EDITOR"
	RoleAdmin  = "ADMIN"
)

type Account struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex" validate:"required,min=2"`
	Nick  string `json:"nick"`
	Email string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Role  string `json:"role" gorm:"default:READER"`

	Password string `json:"-"`

	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Location    string `json:"location"`
	Website     string `json:"website"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty"`
}

// IsAdmin reports whether the account holds moderation privileges.
func (v Account) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// CanAuthor reports whether the account may create new posts.
func (v Account) CanAuthor() bool {
	return v.Role == RoleEditor || v.Role == RoleAdmin
}
