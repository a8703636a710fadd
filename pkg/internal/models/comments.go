package models

type Comment struct {
	BaseModel

	Content string `json:"content"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post,omitempty"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

// OwnerID feeds the authorization policy.
func (v Comment) OwnerID() uint {
	return v.AccountID
}
