package model

import "time"

type Post struct {
	ID        uint64     `db:"id" json:"id"`
	AuthorID  uint64     `db:"author_id" json:"authorId"`
	Title     string     `db:"title" json:"title"`
	Content   string     `db:"content" json:"content"`
	Tags      Tags       `db:"tags" json:"tags"`
	IsPublic  bool       `db:"is_public" json:"isPublic"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`

	Author *Author `db:"-" json:"author,omitempty"`
}

type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Content  string   `json:"content" validate:"required,max=10000"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	IsPublic *bool    `json:"isPublic"`
}

type UpdatePostRequest struct {
	Title    *string  `json:"title" validate:"omitempty,max=200"`
	Content  *string  `json:"content" validate:"omitempty,max=10000"`
	Tags     []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	IsPublic *bool    `json:"isPublic"`
}
