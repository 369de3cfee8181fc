// Package models defines client-side data models exchanged with the post
// service and rendered by the CLI.
package models

import "time"

// File is a file attached to a post. Content holds the searchable text
// extracted from the file.
type File struct {
	ID      string `json:"id"`
	PostID  string `json:"postId"`
	UserID  string `json:"userId"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// Post is a unit of shared content owned by a single user.
//
// Files is optional: the service fills it only when the post was fetched
// together with its attachments.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Files     []File    `json:"files,omitempty"`
}

func (p Post) HasFiles() bool {
	return len(p.Files) > 0
}

// Page is one page of the caller's own posts.
type Page struct {
	Posts []Post `json:"posts"`
	More  bool   `json:"morePosts"`
}

// Profile carries the user-editable profile settings.
type Profile struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
}

func (p Profile) IsEmpty() bool {
	return p.DisplayName == "" && p.Email == "" && p.Bio == ""
}
