package model

import "time"

// NewsCategory classifies a news item.
type NewsCategory string

const (
	NewsNotice NewsCategory = "NOTICE"
	NewsEvent  NewsCategory = "EVENT"
	NewsUpdate NewsCategory = "UPDATE"
)

// NewsItem is an announcement. News has no update operation and no soft
// delete; items are appended and removed only.
type NewsItem struct {
	ID       string       `bson:"_id" json:"id"`
	Title    string       `bson:"title" json:"title"`
	Category NewsCategory `bson:"category" json:"category"`
	Content  string       `bson:"content" json:"content"`
	Date     time.Time    `bson:"date" json:"date"`
}

// NewsRequest is the admin payload for publishing a news item.
type NewsRequest struct {
	Title    string       `json:"title" binding:"required"`
	Category NewsCategory `json:"category" binding:"required"`
	Content  string       `json:"content" binding:"required"`
}
