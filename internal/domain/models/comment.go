// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reader comment on a blog post (soft reference via BlogID).
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BlogID  primitive.ObjectID `bson:"blog_id" json:"blogId"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Website string             `bson:"website" json:"website"`
	Content string             `bson:"content" json:"content"`
	Date    time.Time          `bson:"date" json:"date"`
	Replies []Reply            `bson:"replies" json:"replies"`
}

// Reply is embedded in its parent Comment.
type Reply struct {
	Name    string    `bson:"name" json:"name"`
	Email   string    `bson:"email" json:"email"`
	Website string    `bson:"website" json:"website"`
	Content string    `bson:"content" json:"content"`
	Date    time.Time `bson:"date" json:"date"`
}
