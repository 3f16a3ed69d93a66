package dto

import "time"

// RevalidateViewMessage is the payload carried on the revalidation topic.
type RevalidateViewMessage struct {
	Path        string    `json:"path"`
	RequestedAt time.Time `json:"requested_at"`
}
