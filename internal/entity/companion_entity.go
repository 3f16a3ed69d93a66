package entity

import (
	"time"

	"github.com/google/uuid"
)

type Companion struct {
	Id        uuid.UUID
	Name      string
	Subject   string
	Topic     string
	Duration  int // minutes
	Color     string
	Author    string // identity provider user id
	CreatedAt time.Time
}
