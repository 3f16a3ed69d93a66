package specification

import (
	"strings"

	"gorm.io/gorm"
)

type ByAuthor struct {
	Author string
}

func (s ByAuthor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author = ?", s.Author)
}

// SubjectLike matches subject by case-insensitive substring.
type SubjectLike struct {
	Subject string
}

func (s SubjectLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject ILIKE ?", containsPattern(s.Subject))
}

// TopicOrNameLike matches the query against topic OR name, case-insensitive substring.
type TopicOrNameLike struct {
	Topic string
}

func (s TopicOrNameLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := containsPattern(s.Topic)
	return db.Where("(topic ILIKE ? OR name ILIKE ?)", pattern, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern escapes LIKE wildcards in user input so the match stays a plain substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
