package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestPageRange(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantFrom   int
		wantTo     int
		wantLength int
	}{
		{"first page", 1, 10, 0, 9, 10},
		{"second page", 2, 10, 10, 19, 10},
		{"small pages", 3, 4, 8, 11, 4},
		{"single row pages", 5, 1, 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PageRange(tt.page, tt.limit)
			assert.Equal(t, tt.wantFrom, r.From)
			assert.Equal(t, tt.wantTo, r.To)
			assert.Equal(t, tt.wantLength, r.Size())
		})
	}
}

func TestRangeSizeNeverNegative(t *testing.T) {
	assert.Equal(t, 0, Range{From: 5, To: 2}.Size())
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%math%", containsPattern("math"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\temp%`, containsPattern(`c:\temp`))
}

func TestSearchFiltersCombineWithAnd(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=dryrun sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	query := db.Table("companions")
	query = SubjectLike{Subject: "sci"}.Apply(query)
	query = TopicOrNameLike{Topic: "alg"}.Apply(query)

	var rows []map[string]interface{}
	stmt := query.Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "subject ILIKE $1 AND (")
	assert.Contains(t, sql, "(topic ILIKE $2 OR name ILIKE $3)")
	assert.NotContains(t, sql, "$1 OR")
	assert.Equal(t, []interface{}{"%sci%", "%alg%", "%alg%"}, stmt.Vars)
}
