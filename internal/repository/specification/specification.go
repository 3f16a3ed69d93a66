package specification

import "gorm.io/gorm"

// Specification is one immutable piece of a query. Repositories receive the full list
// once and apply it in order.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
