package scope

import "gorm.io/gorm"

// OrderByDateAddedDesc lists the newest note first, matching what the
// client renders by default.
func OrderByDateAddedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("date_added DESC")
}
