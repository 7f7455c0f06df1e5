package models

import (
	"community-watch/internal/core/domain"

	"gorm.io/gorm"
)

// BeforeSave validates officer fields on every create and update
func (o *PoliceOfficer) BeforeSave(tx *gorm.DB) error {
	return domain.FirstError(
		domain.ValidateRequired("name", o.Name),
		domain.ValidateBadgeNumber(o.BadgeNumber),
		domain.ValidateRequired("rank", o.Rank),
		domain.ValidateRequired("email", o.Email),
		domain.ValidatePhone(o.Phone),
		domain.ValidateRole(o.Role),
		domain.ValidateRequired("password", o.PasswordHash),
	)
}

// BeforeSave validates category fields on every create and update
func (c *CrimeCategory) BeforeSave(tx *gorm.DB) error {
	return domain.ValidateRequired("name", c.Name)
}

// BeforeSave validates report fields on every create and update
func (r *CrimeReport) BeforeSave(tx *gorm.DB) error {
	return domain.FirstError(
		domain.ValidateRequired("title", r.Title),
		domain.ValidateRequired("description", r.Description),
		domain.ValidateRequired("location", r.Location),
		domain.ValidateReportStatus(r.Status),
		domain.ValidateReference("crime_category_id", r.CrimeCategoryID),
	)
}

// BeforeSave validates assignment fields on every create and update
func (a *Assignment) BeforeSave(tx *gorm.DB) error {
	return domain.FirstError(
		domain.ValidateRequired("role_in_case", a.RoleInCase),
		domain.ValidateReference("crime_report_id", a.CrimeReportID),
		domain.ValidateReference("officer_id", a.OfficerID),
	)
}
