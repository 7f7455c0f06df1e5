package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Officers & Sessions
// ============================================================

// PoliceOfficer represents police_officers table
type PoliceOfficer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	BadgeNumber  string    `gorm:"size:32;uniqueIndex;not null" json:"badge_number"`
	Rank         string    `gorm:"size:50;not null" json:"rank"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"size:32;uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:'officer'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Assignments []Assignment `gorm:"foreignKey:OfficerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Sessions    []Session    `gorm:"foreignKey:OfficerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (PoliceOfficer) TableName() string {
	return "police_officers"
}

// OfficerResponse DTO
type OfficerResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	BadgeNumber string                `json:"badge_number"`
	Rank        string                `json:"rank"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Role        string                `json:"role"`
	CreatedAt   time.Time             `json:"created_at"`
	Assignments []*AssignmentResponse `json:"assignments,omitempty"`
}

func (o *PoliceOfficer) ToResponse() *OfficerResponse {
	resp := &OfficerResponse{
		ID:          o.ID,
		Name:        o.Name,
		BadgeNumber: o.BadgeNumber,
		Rank:        o.Rank,
		Email:       o.Email,
		Phone:       o.Phone,
		Role:        o.Role,
		CreatedAt:   o.CreatedAt,
	}
	for i := range o.Assignments {
		resp.Assignments = append(resp.Assignments, o.Assignments[i].ToResponse())
	}
	return resp
}

// Session represents sessions table (server side login state)
type Session struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	OfficerID uint       `gorm:"index;not null" json:"officer_id"`
	Role      string     `gorm:"size:20;not null" json:"role"`
	TokenHash string     `gorm:"size:255;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// ============================================================
// Categories, Reports & Assignments
// ============================================================

// CrimeCategory represents crime_categories table
type CrimeCategory struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"`
	SeverityLevel *int      `json:"severity_level"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CrimeReports []CrimeReport `gorm:"foreignKey:CrimeCategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CrimeCategory) TableName() string {
	return "crime_categories"
}

// CategoryResponse DTO
type CategoryResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	SeverityLevel *int              `json:"severity_level"`
	CreatedAt     time.Time         `json:"created_at"`
	CrimeReports  []*ReportResponse `json:"crime_reports,omitempty"`
}

func (c *CrimeCategory) ToResponse() *CategoryResponse {
	resp := &CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		SeverityLevel: c.SeverityLevel,
		CreatedAt:     c.CreatedAt,
	}
	for i := range c.CrimeReports {
		resp.CrimeReports = append(resp.CrimeReports, c.CrimeReports[i].ToResponse())
	}
	return resp
}

// CrimeReport represents crime_reports table
type CrimeReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Location        string    `gorm:"size:200;not null" json:"location"`
	Status          string    `gorm:"size:20;not null;default:'open';index" json:"status"`
	Priority        *string   `gorm:"size:20" json:"priority"`
	CrimeCategoryID uint      `gorm:"not null;index" json:"crime_category_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CrimeCategory *CrimeCategory `gorm:"foreignKey:CrimeCategoryID" json:"-"`
	Assignments   []Assignment   `gorm:"foreignKey:CrimeReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CrimeReport) TableName() string {
	return "crime_reports"
}

// ReportResponse DTO
type ReportResponse struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Location        string                `json:"location"`
	Status          string                `json:"status"`
	Priority        *string               `json:"priority"`
	CrimeCategoryID uint                  `json:"crime_category_id"`
	CreatedAt       time.Time             `json:"created_at"`
	CrimeCategory   *CategoryResponse     `json:"crime_category,omitempty"`
	Assignments     []*AssignmentResponse `json:"assignments,omitempty"`
}

func (r *CrimeReport) ToResponse() *ReportResponse {
	resp := &ReportResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		Status:          r.Status,
		Priority:        r.Priority,
		CrimeCategoryID: r.CrimeCategoryID,
		CreatedAt:       r.CreatedAt,
	}
	if r.CrimeCategory != nil {
		resp.CrimeCategory = r.CrimeCategory.ToResponse()
	}
	for i := range r.Assignments {
		resp.Assignments = append(resp.Assignments, r.Assignments[i].ToResponse())
	}
	return resp
}

// Assignment represents assignments table (officer <-> report join)
type Assignment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoleInCase    string    `gorm:"size:100;not null" json:"role_in_case"`
	CrimeReportID uint      `gorm:"not null;index" json:"crime_report_id"`
	OfficerID     uint      `gorm:"not null;index" json:"officer_id"`
	AssignedAt    time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	CrimeReport *CrimeReport   `gorm:"foreignKey:CrimeReportID" json:"-"`
	Officer     *PoliceOfficer `gorm:"foreignKey:OfficerID" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentResponse DTO
type AssignmentResponse struct {
	ID            uint             `json:"id"`
	RoleInCase    string           `json:"role_in_case"`
	CrimeReportID uint             `json:"crime_report_id"`
	OfficerID     uint             `json:"officer_id"`
	AssignedAt    time.Time        `json:"assigned_at"`
	CrimeReport   *ReportResponse  `json:"crime_report,omitempty"`
	Officer       *OfficerResponse `json:"officer,omitempty"`
}

func (a *Assignment) ToResponse() *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:            a.ID,
		RoleInCase:    a.RoleInCase,
		CrimeReportID: a.CrimeReportID,
		OfficerID:     a.OfficerID,
		AssignedAt:    a.AssignedAt,
	}
	if a.CrimeReport != nil {
		resp.CrimeReport = a.CrimeReport.ToResponse()
	}
	if a.Officer != nil {
		resp.Officer = a.Officer.ToResponse()
	}
	return resp
}

// ============================================================
// Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PoliceOfficer{},
		&CrimeCategory{},
		&CrimeReport{},
		&Assignment{},
		&Session{},
	)
}
