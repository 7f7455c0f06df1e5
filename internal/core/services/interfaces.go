package services

import (
	"sort"
	"strings"

	"community-watch/internal/core/domain"
)

// Updatable field allow-lists. A partial update naming any other key is rejected.
var (
	OfficerUpdatableFields    = []string{"name", "badge_number", "rank", "email", "phone", "password", "role"}
	CategoryUpdatableFields   = []string{"name", "description", "severity_level"}
	ReportUpdatableFields     = []string{"title", "description", "location", "status", "priority", "crime_category_id"}
	AssignmentUpdatableFields = []string{"role_in_case", "crime_report_id", "officer_id"}
)

// CheckUpdatableFields fails with a ValidationError naming the first key
// (in sorted order) that is not in allowed.
func CheckUpdatableFields(keys []string, allowed []string) error {
	permitted := make(map[string]struct{}, len(allowed))
	for _, field := range allowed {
		permitted[field] = struct{}{}
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for _, key := range sorted {
		if _, ok := permitted[key]; !ok {
			return domain.NewValidationError(key, key+" cannot be updated")
		}
	}
	return nil
}

// normalizeEmail trims and lowercases an email for storage and lookup
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
