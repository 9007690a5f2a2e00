package utils

import (
	"strings"

	"skillport/database"
	courseModels "skillport/models/course"
)

// NormalizeCourseKey collapses the spelling variants seen across the
// catalog, backend records and old client routes onto one shape:
// lowercase, hyphen-separated. "FRONTEND_Beginner" and
// "frontend beginner" both become "frontend-beginner".
func NormalizeCourseKey(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	for strings.Contains(key, "--") {
		key = strings.ReplaceAll(key, "--", "-")
	}
	return key
}

// ResolveCourseKey maps any known spelling of a course identifier to
// its course record: first the canonical key column, then the alias
// table. This is the single canonicalization point: every handler that
// accepts a course identifier from outside goes through it, so stored
// rows only ever hold canonical CourseIDs.
func ResolveCourseKey(key string) (*courseModels.Course, error) {
	normalized := NormalizeCourseKey(key)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("key = ? AND is_deleted = ?", normalized, false).First(&course).Error; err == nil {
		return &course, nil
	}

	var alias courseModels.CourseAlias
	if err := db.Where("alias = ? AND is_deleted = ?", normalized, false).First(&alias).Error; err != nil {
		return nil, err
	}
	if err := db.Where("id = ? AND is_deleted = ?", alias.CourseID, false).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}
