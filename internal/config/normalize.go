package config

import "strings"

// Normalize trims text fields and fills in defaults.
func Normalize(settings *Settings) {
	settings.Test = strings.TrimSpace(settings.Test)
	settings.Instructor = strings.TrimSpace(settings.Instructor)
	settings.CourseName = strings.TrimSpace(settings.CourseName)
	settings.CourseNumber = strings.TrimSpace(settings.CourseNumber)
	settings.Term = strings.TrimSpace(settings.Term)
	settings.School = strings.TrimSpace(settings.School)
	settings.Department = strings.TrimSpace(settings.Department)
	settings.TypeOverflow = OverflowPolicy(strings.ToLower(strings.TrimSpace(string(settings.TypeOverflow))))
	if settings.TypeOverflow == "" {
		settings.TypeOverflow = OverflowStrict
	}
}
