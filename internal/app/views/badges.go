package views

import "github.com/yigit/siswa/internal/app/models"

// FallbackBadge is used for values without a dedicated colour
const FallbackBadge = "gray"

var gradeBadges = map[models.Grade]string{
	models.GradeX:   "green",
	models.GradeXI:  "blue",
	models.GradeXII: "purple",
}

var majorBadges = map[models.Major]string{
	models.MajorIPA:       "emerald",
	models.MajorIPS:       "orange",
	models.MajorBahasa:    "pink",
	models.MajorTKJ:       "cyan",
	models.MajorRPL:       "indigo",
	models.MajorAkuntansi: "amber",
}

// GradeBadge returns the badge colour for a grade
func GradeBadge(grade string) string {
	if colour, ok := gradeBadges[models.Grade(grade)]; ok {
		return colour
	}
	return FallbackBadge
}

// MajorBadge returns the badge colour for a major
func MajorBadge(major string) string {
	if colour, ok := majorBadges[models.Major(major)]; ok {
		return colour
	}
	return FallbackBadge
}
