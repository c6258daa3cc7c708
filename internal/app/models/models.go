package models

// Gender defines the student's gender as shown in the UI
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

// DefaultGender is preselected on a fresh form
const DefaultGender = GenderMale

// Genders lists the selectable genders in display order
var Genders = []Gender{GenderMale, GenderFemale}

// Grade defines the class level
type Grade string

const (
	GradeX   Grade = "X"
	GradeXI  Grade = "XI"
	GradeXII Grade = "XII"
)

// Grades lists the selectable grades in display order
var Grades = []Grade{GradeX, GradeXI, GradeXII}

// Major defines the study programme code
type Major string

const (
	MajorIPA       Major = "IPA"
	MajorIPS       Major = "IPS"
	MajorBahasa    Major = "Bahasa"
	MajorTKJ       Major = "TKJ"
	MajorRPL       Major = "RPL"
	MajorAkuntansi Major = "Akuntansi"
)

// Majors lists the selectable majors in display order
var Majors = []Major{MajorIPA, MajorIPS, MajorBahasa, MajorTKJ, MajorRPL, MajorAkuntansi}

// MajorLabels holds the long option labels used by the form
var MajorLabels = map[Major]string{
	MajorIPA:       "IPA (Ilmu Pengetahuan Alam)",
	MajorIPS:       "IPS (Ilmu Pengetahuan Sosial)",
	MajorBahasa:    "Bahasa",
	MajorTKJ:       "TKJ (Teknik Komputer Jaringan)",
	MajorRPL:       "RPL (Rekayasa Perangkat Lunak)",
	MajorAkuntansi: "Akuntansi",
}
