package views

// EmptyStateMessage is shown instead of the table when no rows are listed
type EmptyStateMessage struct {
	Title string
	Hint  string
}

var (
	noStudents = EmptyStateMessage{
		Title: "Belum ada data siswa",
		Hint:  "Tambahkan siswa pertama menggunakan form di atas",
	}
	noMatches = EmptyStateMessage{
		Title: "Tidak ada siswa ditemukan",
		Hint:  "Coba ubah kata kunci pencarian Anda",
	}
)

// EmptyState picks the message for an empty listing. It returns nil when
// there are rows to show.
func EmptyState(listed int, search string) *EmptyStateMessage {
	if listed > 0 {
		return nil
	}
	if search != "" {
		msg := noMatches
		return &msg
	}
	msg := noStudents
	return &msg
}
