package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(opts ...StudentRepositoryOption) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(opts...),
	}
}
