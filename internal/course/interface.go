package course

// CourseStore defines the interface for interacting with stored courses.
type CourseStore interface {
	Save(course *Course) error
	Find(courseID string) (*Course, error)
	GetAllCourses() ([]Course, error)
	Delete(courseID string) error
}
