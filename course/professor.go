package course

// Professor - A professor profile as returned by a professor search
//   - ID is the unique professor id
//   - Name is the display name taken from the first course seen for the professor
//   - Courses are the courses taught by the professor in insertion order
type Professor struct {
	ID      string
	Name    string
	Courses []*Course
}
