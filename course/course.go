package course

// Key - The composite key identifying a searchable course entry
//   - Year is the academic year, e.g. "2021"
//   - Number is the course number, also the domain of the hash functions
//   - ProfessorID is the unique id of the professor teaching the course
type Key struct {
	Year        string
	Number      uint32
	ProfessorID string
}

// Course - An immutable course record. A single instance is shared by every index that references it,
// hence all fields are unexported and only readable through accessors.
type Course struct {
	year               string
	department         string
	number             uint32
	name               string
	professorID        string
	professorFirstName string
	professorLastName  string
}

// NewCourse - Returns a pointer to a new Course
//   - year is the academic year
//   - department is the department offering the course
//   - number is the course number
//   - name is the course name
//   - professorID is the unique professor id
//   - professorFirstName and professorLastName form the professor display name
func NewCourse(
	year string,
	department string,
	number uint32,
	name string,
	professorID string,
	professorFirstName string,
	professorLastName string,
) *Course {
	return &Course{
		year:               year,
		department:         department,
		number:             number,
		name:               name,
		professorID:        professorID,
		professorFirstName: professorFirstName,
		professorLastName:  professorLastName,
	}
}

// Year - Returns the academic year
func (C *Course) Year() string { return C.year }

// Department - Returns the department
func (C *Course) Department() string { return C.department }

// Number - Returns the course number
func (C *Course) Number() uint32 { return C.number }

// Name - Returns the course name
func (C *Course) Name() string { return C.name }

// ProfessorID - Returns the professor id
func (C *Course) ProfessorID() string { return C.professorID }

// ProfessorFirstName - Returns the professor first name
func (C *Course) ProfessorFirstName() string { return C.professorFirstName }

// ProfessorLastName - Returns the professor last name
func (C *Course) ProfessorLastName() string { return C.professorLastName }

// ProfessorName - Returns the professor display name, first and last name separated by a space
func (C *Course) ProfessorName() string {
	return C.professorFirstName + " " + C.professorLastName
}

// Key - Returns the composite lookup key of the course
func (C *Course) Key() Key {
	return Key{Year: C.year, Number: C.number, ProfessorID: C.professorID}
}

// Matches - Returns true if all three parts of the composite key equal those of the course
func (C *Course) Matches(key Key) bool {
	return C.year == key.Year && C.number == key.Number && C.professorID == key.ProfessorID
}
