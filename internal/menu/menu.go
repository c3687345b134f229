package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/gostonefire/courseindex"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/internal/render"
	"github.com/gostonefire/courseindex/internal/utils"
	"io"
	"strings"
)

const mainMenu = `
=======Main Menu=======
1. Populate hash tables
2. Search for a course
3. Search for a professor
4. Display all courses
5. Exit
6. Show hash table statistics
`

// Loader - Produces the course records to index
type Loader func(ctx context.Context) ([]*course.Course, error)

// Menu - Interactive text menu over a CourseIndex
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	renderer  *render.Renderer
	indexConf courseindex.IndexConf
	load      Loader
	index     *courseindex.CourseIndex
}

// NewMenu - Returns a pointer to a new Menu
//   - in is where choices and search terms are read from, one per line
//   - out is where prompts and messages are written
//   - renderer renders search results to out
//   - indexConf is the configuration used each time the hash tables are populated
//   - load produces the course records when the hash tables are populated
func NewMenu(in io.Reader, out io.Writer, renderer *render.Renderer, indexConf courseindex.IndexConf, load Loader) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		renderer:  renderer,
		indexConf: indexConf,
		load:      load,
	}
}

// Run - Shows the menu until the user exits or input ends. Errors from searches and population are reported
// to the user and never end the loop; only a failing writer does.
func (M *Menu) Run(ctx context.Context) (err error) {
	defer M.close()

	for {
		color.New(color.FgCyan).Fprint(M.out, mainMenu)
		choice, ok := M.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			M.populate(ctx)
		case "2":
			err = M.searchCourse()
		case "3":
			err = M.searchProfessor()
		case "4":
			err = M.displayAllCourses()
		case "5":
			color.New(color.FgGreen).Fprintln(M.out, "Exiting...")
			return
		case "6":
			err = M.statistics()
		default:
			color.New(color.FgRed).Fprintln(M.out, "Enter 1-6")
		}

		if err != nil {
			err = fmt.Errorf("error while writing output: %w", err)
			return
		}
	}
}

// populate - Loads the courses and builds a new index, replacing any previous one only on success
func (M *Menu) populate(ctx context.Context) {
	courses, err := M.load(ctx)
	if err != nil {
		M.failure(fmt.Errorf("error while loading courses: %w", err))
		return
	}

	index, info, err := courseindex.NewCourseIndex(courses, M.indexConf)
	if err != nil {
		M.failure(err)
		return
	}

	M.close()
	M.index = index

	color.New(color.FgGreen).Fprintf(M.out,
		"Populated %d courses by %d professors, collisions: %d chaining, %d open addressing\n",
		info.Records, info.Professors, info.ChainingCollisions, info.ProbingCollisions,
	)
}

// searchCourse - Looks up a course by composite key in both hash tables
func (M *Menu) searchCourse() (err error) {
	if !M.populated() {
		return
	}

	year, ok := M.prompt("Enter the course year (e.g. 2021):")
	if !ok {
		return
	}
	numberText, ok := M.prompt("Enter a course number (e.g. 2270):")
	if !ok {
		return
	}
	professorID, ok := M.prompt("Enter a Professor's ID (e.g. llytellf):")
	if !ok {
		return
	}

	number, err := utils.ParseCourseNumber(numberText)
	if err != nil {
		M.failure(err)
		return nil
	}

	for _, technique := range []int{crt.QuadraticProbing, crt.SeparateChaining} {
		record, err := M.index.Get(technique, year, number, professorID)
		if errors.Is(err, crt.NoRecordFound{}) {
			color.New(color.FgYellow).Fprintf(M.out, "Course not found via %s\n", crt.Name(technique))
			continue
		}
		if err != nil {
			M.failure(err)
			continue
		}
		if err = M.renderer.Course(fmt.Sprintf("Found via %s", crt.Name(technique)), record); err != nil {
			return err
		}
	}

	return
}

// searchProfessor - Looks up a professor and shows all courses taught
func (M *Menu) searchProfessor() (err error) {
	professorID, ok := M.prompt("Enter a Professor's ID (e.g. nscollan0):")
	if !ok {
		return
	}

	if !M.populated() {
		return
	}

	professor, err := M.index.GetProfessor(professorID)
	if errors.Is(err, crt.NoRecordFound{}) {
		color.New(color.FgYellow).Fprintf(M.out, "Professor %s not found\n", professorID)
		return nil
	}
	if err != nil {
		M.failure(err)
		return nil
	}

	return M.renderer.Professor(professor)
}

// displayAllCourses - Lists every course of the table chosen by the user
func (M *Menu) displayAllCourses() (err error) {
	if !M.populated() {
		return
	}

	var technique int
	for technique == 0 {
		choice, ok := M.prompt("Which hash table would you like to display the courses for (O=Open Addressing, C=Chaining)?")
		if !ok {
			return
		}
		switch strings.ToUpper(choice) {
		case "O":
			technique = crt.QuadraticProbing
		case "C":
			technique = crt.SeparateChaining
		default:
			color.New(color.FgRed).Fprintln(M.out, "Select O or C")
		}
	}

	courses, err := M.index.Courses(technique)
	if err != nil {
		M.failure(err)
		return nil
	}

	return M.renderer.Courses(fmt.Sprintf("All courses via %s", crt.Name(technique)), courses)
}

// statistics - Shows collision and distribution statistics for both hash tables
func (M *Menu) statistics() (err error) {
	if !M.populated() {
		return
	}

	for _, technique := range []int{crt.SeparateChaining, crt.QuadraticProbing} {
		stat, err := M.index.Stat(technique)
		if err != nil {
			M.failure(err)
			continue
		}
		if err = M.renderer.Stat(stat); err != nil {
			return err
		}
	}

	return
}

// populated - Returns true if the hash tables are populated, otherwise tells the user to populate them
func (M *Menu) populated() bool {
	if M.index == nil {
		color.New(color.FgRed).Fprintln(M.out, "Populate hash tables first!")
		return false
	}
	return true
}

// prompt - Writes a question and reads the answer, ok is false when input has ended
func (M *Menu) prompt(question string) (answer string, ok bool) {
	fmt.Fprintln(M.out, question)
	return M.readLine()
}

// readLine - Reads one trimmed line, ok is false when input has ended
func (M *Menu) readLine() (line string, ok bool) {
	if !M.in.Scan() {
		return
	}
	return strings.TrimSpace(M.in.Text()), true
}

func (M *Menu) failure(err error) {
	color.New(color.FgRed).Fprintf(M.out, "Error: %s\n", err)
}

func (M *Menu) close() {
	if M.index != nil {
		M.index.Close()
		M.index = nil
	}
}
