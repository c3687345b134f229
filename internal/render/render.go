package render

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/gostonefire/courseindex"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/internal/conf"
	"github.com/olekukonko/tablewriter"
	"github.com/sugawarayuuta/sonnet"
	"io"
	"iter"
	"strconv"
)

// Renderer - Writes index results either as colored tables or as JSON documents
type Renderer struct {
	w      io.Writer
	format string
}

// courseView - JSON representation of a course
type courseView struct {
	Year               string `json:"year"`
	Department         string `json:"department"`
	Number             uint32 `json:"course_num"`
	Name               string `json:"course_name"`
	ProfessorID        string `json:"prof_id"`
	ProfessorFirstName string `json:"prof_fname"`
	ProfessorLastName  string `json:"prof_lname"`
}

// professorView - JSON representation of a professor profile
type professorView struct {
	ID      string       `json:"prof_id"`
	Name    string       `json:"name"`
	Courses []courseView `json:"courses"`
}

// statView - JSON representation of an IndexStat
type statView struct {
	Technique          string  `json:"technique"`
	Records            int64   `json:"records"`
	Collisions         int64   `json:"collisions"`
	ProbeSteps         int64   `json:"probe_steps"`
	UsedBuckets        int64   `json:"used_buckets"`
	LongestBucket      int64   `json:"longest_bucket"`
	LoadFactor         float64 `json:"load_factor"`
	BucketDistribution []int64 `json:"bucket_distribution"`
}

// NewRenderer - Returns a pointer to a new Renderer
//   - w is where output is written
//   - format is either conf.OutputTable or conf.OutputJSON
//
// It returns:
//   - renderer is a pointer to a Renderer
//   - err is of type crt.ConfigError for an unknown format
func NewRenderer(w io.Writer, format string) (renderer *Renderer, err error) {
	if format != conf.OutputTable && format != conf.OutputJSON {
		err = crt.NewConfigError(fmt.Sprintf("unknown output format %q", format))
		return
	}

	renderer = &Renderer{w: w, format: format}

	return
}

// Courses - Renders a sequence of courses under a heading
func (R *Renderer) Courses(title string, courses iter.Seq[*course.Course]) (err error) {
	if R.format == conf.OutputJSON {
		views := []courseView{}
		for record := range courses {
			views = append(views, toCourseView(record))
		}
		return R.writeJSON(views)
	}

	R.heading(title)
	table := R.courseTable()
	for record := range courses {
		table.Append(courseRow(record))
	}
	table.Render()

	return
}

// Course - Renders a single course under a heading
func (R *Renderer) Course(title string, record *course.Course) (err error) {
	if R.format == conf.OutputJSON {
		return R.writeJSON(toCourseView(record))
	}

	R.heading(title)
	table := R.courseTable()
	table.Append(courseRow(record))
	table.Render()

	return
}

// Professor - Renders a professor profile with the courses taught
func (R *Renderer) Professor(professor course.Professor) (err error) {
	if R.format == conf.OutputJSON {
		view := professorView{ID: professor.ID, Name: professor.Name, Courses: []courseView{}}
		for _, record := range professor.Courses {
			view.Courses = append(view.Courses, toCourseView(record))
		}
		return R.writeJSON(view)
	}

	R.heading(fmt.Sprintf("%s (%s)", professor.Name, professor.ID))
	table := R.courseTable()
	for _, record := range professor.Courses {
		table.Append(courseRow(record))
	}
	table.Render()

	return
}

// Stat - Renders index statistics, the bucket distribution is only part of the JSON output
func (R *Renderer) Stat(stat courseindex.IndexStat) (err error) {
	if R.format == conf.OutputJSON {
		return R.writeJSON(statView{
			Technique:          crt.Name(stat.Technique),
			Records:            stat.Records,
			Collisions:         stat.Collisions,
			ProbeSteps:         stat.ProbeSteps,
			UsedBuckets:        stat.UsedBuckets,
			LongestBucket:      stat.LongestBucket,
			LoadFactor:         stat.LoadFactor,
			BucketDistribution: stat.BucketDistribution,
		})
	}

	R.heading(crt.Name(stat.Technique))
	table := tablewriter.NewWriter(R.w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Records", strconv.FormatInt(stat.Records, 10)})
	table.Append([]string{"Collisions", strconv.FormatInt(stat.Collisions, 10)})
	table.Append([]string{"Probe steps", strconv.FormatInt(stat.ProbeSteps, 10)})
	table.Append([]string{"Used buckets", strconv.FormatInt(stat.UsedBuckets, 10)})
	table.Append([]string{"Longest bucket", strconv.FormatInt(stat.LongestBucket, 10)})
	table.Append([]string{"Load factor", strconv.FormatFloat(stat.LoadFactor, 'f', 3, 64)})
	table.Render()

	return
}

// heading - Writes a cyan heading line
func (R *Renderer) heading(title string) {
	_, _ = color.New(color.FgCyan).Fprintf(R.w, "\n%s\n", title)
}

// courseTable - Returns a table writer with the course columns set
func (R *Renderer) courseTable() *tablewriter.Table {
	table := tablewriter.NewWriter(R.w)
	table.SetHeader([]string{"Year", "Course Name", "Number", "Professor", "Department", "Professor ID"})
	return table
}

// writeJSON - Writes v as one JSON document followed by a newline
func (R *Renderer) writeJSON(v any) (err error) {
	b, err := sonnet.Marshal(v)
	if err != nil {
		err = fmt.Errorf("error while encoding json: %w", err)
		return
	}

	_, err = R.w.Write(append(b, '\n'))

	return
}

func courseRow(record *course.Course) []string {
	return []string{
		record.Year(),
		record.Name(),
		strconv.FormatUint(uint64(record.Number()), 10),
		record.ProfessorName(),
		record.Department(),
		record.ProfessorID(),
	}
}

func toCourseView(record *course.Course) courseView {
	return courseView{
		Year:               record.Year(),
		Department:         record.Department(),
		Number:             record.Number(),
		Name:               record.Name(),
		ProfessorID:        record.ProfessorID(),
		ProfessorFirstName: record.ProfessorFirstName(),
		ProfessorLastName:  record.ProfessorLastName(),
	}
}
