package database

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"math"
)

// Postgres - Driver name registered by github.com/lib/pq
const Postgres = "postgres"

// SQLite - Driver name registered by github.com/mattn/go-sqlite3
const SQLite = "sqlite3"

// Store - Reads and writes course records in a SQL database. The driver has to be registered by the caller
// through a blank import of its package.
type Store struct {
	db     *sql.DB
	driver string
}

// Open - Opens a database and verifies the connection
//   - driver is either Postgres or SQLite
//   - dsn is the driver specific data source name
//
// It returns:
//   - store is a pointer to a Store, close it with Close
//   - err is a standard error
func Open(ctx context.Context, driver, dsn string) (store *Store, err error) {
	if driver != Postgres && driver != SQLite {
		err = fmt.Errorf("unsupported database driver %q", driver)
		return
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		err = fmt.Errorf("error while opening database: %w", err)
		return
	}

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		err = fmt.Errorf("error while connecting to database: %w", err)
		return
	}

	store = &Store{db: db, driver: driver}

	return
}

// Close - Closes the database
func (S *Store) Close() error {
	return S.db.Close()
}

// InitSchema - Creates the courses table unless it already exists
func (S *Store) InitSchema(ctx context.Context) (err error) {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if S.driver == Postgres {
		idColumn = "id SERIAL PRIMARY KEY"
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS courses (
		%s,
		year TEXT NOT NULL,
		department TEXT NOT NULL,
		course_num BIGINT NOT NULL,
		course_name TEXT NOT NULL,
		prof_id TEXT NOT NULL,
		prof_fname TEXT NOT NULL,
		prof_lname TEXT NOT NULL
	)`, idColumn)

	_, err = S.db.ExecContext(ctx, query)
	if err != nil {
		err = fmt.Errorf("error while creating courses table: %w", err)
	}

	return
}

// InsertCourses - Inserts courses in one transaction, keeping their order through the id column
func (S *Store) InsertCourses(ctx context.Context, courses []*course.Course) (err error) {
	tx, err := S.db.BeginTx(ctx, nil)
	if err != nil {
		err = fmt.Errorf("error while starting transaction: %w", err)
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO courses (year, department, course_num, course_name, prof_id, prof_fname, prof_lname) VALUES (%s)",
		S.placeholders(7),
	))
	if err != nil {
		err = fmt.Errorf("error while preparing insert: %w", err)
		return
	}
	defer func(stmt *sql.Stmt) { _ = stmt.Close() }(stmt)

	for i, record := range courses {
		_, err = stmt.ExecContext(ctx,
			record.Year(),
			record.Department(),
			int64(record.Number()),
			record.Name(),
			record.ProfessorID(),
			record.ProfessorFirstName(),
			record.ProfessorLastName(),
		)
		if err != nil {
			err = fmt.Errorf("error while inserting course #%d: %w", i, err)
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = fmt.Errorf("error while committing courses: %w", err)
	}

	return
}

// LoadCourses - Loads all courses in insertion order
func (S *Store) LoadCourses(ctx context.Context) (courses []*course.Course, err error) {
	rows, err := S.db.QueryContext(ctx,
		"SELECT year, department, course_num, course_name, prof_id, prof_fname, prof_lname FROM courses ORDER BY id",
	)
	if err != nil {
		err = fmt.Errorf("error while querying courses: %w", err)
		return
	}
	defer func(rows *sql.Rows) { _ = rows.Close() }(rows)

	var year, department, name, profID, profFirstName, profLastName string
	var number int64
	for rows.Next() {
		err = rows.Scan(&year, &department, &number, &name, &profID, &profFirstName, &profLastName)
		if err != nil {
			err = fmt.Errorf("error while reading course row: %w", err)
			return
		}
		if number < 0 || number > math.MaxUint32 {
			err = fmt.Errorf("course number %d of %s %s is out of range", number, year, profID)
			return
		}
		courses = append(courses, course.NewCourse(year, department, uint32(number), name, profID, profFirstName, profLastName))
	}

	err = rows.Err()
	if err != nil {
		err = fmt.Errorf("error while iterating course rows: %w", err)
	}

	return
}

// placeholders - Returns n comma separated bind parameters in the style of the driver
func (S *Store) placeholders(n int) (s string) {
	for i := 1; i <= n; i++ {
		if i > 1 {
			s += ", "
		}
		if S.driver == Postgres {
			s += fmt.Sprintf("$%d", i)
		} else {
			s += "?"
		}
	}

	return
}
