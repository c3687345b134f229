package main

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/gostonefire/courseindex"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/internal/conf"
	"github.com/gostonefire/courseindex/internal/database"
	"github.com/gostonefire/courseindex/internal/file"
	"github.com/gostonefire/courseindex/internal/menu"
	"github.com/gostonefire/courseindex/internal/render"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"log"
	"os"
	"os/signal"
)

func main() {
	config, err := conf.Load(".env", os.Args[1:])
	if err != nil {
		color.Red("Problem parsing arguments: %s", err)
		fmt.Fprintln(os.Stderr, "usage: courseindex <file path> <hash size>")
		os.Exit(1)
	}

	renderer, err := render.NewRenderer(os.Stdout, config.Output)
	if err != nil {
		log.Fatalf("Error creating renderer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	indexConf := courseindex.IndexConf{TableSize: config.HashSize, CacheSize: config.CacheSize}
	m := menu.NewMenu(os.Stdin, os.Stdout, renderer, indexConf, loader(config))

	log.Printf("Course index started with hash size %d", config.HashSize)
	if err = m.Run(ctx); err != nil {
		log.Fatalf("Error running menu: %v", err)
	}
}

// loader - Returns a loader reading from the database when a DSN is configured, otherwise from the course file
func loader(config conf.Config) menu.Loader {
	if config.DBDSN == "" {
		return func(ctx context.Context) ([]*course.Course, error) {
			return file.ReadCourses(config.FilePath)
		}
	}

	return func(ctx context.Context) (courses []*course.Course, err error) {
		store, err := database.Open(ctx, config.DBDriver, config.DBDSN)
		if err != nil {
			return
		}
		defer func() { _ = store.Close() }()

		if err = store.InitSchema(ctx); err != nil {
			return
		}

		courses, err = store.LoadCourses(ctx)
		if err != nil {
			return
		}

		// An empty database is seeded from the course file when one is configured
		if len(courses) == 0 && config.FilePath != "" {
			courses, err = file.ReadCourses(config.FilePath)
			if err != nil {
				return
			}
			log.Printf("Seeding database with %d courses from %s", len(courses), config.FilePath)
			err = store.InsertCourses(ctx, courses)
		}

		return
	}
}
