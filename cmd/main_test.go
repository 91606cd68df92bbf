package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	app "github.com/okian/fieldmap/internal/app"
	"github.com/okian/fieldmap/internal/config"
	"github.com/okian/fieldmap/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("FIELDMAP_QUEUE_SIZE", "1000")
			_ = os.Setenv("FIELDMAP_WORKER_COUNT", "4")
			_ = os.Setenv("FIELDMAP_FUZZY_THRESHOLD", "0.8")
			defer func() {
				_ = os.Unsetenv("FIELDMAP_QUEUE_SIZE")
				_ = os.Unsetenv("FIELDMAP_WORKER_COUNT")
				_ = os.Unsetenv("FIELDMAP_FUZZY_THRESHOLD")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.QueueSize, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.FuzzyThreshold, convey.ShouldEqual, 0.8)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithWorkerCount(8),
					app.WithQueueSize(2000),
					app.WithMemoSize(1000),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestLoadResume(t *testing.T) {
	convey.Convey("Given resume documents on disk", t, func() {
		dir := t.TempDir()

		convey.Convey("When the document is well formed", func() {
			path := filepath.Join(dir, "resume.json")
			doc := `{"name": "Ada Lovelace", "email": "ada@example.com", "skills": ["Go"]}`
			convey.So(os.WriteFile(path, []byte(doc), 0o600), convey.ShouldBeNil)

			resume, err := loadResume(path)
			convey.So(err, convey.ShouldBeNil)
			convey.So(resume.Name, convey.ShouldEqual, "Ada Lovelace")
			convey.So(resume.Skills, convey.ShouldResemble, []string{"Go"})
		})

		convey.Convey("When the document is not JSON", func() {
			path := filepath.Join(dir, "bad.json")
			convey.So(os.WriteFile(path, []byte("not json"), 0o600), convey.ShouldBeNil)

			_, err := loadResume(path)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When the file does not exist", func() {
			_, err := loadResume(filepath.Join(dir, "missing.json"))
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestFieldNames(t *testing.T) {
	convey.Convey("Given field name inputs", t, func() {
		convey.Convey("When no file is given, args pass through", func() {
			names, err := fieldNames("", []string{"Email", "Phone"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(names, convey.ShouldResemble, []string{"Email", "Phone"})
		})

		convey.Convey("When a file is given, blank lines are skipped", func() {
			path := filepath.Join(t.TempDir(), "fields.txt")
			content := "Email Address\n\n  Phone  \n"
			convey.So(os.WriteFile(path, []byte(content), 0o600), convey.ShouldBeNil)

			names, err := fieldNames(path, nil)
			convey.So(err, convey.ShouldBeNil)
			convey.So(names, convey.ShouldResemble, []string{"Email Address", "Phone"})
		})
	})
}
