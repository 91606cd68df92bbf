package config_test

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/okian/fieldmap/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, "")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*2)
				convey.So(cfg.MemoSize, convey.ShouldEqual, 10_000)
				convey.So(cfg.FuzzyThreshold, convey.ShouldEqual, 0.7)
				convey.So(cfg.SelectionStrategy, convey.ShouldEqual, "most_recent")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FIELDMAP_LOG_LEVEL", "debug")
			_ = os.Setenv("FIELDMAP_QUEUE_SIZE", "5000")
			_ = os.Setenv("FIELDMAP_WORKER_COUNT", "8")
			_ = os.Setenv("FIELDMAP_FUZZY_THRESHOLD", "0.85")
			_ = os.Setenv("FIELDMAP_SELECTION_STRATEGY", "highest_degree")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 5000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 8)
				convey.So(cfg.FuzzyThreshold, convey.ShouldEqual, 0.85)
				convey.So(cfg.SelectionStrategy, convey.ShouldEqual, "highest_degree")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
log_level: warn
metrics_addr: ":9090"
queue_size: 2000
worker_count: 4
memo_size: 500
fuzzy_threshold: 0.8
selection_strategy: longest
sensitivity_weights:
  email: 0.95
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FIELDMAP_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.QueueSize, convey.ShouldEqual, 2000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.MemoSize, convey.ShouldEqual, 500)
				convey.So(cfg.FuzzyThreshold, convey.ShouldEqual, 0.8)
				convey.So(cfg.SelectionStrategy, convey.ShouldEqual, "longest")
				convey.So(cfg.SensitivityWeights["email"], convey.ShouldEqual, 0.95)
			})
		})

		convey.Convey("When env vars override a YAML file", func() {
			yamlContent := `
queue_size: 2000
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FIELDMAP_CONFIG", tmpFile)
			_ = os.Setenv("FIELDMAP_QUEUE_SIZE", "3000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the env value wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.QueueSize, convey.ShouldEqual, 3000)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("FIELDMAP_CONFIG", "/nonexistent/fieldmap.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load sentinel", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given invalid configuration values", t, func() {
		ctx := context.Background()

		cases := []struct{ key, value string }{
			{"FIELDMAP_FUZZY_THRESHOLD", "1.5"},
			{"FIELDMAP_SELECTION_STRATEGY", "newest"},
			{"FIELDMAP_WORKER_COUNT", "0"},
			{"FIELDMAP_QUEUE_SIZE", "-1"},
		}

		for _, tc := range cases {
			key, value := tc.key, tc.value
			convey.Convey("When "+key+" is "+value, func() {
				clearConfigEnvVars()
				_ = os.Setenv(key, value)
				defer clearConfigEnvVars()

				_, err := config.Load(ctx)

				convey.Convey("Then validation rejects it", func() {
					convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				})
			})
		}
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"FIELDMAP_CONFIG",
		"FIELDMAP_LOG_LEVEL",
		"FIELDMAP_METRICS_ADDR",
		"FIELDMAP_QUEUE_SIZE",
		"FIELDMAP_WORKER_COUNT",
		"FIELDMAP_MEMO_SIZE",
		"FIELDMAP_FUZZY_THRESHOLD",
		"FIELDMAP_SELECTION_STRATEGY",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fieldmap-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	_ = tmpFile.Close()
	return tmpFile.Name()
}
