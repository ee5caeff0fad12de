package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how log lines are written
type Options struct {
	Format     string
	Level      string
	ToFile     bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var logger = log.New()

func init() {
	// Defaults until Configure is called from main; env lets early lines honour the same switches.
	Configure(Options{
		Format: os.Getenv("LOG_FORMAT"),
		Level:  os.Getenv("LOG_LEVEL"),
	})
}

// Configure applies formatter, level and output. File output is rotated by lumberjack
// and tee'd to stdout.
func Configure(opts Options) {
	switch strings.ToLower(opts.Format) {
	case "text":
		logger.Formatter = &log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		}
	default:
		logger.Formatter = &log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	}

	level := log.DebugLevel
	if opts.Level != "" {
		if parsed, err := log.ParseLevel(opts.Level); err == nil {
			level = parsed
		} else {
			logger.WithField("level", opts.Level).Warn("Unknown log level, keeping debug")
		}
	}
	logger.SetLevel(level)

	var out io.Writer = os.Stdout
	if opts.ToFile {
		dir := opts.Dir
		if dir == "" {
			dir = "logs"
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.WithField("error", err).Warnf("Failed to create logs directory %s, falling back to stdout", dir)
		} else {
			out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   filepath.Join(dir, "app.log"),
				MaxSize:    orDefault(opts.MaxSizeMB, 10),
				MaxBackups: orDefault(opts.MaxBackups, 3),
				MaxAge:     orDefault(opts.MaxAgeDays, 28),
				Compress:   true,
			})
		}
	}
	logger.Out = out
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// GetLogger returns an entry annotated with the caller's function, file and line.
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	name := ""
	if functionObject != nil {
		name = functionObject.Name()
	}
	return logger.WithFields(log.Fields{
		"function": name,
		"file":     file,
		"line":     line,
	})
}
