package logger

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	DB       *sql.DB
	std      = newStd(os.Stdout)
	hookOnce sync.Once
)

type LogEntry struct {
	ID        int       `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newStd(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init attaches the database that persists entries into the logs table.
func Init(db *sql.DB) {
	DB = db
	hookOnce.Do(func() { std.AddHook(&dbHook{}) })
}

// SetLevel parses a logrus level name, keeping the current level on error.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	std.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Std exposes the underlying logger for components that want fields.
func Std() *logrus.Logger {
	return std
}

type dbHook struct{}

func (h *dbHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel, logrus.InfoLevel}
}

func (h *dbHook) Fire(e *logrus.Entry) error {
	if DB == nil {
		return nil
	}

	details := ""
	if len(e.Data) > 0 {
		details = fmt.Sprint(e.Data)
	}
	_, err := DB.Exec("INSERT INTO logs (level, message, details) VALUES (?, ?, ?)", levelName(e.Level), e.Message, details)
	return err
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.InfoLevel:
		return "INFO"
	case logrus.WarnLevel:
		return "WARN"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR"
	}
	return "DEBUG"
}

func Info(message string, args ...interface{}) {
	std.Infof(message, args...)
}

func Warn(message string, args ...interface{}) {
	std.Warnf(message, args...)
}

func Error(message string, args ...interface{}) {
	std.Errorf(message, args...)
}

func Debug(message string, args ...interface{}) {
	std.Debugf(message, args...)
}

func GetLogs(limit int) ([]LogEntry, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := DB.Query("SELECT id, level, message, details, created_at FROM logs ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []LogEntry{}
	for rows.Next() {
		var l LogEntry
		var details sql.NullString
		if err := rows.Scan(&l.ID, &l.Level, &l.Message, &details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		l.Details = details.String
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
