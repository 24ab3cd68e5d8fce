package php

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

// Level is the severity of a recoverable runtime condition.
type Level int

const (
	LevelDeprecated Level = iota
	LevelNotice
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelDeprecated:
		return "Deprecated"
	case LevelNotice:
		return "Notice"
	case LevelWarning:
		return "Warning"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Reporter receives the notices and warnings PHP would print. Value
// operations never fail because of them.
type Reporter interface {
	Report(level Level, message string)
}

// LogReporter forwards reports to a commonlog logger.
type LogReporter struct {
	Log commonlog.Logger
}

// NewLogReporter returns a reporter writing to the "phpcore.php" logger.
func NewLogReporter() *LogReporter {
	return &LogReporter{Log: commonlog.GetLogger("phpcore.php")}
}

// Report implements Reporter.
func (r *LogReporter) Report(level Level, message string) {
	switch level {
	case LevelWarning:
		r.Log.Warning(message)
	case LevelNotice:
		r.Log.Notice(message)
	default:
		r.Log.Info(message, "level", level.String())
	}
}

// Report is one recorded condition.
type Report struct {
	Level   Level
	Message string
}

func (r Report) String() string {
	return r.Level.String() + ": " + r.Message
}

// RecordingReporter keeps every report in memory.
type RecordingReporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report implements Reporter.
func (r *RecordingReporter) Report(level Level, message string) {
	r.mu.Lock()
	r.reports = append(r.reports, Report{Level: level, Message: message})
	r.mu.Unlock()
}

// Reports returns a copy of the recorded reports.
func (r *RecordingReporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Count returns how many reports of the given level were recorded.
func (r *RecordingReporter) Count(level Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rep := range r.reports {
		if rep.Level == level {
			n++
		}
	}
	return n
}

// Last returns the most recent report.
func (r *RecordingReporter) Last() (Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reports) == 0 {
		return Report{}, false
	}
	return r.reports[len(r.reports)-1], true
}

// Reset discards all reports.
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	r.reports = nil
	r.mu.Unlock()
}
