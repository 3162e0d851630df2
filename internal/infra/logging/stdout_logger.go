package logging

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// StdoutLogger writes one JSON object per line. Debug entries carry raw
// gateway payloads and are dropped unless MinLevel allows them.
type StdoutLogger struct {
	MinLevel Level
}

func (l *StdoutLogger) log(level Level, name, msg string, fields map[string]any) {
	if level < l.MinLevel {
		return
	}

	entry := map[string]any{
		"level": name,
		"msg":   msg,
		"time":  time.Now().UTC().Format(time.RFC3339),
	}

	maps.Copy(entry, fields)

	b, _ := json.Marshal(entry)
	fmt.Println(string(b))
}

func (l *StdoutLogger) Debug(msg string, fields map[string]any) {
	l.log(LevelDebug, "DEBUG", msg, fields)
}

func (l *StdoutLogger) Info(msg string, fields map[string]any) {
	l.log(LevelInfo, "INFO", msg, fields)
}

func (l *StdoutLogger) Error(msg string, fields map[string]any) {
	l.log(LevelError, "ERROR", msg, fields)
}
