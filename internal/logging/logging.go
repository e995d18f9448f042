// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "02-01-2006 15:04:05.000"

// ParseLevel maps an upper- or lower-case level name onto a zerolog level.
// An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "INFO":
		return zerolog.InfoLevel, nil
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "FATAL":
		return zerolog.FatalLevel, nil
	case "DISABLED":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New builds a console logger tagged with the application name.
func New(app, level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if out == nil {
		out = os.Stdout
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    true,
		FormatLevel: func(i any) string {
			return strings.ToUpper(fmt.Sprintf("%-6s", i))
		},
		FieldsExclude: []string{"app"},
		PartsOrder: []string{
			"app",
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
	}
	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("app", app).
		Caller().
		Logger(), nil
}

// Init builds the logger, installs it as the global zerolog logger and
// returns it.
func Init(app, level string) (zerolog.Logger, error) {
	logger, err := New(app, level, os.Stdout)
	if err != nil {
		return logger, err
	}
	lvl, _ := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = shortCaller
	log.Logger = logger
	return logger, nil
}

func shortCaller(_ uintptr, file string, line int) string {
	parts := strings.Split(file, "/")
	return parts[len(parts)-1] + ":" + strconv.Itoa(line)
}
