package main

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger prefixes every line with the name of the part of the box
// that wrote it
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf(tl.name+": "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{tl.name + ":"}, v...)...)
}

// setupLogging sends the log to a rolling file when one is configured and
// returns it for closing (nil if there is none). The terminal is left alone
// when the keyboard simulator owns it.
func setupLogging(settings *configSettings, toStderr bool) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var out []io.Writer
	if toStderr {
		out = append(out, os.Stderr)
	}

	var lj *lumberjack.Logger
	if fname := settings.GetString(sLogFile); fname != "" {
		lj = &lumberjack.Logger{
			Filename:   fname,
			MaxSize:    settings.GetInt(sLogMaxSize),
			MaxBackups: settings.GetInt(sLogMaxBackups),
			MaxAge:     settings.GetInt(sLogMaxAge),
			Compress:   settings.GetBool(sLogCompress),
		}
		out = append(out, lj)
	}

	switch len(out) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(out[0])
	default:
		log.SetOutput(io.MultiWriter(out...))
	}

	if lj == nil {
		return nil
	}
	return lj
}
