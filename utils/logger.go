package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"
	"time"
)

var logLock sync.Mutex

func log(out io.Writer, calldepth int, level string, id string, params ...any) {
	var now = time.Now().Format("2006-01-02 15:04:05")
	_, file, line, _ := runtime.Caller(calldepth)
	var msg string
	for i, p := range params {
		msg += fmt.Sprintf("%+v", p)
		if i != len(params)-1 {
			msg += " "
		}
	}
	if out == nil {
		out = os.Stderr
	}
	logLock.Lock()
	defer logLock.Unlock()
	fmt.Fprintf(out, "%s|%s|%s:%d|%s|%s\n", now, level, path.Base(file), line, id, msg)
}

// Logger writes "time|level|file:line|id|msg" lines to Out, or to
// stderr when Out is nil.
type Logger struct {
	ID  string
	Out io.Writer
}

func (l *Logger) Log(calldepth int, level string, params ...any) {
	log(l.Out, 2+calldepth, level, l.ID, params...)
}

func (l *Logger) Logf(calldepth int, level string, format string, params ...any) {
	log(l.Out, 2+calldepth, level, l.ID, fmt.Sprintf(format, params...))
}

func (l *Logger) Print(params ...any) {
	log(l.Out, 2, "inf", l.ID, params...)
}

func (l *Logger) Printf(format string, params ...any) {
	log(l.Out, 2, "inf", l.ID, fmt.Sprintf(format, params...))
}

func (l *Logger) Warn(params ...any) {
	log(l.Out, 2, "wrn", l.ID, params...)
}

func (l *Logger) Warnf(format string, params ...any) {
	log(l.Out, 2, "wrn", l.ID, fmt.Sprintf(format, params...))
}

func (l *Logger) Error(params ...any) {
	log(l.Out, 2, "err", l.ID, params...)
}

func (l *Logger) Errorf(format string, params ...any) {
	log(l.Out, 2, "err", l.ID, fmt.Sprintf(format, params...))
}
