/*------------------------------------------------------------------------------
* logger.go : leveled message sink for RINEX data processing
*
* notes  : a RinexData object reports schema mismatches, malformed input lines
*          and missing obligatory records through a Logger. The sink is either
*          supplied by the caller (borrowed, never closed here) or created as
*          a no-op default at construction.
*-----------------------------------------------------------------------------*/
package gorinex

import (
	"fmt"
	"io"
)

/* logging levels, higher is more verbose */
const (
	LvlSevere  = 1 /* operation failed, state untouched */
	LvlWarning = 2 /* record skipped or degraded */
	LvlInfo    = 3
	LvlFine    = 4 /* per-line trace */
)

type Logger struct {
	out   io.Writer
	level int
}

/* create a logger writing to w, discarding messages above level ------------*/
func NewLogger(w io.Writer, level int) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{out: w, level: level}
}

func (l *Logger) SetLevel(level int) {
	if l != nil {
		l.level = level
	}
}

/* Trace writes one message at the given level. Safe on a nil logger. -------*/
func (l *Logger) Trace(level int, format string, v ...interface{}) {
	if l == nil || l.out == nil || level > l.level {
		return
	}
	fmt.Fprintf(l.out, "%d ", level)
	fmt.Fprintf(l.out, format, v...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		fmt.Fprint(l.out, "\n")
	}
}
