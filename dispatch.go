package goolog

import "fmt"

// Tracef logs a formatted message at Trace severity. An empty target
// selects the default target.
func Tracef(target, format string, v ...any) {
	logf(Trace, target, format, v...)
}

// Debugf logs a formatted message at Debug severity. An empty target
// selects the default target.
func Debugf(target, format string, v ...any) {
	logf(Debug, target, format, v...)
}

// Infof logs a formatted message at Info severity. An empty target
// selects the default target.
func Infof(target, format string, v ...any) {
	logf(Info, target, format, v...)
}

// Warnf logs a formatted message at Warn severity. An empty target
// selects the default target.
func Warnf(target, format string, v ...any) {
	logf(Warn, target, format, v...)
}

// Errorf logs a formatted message at Error severity. An empty target
// selects the default target.
func Errorf(target, format string, v ...any) {
	logf(Error, target, format, v...)
}

// Fatalf logs a formatted message at Fatal severity and then runs the
// fatal hook. The hook runs strictly after the record has been written
// to every sink; the default hook exits the process with code 1.
// Before Init, Fatalf writes nothing but still exits.
func Fatalf(target, format string, v ...any) {
	logf(Fatal, target, format, v...)
}

// Log emits a message produced by msg at the given severity. The thunk
// is invoked only when the record passes the severity filter, keeping
// expensive message construction off filtered-out Trace and Debug paths.
func Log(level Severity, target string, msg func() string) {
	l := std.Load()
	if l == nil {
		if level == Fatal {
			osExit(1)
		}
		return
	}
	if level < l.minLevel() {
		return
	}
	l.emit(level, target, msg())
}

func logf(level Severity, target, format string, v ...any) {
	l := std.Load()
	if l == nil {
		if level == Fatal {
			osExit(1)
		}
		return
	}
	if level < l.minLevel() {
		return
	}
	l.emit(level, target, fmt.Sprintf(format, v...))
}

// emit renders the record once per sink and writes it, then runs the
// fatal hook for Fatal records. The caller has already applied the
// global severity filter.
func (l *logger) emit(level Severity, target, message string) {
	rec := Record{
		Level:   level,
		Target:  l.resolveTarget(target),
		Message: message,
	}
	if l.timestamps {
		now := timeNow()
		rec.Date = now.Format("02.01.2006")
		rec.Time = now.Format("15:04:05")
	}

	budget := l.budget()
	for _, s := range l.sinks {
		if !s.accepts(level) {
			continue
		}
		if err := s.writeLine(formatLine(rec, budget, s.mode)); err != nil {
			l.writeFailures.Add(1)
		}
	}

	if level == Fatal {
		l.fatalHook()()
	}
}

func (l *logger) resolveTarget(target string) string {
	if target != "" {
		return target
	}
	if fallback := l.fallbackTarget(); fallback != "" {
		return fallback
	}
	return "UNKNOWN"
}
