package goolog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Process-wide logger state. Built once by Init and reachable from every
// emission entry point afterwards. Mutable fields are independent cells:
// a reader racing a writer sees the old or the new value of that field,
// never a torn one, and no cross-field transaction is promised.
type logger struct {
	level  atomic.Int32
	length atomic.Int32

	targetMu      sync.RWMutex
	defaultTarget string

	fatalMu sync.RWMutex
	onFatal func()

	// fixed at Init
	timestamps bool
	sinks      []*sink
	file       *os.File

	writeFailures atomic.Uint64
}

var (
	// settingLogger ensures only the first Init call wins.
	settingLogger sync.Mutex
	std           atomic.Pointer[logger]
)

// Dependency injection points for testing.
var (
	outStdout io.Writer = os.Stdout
	timeNow             = time.Now
	osExit              = os.Exit
)

// Init configures the process-wide logger and attaches its sinks. It
// must be called exactly once; later calls fail with
// ErrAlreadyInitialized and leave the first configuration untouched.
//
// Without options the logger writes colored, timestamped lines to the
// console at minimum severity Info with a 16 character target column.
func Init(opts ...Option) error {
	settingLogger.Lock()
	defer settingLogger.Unlock()

	if std.Load() != nil {
		return ErrAlreadyInitialized
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	consoleMode := Colored
	if !cfg.color {
		consoleMode = Plain
	}

	l := &logger{
		timestamps:    cfg.timestamps,
		defaultTarget: cfg.defaultTarget,
		onFatal:       cfg.onFatal,
		sinks:         []*sink{{w: outStdout, mode: consoleMode}},
	}
	l.level.Store(int32(cfg.level))
	l.length.Store(int32(cfg.targetLength))

	if cfg.filePath != "" {
		f, err := os.OpenFile(cfg.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return &SinkUnavailableError{Path: cfg.filePath, Err: err}
		}
		l.file = f
		l.sinks = append(l.sinks, &sink{w: f, mode: Plain, pinned: true})
	}

	if cfg.printFunc != nil {
		l.sinks = append(l.sinks, &sink{w: printWriter{fn: cfg.printFunc}, mode: Plain})
	}

	std.Store(l)
	return nil
}

// Close releases the log file handle, if one was opened. Call it when
// the application shuts down.
func Close() error {
	settingLogger.Lock()
	defer settingLogger.Unlock()

	l := std.Load()
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// SetTargetLength changes the width of the target column. It takes
// effect for subsequent records only; past output is not reformatted.
// Zero disables alignment.
func SetTargetLength(length uint) {
	if l := std.Load(); l != nil {
		l.length.Store(int32(length))
	}
}

// SetDefaultTarget changes the target used by records that omit one.
func SetDefaultTarget(target string) {
	l := std.Load()
	if l == nil {
		return
	}
	l.targetMu.Lock()
	l.defaultTarget = target
	l.targetMu.Unlock()
}

// SetOnFatal replaces the fatal hook. At most one hook is active; the
// last registration wins. A nil hook restores the default, which exits
// the process with code 1.
func SetOnFatal(hook func()) {
	l := std.Load()
	if l == nil {
		return
	}
	if hook == nil {
		hook = func() { osExit(1) }
	}
	l.fatalMu.Lock()
	l.onFatal = hook
	l.fatalMu.Unlock()
}

// WriteFailures reports how many sink writes have failed since Init.
// A failing sink never blocks the others and never raises an error back
// to the logging call site; this counter is the side channel for hosts
// that want to notice.
func WriteFailures() uint64 {
	if l := std.Load(); l != nil {
		return l.writeFailures.Load()
	}
	return 0
}

func (l *logger) minLevel() Severity {
	return Severity(l.level.Load())
}

func (l *logger) budget() NameBudget {
	return Fixed(uint(l.length.Load()))
}

func (l *logger) fallbackTarget() string {
	l.targetMu.RLock()
	defer l.targetMu.RUnlock()
	return l.defaultTarget
}

func (l *logger) fatalHook() func() {
	l.fatalMu.RLock()
	defer l.fatalMu.RUnlock()
	return l.onFatal
}

// reset tears down the process-wide logger so tests can re-initialize.
func reset() {
	settingLogger.Lock()
	defer settingLogger.Unlock()
	if l := std.Load(); l != nil && l.file != nil {
		l.file.Close()
	}
	std.Store(nil)
}
