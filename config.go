package goolog

// Option configures the logger during Init.
type Option func(*settings)

// settings collects the Init-time configuration before the process-wide
// state is built.
type settings struct {
	level         Severity
	targetLength  uint
	timestamps    bool
	color         bool
	defaultTarget string
	filePath      string
	printFunc     func(line string)
	onFatal       func()
}

func defaultSettings() settings {
	return settings{
		level:        Info,
		targetLength: 16,
		timestamps:   true,
		color:        true,
		onFatal:      func() { osExit(1) },
	}
}

// WithLevel sets the minimum severity written to the console sink.
// Records below it are dropped without touching any sink. The default
// is Info.
func WithLevel(level Severity) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithTargetLength sets the width of the target column. Longer targets
// are cut, shorter ones padded. Zero disables alignment. The default is
// 16. The width can be changed later with SetTargetLength.
func WithTargetLength(length uint) Option {
	return func(s *settings) {
		s.targetLength = length
	}
}

// WithLogFile attaches a file sink writing a plain, colorless transcript
// to path. The file is created if missing and appended to otherwise.
// The file sink never records messages below Info.
func WithLogFile(path string) Option {
	return func(s *settings) {
		s.filePath = path
	}
}

// WithPrintFunc attaches a callback sink for hosts without usable
// standard streams. The callback receives each fully formatted plain
// line, without a trailing newline, and must not block indefinitely.
func WithPrintFunc(fn func(line string)) Option {
	return func(s *settings) {
		s.printFunc = fn
	}
}

// WithColor controls ANSI styling on the console sink. Colors are on by
// default; disable them when stdout is not a terminal.
func WithColor(enabled bool) Option {
	return func(s *settings) {
		s.color = enabled
	}
}

// WithTimestamps controls the leading "date | time" segment of every
// line. When disabled the segment is omitted entirely, not blanked.
// Timestamps are on by default.
func WithTimestamps(enabled bool) Option {
	return func(s *settings) {
		s.timestamps = enabled
	}
}

// WithDefaultTarget sets the target used by records that omit one. It can
// be changed later with SetDefaultTarget. Records without an explicit or
// default target fall back to "UNKNOWN".
func WithDefaultTarget(target string) Option {
	return func(s *settings) {
		s.defaultTarget = target
	}
}

// WithOnFatal registers the hook run after a Fatal record has been
// written to every sink. The default hook exits the process with code 1.
// Hooks are expected not to return normally.
func WithOnFatal(hook func()) Option {
	return func(s *settings) {
		s.onFatal = hook
	}
}
