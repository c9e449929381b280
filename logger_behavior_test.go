package goolog

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// captureConsole swaps the console writer for a buffer and tears the
// process-wide logger down so each test starts uninitialized.
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldStdout := outStdout
	outStdout = &buf
	t.Cleanup(func() {
		outStdout = oldStdout
		reset()
	})
	reset()
	return &buf
}

func mustInit(t *testing.T, opts ...Option) {
	t.Helper()
	if err := Init(opts...); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
}

func TestInit_SecondCallRejected(t *testing.T) {
	captureConsole(t)
	mustInit(t)

	err := Init(WithLevel(Trace))
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init should fail with ErrAlreadyInitialized, got: %v", err)
	}
}

func TestInit_FirstConfigurationWins(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false), WithLevel(Warn))

	_ = Init(WithLevel(Trace))
	Infof("Main", "should stay filtered")

	if got := buf.String(); got != "" {
		t.Fatalf("rejected Init must not reconfigure the level, got output: %q", got)
	}
}

func TestUninitialized_DropsRecords(t *testing.T) {
	buf := captureConsole(t)

	Infof("Main", "too early")
	Errorf("Main", "also too early")

	if got := buf.String(); got != "" {
		t.Fatalf("records before Init should be dropped, got: %q", got)
	}
}

func TestLevelFiltering_DefaultInfo(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	Tracef("Main", "trace-hidden")
	Debugf("Main", "debug-hidden")
	Infof("Main", "info-visible")
	Warnf("Main", "warn-visible")
	Errorf("Main", "error-visible")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("records below Info must not touch any sink, got: %q", got)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected exactly one line per passing record, got %d: %q", len(lines), got)
	}
}

func TestLevelFiltering_LazyMessage(t *testing.T) {
	captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	built := false
	Log(Debug, "Main", func() string {
		built = true
		return "expensive"
	})
	if built {
		t.Fatalf("message thunk must not run for filtered records")
	}

	Log(Info, "Main", func() string {
		built = true
		return "cheap enough"
	})
	if !built {
		t.Fatalf("message thunk should run for passing records")
	}
}

func TestDefaultTargetFallback(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false), WithDefaultTarget("Main"))

	Infof("", "uses the default")

	want := Fixed(16).Field("Main") + " | INFO  | uses the default\n"
	if got := buf.String(); got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestUnknownTargetFallback(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	Infof("", "no target anywhere")

	if !strings.HasPrefix(buf.String(), "UNKNOWN") {
		t.Fatalf("expected UNKNOWN fallback target, got: %q", buf.String())
	}
}

func TestSetDefaultTarget_TakesEffect(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	SetDefaultTarget("Worker")
	Infof("", "routed")

	if !strings.HasPrefix(buf.String(), "Worker") {
		t.Fatalf("expected default target Worker, got: %q", buf.String())
	}
}

func TestSetTargetLength_Zero_DisablesAlignment(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	SetTargetLength(0)
	long := "MySuperAwesomeMCManageClient"
	Infof(long, "ragged")

	want := long + " | INFO  | ragged\n"
	if got := buf.String(); got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestSetTargetLength_AffectsSubsequentRecordsOnly(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	Infof("Main", "wide")
	SetTargetLength(4)
	Infof("Main", "narrow")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got: %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Main             |") {
		t.Fatalf("first line should use the old width, got: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Main |") {
		t.Fatalf("second line should use the new width, got: %q", lines[1])
	}
}

func TestTimestamps_InjectedClock(t *testing.T) {
	buf := captureConsole(t)
	oldNow := timeNow
	timeNow = func() time.Time {
		return time.Date(2026, 8, 27, 14, 3, 5, 0, time.UTC)
	}
	t.Cleanup(func() { timeNow = oldNow })

	mustInit(t, WithColor(false))
	Infof("Main", "stamped")

	want := "27.08.2026 | 14:03:05 | " + Fixed(16).Field("Main") + " | INFO  | stamped\n"
	if got := buf.String(); got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestConsole_ColoredByDefault(t *testing.T) {
	buf := captureConsole(t)
	mustInit(t, WithTimestamps(false))

	Infof("Main", "color-info")

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escape sequences on the console by default, got: %q", buf.String())
	}
	if stripped := stripAnsi(buf.String()); !strings.Contains(stripped, "color-info") {
		t.Fatalf("stripped output lost the message: %q", stripped)
	}
}

func TestPrintFunc_ReceivesPlainLines(t *testing.T) {
	captureConsole(t)

	var mu sync.Mutex
	var lines []string
	mustInit(t,
		WithTimestamps(false),
		WithColor(false),
		WithPrintFunc(func(line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		}),
	)

	Infof("Main", "to the callback")

	mu.Lock()
	defer mu.Unlock()
	if len(lines) != 1 {
		t.Fatalf("expected one callback invocation, got %d", len(lines))
	}
	want := Fixed(16).Field("Main") + " | INFO  | to the callback"
	if lines[0] != want {
		t.Fatalf("callback line = %q, want %q", lines[0], want)
	}
	if strings.Contains(lines[0], "\x1b[") || strings.HasSuffix(lines[0], "\n") {
		t.Fatalf("callback should receive a plain line without newline, got: %q", lines[0])
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFailure_DoesNotBlockOtherSinks(t *testing.T) {
	captureConsole(t)
	outStdout = failWriter{}

	var mu sync.Mutex
	var lines []string
	mustInit(t,
		WithTimestamps(false),
		WithColor(false),
		WithPrintFunc(func(line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		}),
	)

	Errorf("Main", "fan-out survives")

	mu.Lock()
	got := len(lines)
	mu.Unlock()
	if got != 1 {
		t.Fatalf("remaining sinks should still be written, got %d callback lines", got)
	}
	if WriteFailures() != 1 {
		t.Fatalf("expected 1 recorded write failure, got %d", WriteFailures())
	}
}

func TestFatal_HookRunsAfterAllWrites(t *testing.T) {
	captureConsole(t)

	var mu sync.Mutex
	var events []string
	mustInit(t,
		WithTimestamps(false),
		WithColor(false),
		WithPrintFunc(func(string) {
			mu.Lock()
			events = append(events, "write")
			mu.Unlock()
		}),
		WithOnFatal(func() {
			mu.Lock()
			events = append(events, "hook")
			mu.Unlock()
		}),
	)

	Fatalf("Main", "going down")

	mu.Lock()
	defer mu.Unlock()
	if len(events) < 2 || events[len(events)-1] != "hook" {
		t.Fatalf("hook must run strictly after all sink writes, got order: %v", events)
	}
	for _, e := range events[:len(events)-1] {
		if e != "write" {
			t.Fatalf("unexpected event order: %v", events)
		}
	}
}

func TestFatal_DefaultHookExits(t *testing.T) {
	captureConsole(t)
	exitCode := -1
	oldExit := osExit
	osExit = func(code int) { exitCode = code }
	t.Cleanup(func() { osExit = oldExit })

	mustInit(t, WithTimestamps(false), WithColor(false))
	Fatalf("Main", "unrecoverable")

	if exitCode != 1 {
		t.Fatalf("default fatal hook should exit with code 1, got %d", exitCode)
	}
}

func TestSetOnFatal_LastRegistrationWins(t *testing.T) {
	captureConsole(t)
	mustInit(t, WithTimestamps(false), WithColor(false))

	var first, second bool
	SetOnFatal(func() { first = true })
	SetOnFatal(func() { second = true })

	Fatalf("Main", "boom")

	if first {
		t.Fatalf("replaced hook must not run")
	}
	if !second {
		t.Fatalf("active hook should run")
	}
}

func TestSetOnFatal_NilRestoresDefault(t *testing.T) {
	captureConsole(t)
	exitCode := -1
	oldExit := osExit
	osExit = func(code int) { exitCode = code }
	t.Cleanup(func() { osExit = oldExit })

	mustInit(t, WithTimestamps(false), WithColor(false))
	SetOnFatal(func() {})
	SetOnFatal(nil)

	Fatalf("Main", "boom")

	if exitCode != 1 {
		t.Fatalf("nil hook should restore the exiting default, got code %d", exitCode)
	}
}
