// Package goolog provides a lightweight leveled logger with a
// column-aligned output layout keyed by a caller target name.
//
// Every log line follows the same layout:
//
//	29.08.2026 | 14:03:05 | Main             | INFO  | Hello, world!
//
// The target column has a configurable width (16 characters by default);
// longer names are cut, shorter names are padded, so output from many
// components stays aligned. A width of zero disables alignment entirely.
//
// # Console and File Output
//
// The console sink is always attached and uses ANSI colors by default.
// An optional file sink writes the same lines without escape sequences,
// so the file is a faithful colorless transcript of the console. The file
// sink never records messages below Info, no matter how verbose the
// console is.
//
// # Usage
//
// Initialize once at startup:
//
//	if err := goolog.Init(goolog.WithLogFile("logs/main.log")); err != nil {
//		// ...
//	}
//	defer goolog.Close()
//
// Then log from anywhere, naming the component the message belongs to:
//
//	goolog.Infof("Main", "started in %v", elapsed)
//	goolog.Warnf("Proxy", "connection lost, retrying")
//
// An empty target selects the process-wide default target (see
// [SetDefaultTarget]).
//
// # Fatal Messages
//
// Fatalf writes the record to every sink and then runs the fatal hook,
// which terminates the process with exit code 1 unless replaced via
// [SetOnFatal]. The hook runs strictly after all sink writes, so the
// final message is never lost.
//
// # Hosts Without a Console
//
// On hosts without usable standard streams, register a print callback
// with [WithPrintFunc]; it receives each fully formatted plain line.
package goolog
