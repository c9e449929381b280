// Command goolog-demo walks through the goolog feature set: leveled
// output, the aligned target column, file transcripts, and the fatal
// hook.
//
//	goolog-demo --level trace --length 20 --file ./demo.log
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/Gooxey/goolog"
)

var cli struct {
	Level  string `default:"info" enum:"trace,debug,info,warn,error,fatal" help:"Minimum severity for console output."`
	Length uint   `default:"16"                                            help:"Width of the target column (0 disables alignment)."`
	File   string `type:"path"                                             help:"Append a plain-text transcript to this file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("goolog-demo"),
		kong.Description("Demonstrates the goolog logger."),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	level, err := goolog.ParseSeverity(cli.Level)
	if err != nil {
		return err
	}

	opts := []goolog.Option{
		goolog.WithLevel(level),
		goolog.WithTargetLength(cli.Length),
		goolog.WithColor(isatty.IsTerminal(os.Stdout.Fd())),
		goolog.WithDefaultTarget("Main"),
	}
	if cli.File != "" {
		opts = append(opts, goolog.WithLogFile(cli.File))
	}

	if err := goolog.Init(opts...); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	defer goolog.Close()

	start := time.Now()

	goolog.Tracef("", "resolving configuration")
	goolog.Debugf("", "console level set to %s", level)
	goolog.Infof("", "started in %v", time.Since(start))

	// Targets longer than the column are cut, shorter ones padded.
	goolog.Infof("MySuperAwesomeMCManageClient", "long targets are truncated")
	goolog.Warnf("Proxy", "short targets are padded")

	// Messages below Info stay out of the file transcript.
	goolog.Debugf("Proxy", "this line never reaches the log file")

	goolog.Errorf("Proxy", "connection lost: %v", errors.New("broken pipe"))

	if cli.File != "" {
		goolog.Infof("", "transcript written to %s", cli.File)
	}
	return nil
}
