// cstart is the CStart interpreter binary: an interactive REPL by
// default, or a fixed demonstration battery with --demo.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	cstart "github.com/Chandher05/CStart"
)

const (
	appName     = "cstart"
	historyFile = ".cstart_history"
	prompt      = "c> "
	farewell    = "Goodbye!"
)

var log = logrus.New()

var (
	demoMode = kingpin.Flag("demo", "Run the fixed demonstration battery instead of the REPL.").Bool()
	debug    = kingpin.Flag("debug", "More log messages.").Short('d').Bool()
)

var banner = fmt.Sprintf("CStart %s REPL\nVariables start with %q. Ctrl+D exits.",
	cstart.Version, string(cstart.Sentinel))

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	kingpin.Version(cstart.Version)
	kingpin.Parse()

	log.Out = os.Stderr
	if *debug {
		log.Level = logrus.DebugLevel
	}

	if *demoMode {
		os.Exit(runDemo())
	}
	os.Exit(runRepl())
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func runRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := cstart.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			log.Errorf("read error: %v", err)
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := ip.EvalSource(line)
		if err != nil {
			// report and keep reading; only the process dies on Ctrl+D
			fmt.Fprintln(os.Stderr, red(cstart.WrapErrorWithSource(err, line).Error()))
			continue
		}
		if out := cstart.FormatValue(v); out != "" {
			fmt.Println(out)
		}
		ln.AppendHistory(line)
	}

	fmt.Println(farewell)
	return 0
}

// -----------------------------------------------------------------------------
// demo
// -----------------------------------------------------------------------------

// demos is the fixed battery: assignment, loops, conditionals. They run
// against one shared session, so later entries see earlier variables.
var demos = []struct {
	name string
	src  string
}{
	{"assignment", "cval = 2 + 3 * 4;"},
	{"grouping", "cval = (2 + 3) * 4;"},
	{"loop accumulation", "csum = 0; for (ci = 0; ci < 5; ci = ci + 1) { csum = csum + ci; } csum"},
	{"branch selection", "if (cval > 10) { cbig = 1; } else { cbig = 0; }"},
	{"leaked loop variable", "ci"},
}

func runDemo() int {
	ip := cstart.NewInterpreter()

	for _, d := range demos {
		log.Infof("demo %q: %s", d.name, d.src)

		tokens, err := cstart.NewLexer(d.src).Scan()
		if err != nil {
			log.Errorf("%v", cstart.WrapErrorWithSource(err, d.src))
			return 1
		}
		log.Infof("tokens:\n%s", cstart.DumpTokens(tokens))

		tree, err := cstart.Parse(d.src)
		if err != nil {
			log.Errorf("%v", cstart.WrapErrorWithSource(err, d.src))
			return 1
		}
		log.Infof("tree:\n%s", cstart.DumpTree(tree))

		v, err := ip.EvalSource(d.src)
		if err != nil {
			log.Errorf("%v", cstart.WrapErrorWithSource(err, d.src))
			return 1
		}
		if out := cstart.FormatValue(v); out != "" {
			fmt.Printf("%s => %s\n", d.name, out)
		} else {
			fmt.Printf("%s => (no value)\n", d.name)
		}
	}
	return 0
}
