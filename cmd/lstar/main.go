/*
Lstar runs an Angluin L* learning session against a membership and
equivalence oracle pair.

By default both oracles are interactive: the program prompts on stdin/stdout
for each membership query and for approval of each hypothesis it proposes.
Pointing --membership-log and/or --equivalence-log at a CSV log file (spec
§6's "output" column format) switches the corresponding oracle to a
log-backed one instead.

Usage:

	lstar [flags]

The flags are:

	-v, --version
		Give the current version of lstar and then exit.

	-t, --tokens
		Treat the alphabet as space-separated tokens (ε = "ε") instead of
		single characters (ε = "").

	-a, --alphabet SYMBOLS
		Comma-separated list of alphabet symbols.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines, even if launched in a tty with stdin and
		stdout.

	-m, --membership-log FILE
		Use a log-backed membership oracle reading samples from FILE instead
		of prompting interactively.

	-e, --equivalence-log FILE
		Use a log-backed equivalence oracle reading samples from FILE
		instead of prompting interactively.

	-c, --config FILE
		Load session configuration (iteration cap, table dump directory)
		from the given TOML file.

Once learning converges, the resulting DFA's transition table is printed to
stdout.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/lstar"
	"github.com/dekarrin/lstar/internal/alphabet"
	"github.com/dekarrin/lstar/internal/equivalence"
	"github.com/dekarrin/lstar/internal/ioreader"
	"github.com/dekarrin/lstar/internal/membership"
	"github.com/dekarrin/lstar/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitLearnError indicates an unsuccessful program execution due to a
	// problem during learning.
	ExitLearnError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the session.
	ExitInitError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	tokens      *bool   = pflag.BoolP("tokens", "t", false, "Treat the alphabet as space-separated tokens instead of single characters")
	alphaFlag   *string = pflag.StringP("alphabet", "a", "a,b", "Comma-separated list of alphabet symbols")
	forceDirect *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	membLog     *string = pflag.StringP("membership-log", "m", "", "Use a log-backed membership oracle reading samples from this CSV file")
	equivLog    *string = pflag.StringP("equivalence-log", "e", "", "Use a log-backed equivalence oracle reading samples from this CSV file")
	configFile  *string = pflag.StringP("config", "c", "", "Load session configuration from this TOML file")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	alpha, epsilon := buildAlphabet(*tokens, *alphaFlag)

	cfg := lstar.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = lstar.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}

	membOracle, equivOracle, closeFn, err := buildOracles(alpha, epsilon, *membLog, *equivLog, *forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer closeFn()

	sess := lstar.New(alpha, membOracle, equivOracle, cfg)

	dfa, err := sess.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLearnError
		return
	}

	fmt.Println(dfa.String())
	fmt.Printf("membership queries: %d, outer iterations: %d\n", sess.Stats().MembershipQueries, sess.Stats().Iterations)
}

// buildAlphabet constructs the Alphabet the session learns over from the CLI
// flags, and returns its ε representation for oracle construction below.
func buildAlphabet(asTokens bool, symbolsFlag string) (alphabet.Alphabet, string) {
	parts := strings.Split(symbolsFlag, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if asTokens {
		a := alphabet.NewTokenAlphabet(parts)
		return a, alphabet.Epsilon
	}

	runes := make([]rune, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		runes = append(runes, []rune(p)[0])
	}
	a := alphabet.NewRuneAlphabet(runes)
	return a, ""
}

// buildOracles wires up a membership and an equivalence oracle per the
// --membership-log/--equivalence-log flags, defaulting to interactive
// oracles sharing one ioreader.Reader. It returns a cleanup func that must
// be called (and deferred) regardless of which variant was chosen. The
// membership oracle is returned unwrapped: lstar.New applies its own
// mandatory cache, so wrapping it here too would only hide Session.Stats's
// query count behind a second, redundant cache.
func buildOracles(alpha alphabet.Alphabet, epsilon, membLogPath, equivLogPath string, forceDirect bool) (lstar.MembershipOracle, lstar.EquivalenceOracle, func(), error) {
	closeFn := func() {}

	var membOracle membership.Oracle
	if membLogPath != "" {
		f, err := os.Open(membLogPath)
		if err != nil {
			return nil, nil, closeFn, fmt.Errorf("open membership log: %w", err)
		}
		defer f.Close()

		logOracle, err := membership.NewLogBacked(f, epsilon)
		if err != nil {
			return nil, nil, closeFn, fmt.Errorf("load membership log: %w", err)
		}
		membOracle = logOracle
	}

	var equivOracle equivalence.Oracle
	if equivLogPath != "" {
		f, err := os.Open(equivLogPath)
		if err != nil {
			return nil, nil, closeFn, fmt.Errorf("open equivalence log: %w", err)
		}
		defer f.Close()

		logOracle, err := equivalence.NewLogBacked(f, alpha, epsilon)
		if err != nil {
			return nil, nil, closeFn, fmt.Errorf("load equivalence log: %w", err)
		}
		equivOracle = logOracle
	}

	if membOracle == nil || equivOracle == nil {
		r, err := ioreader.NewReader(os.Stdin, os.Stdout, forceDirect)
		if err != nil {
			return nil, nil, closeFn, fmt.Errorf("initializing input reader: %w", err)
		}
		closeFn = func() { r.Close() }

		if membOracle == nil {
			membOracle = membership.NewInteractive(r)
		}
		if equivOracle == nil {
			equivOracle = equivalence.NewInteractive(r)
		}
	}

	return membOracle, equivOracle, closeFn, nil
}
