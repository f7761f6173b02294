package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/a-lang/acomp"
)

const defaultWritePermission = 0644 // -rw-r--r--

type args struct {
	inputPath *string
	mode      *string

	outputPath *string
	binPath    *string
	ccPath     *string
}

// readArgs implements the documented `acomp <input-file> [<mode>]`
// interface (§6): both are positional. -mode is kept as an override
// for callers that prefer a flag; the positional form wins when both
// are given a non-default value.
func readArgs() *args {
	defaultCC := "cc"
	if cc := os.Getenv("CC"); cc != "" {
		defaultCC = cc
	}

	a := &args{
		mode: flag.String("mode", "", "Compile mode: optimized, raw, debug, debug_opt, debug_raw"),

		outputPath: flag.String("o", "output.c", "Path to write the generated C source"),
		binPath:    flag.String("bin", "program", "Path of the compiled binary"),
		ccPath:     flag.String("cc", defaultCC, "C compiler to invoke"),
	}
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Input file not informed")
	}
	input := flag.Arg(0)
	a.inputPath = &input

	if flag.NArg() >= 2 {
		mode := flag.Arg(1)
		a.mode = &mode
	}

	return a
}

func main() {
	a := readArgs()

	mode, err := acomp.ParseMode(*a.mode)
	if err != nil {
		log.Fatal(err)
	}

	in, err := os.Open(*a.inputPath)
	if err != nil {
		log.Fatalf("Can't open input file: %s", err.Error())
	}
	defer in.Close()

	result, err := acomp.Compile(in, mode, acomp.DefaultCompileLimits(), os.Stderr)
	if err != nil {
		log.Fatalf("Can't read input: %s", err.Error())
	}

	if result.Report != "" {
		fmt.Fprint(os.Stderr, result.Report)
	}
	if !result.Success {
		os.Exit(1)
	}

	if err := os.WriteFile(*a.outputPath, []byte(result.Source), defaultWritePermission); err != nil {
		log.Fatalf("Can't write output: %s", err.Error())
	}

	ccArgs := append(append([]string{*a.outputPath, "-o", *a.binPath}, mode.CCFlags()...), "-lm")
	result.Logger.Log(acomp.EventGCCCmd, 0, "%s %s", *a.ccPath, ccArgs)

	cc := exec.Command(*a.ccPath, ccArgs...)
	cc.Stdout = os.Stdout
	cc.Stderr = os.Stderr

	if err := cc.Run(); err != nil {
		log.Fatalf("C compiler failed: %s", err.Error())
	}

	if mode.AutoRun() {
		result.Logger.Log(acomp.EventRunStart, 0, "./%s", *a.binPath)

		run := exec.Command("./" + *a.binPath)
		run.Stdout = os.Stdout
		run.Stderr = os.Stderr
		run.Stdin = os.Stdin

		runErr := run.Run()
		exitCode := 0
		if runErr != nil {
			if exitErr, ok := runErr.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else {
				log.Fatalf("Program failed to run: %s", runErr.Error())
			}
		}
		result.Logger.Log(acomp.EventRunEnd, 0, "exit code %d", exitCode)

		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}
