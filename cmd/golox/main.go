package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "repl":
		return replCommand(args[2:])
	case "run":
		return runCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "golox.toml", "workbench manifest to load")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	return runREPL(cfg)
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "golox.toml", "workbench manifest to load")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return errors.New("golox run: command file required")
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	file, err := os.Open(remaining[0])
	if err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	defer file.Close()

	session := NewSession(os.Stdout)
	if err := cfg.Apply(session); err != nil {
		return err
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		output, err := session.Execute(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", remaining[0], lineNo, err)
		}
		if output != "" {
			fmt.Println(output)
		}
	}
	return scanner.Err()
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <repl|run> [flags] [file]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  repl          interactive object workbench")
	fmt.Fprintln(os.Stderr, "  run <file>    execute a file of workbench commands")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -config <path>")
	fmt.Fprintln(os.Stderr, "    workbench manifest to load (default \"golox.toml\")")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
