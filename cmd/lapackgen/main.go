package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/lapackgen"
	"github.com/wippyai/lapackgen/cdecl"
	"github.com/wippyai/lapackgen/wrap"
)

func main() {
	var (
		inFile      = flag.String("in", "", `Path to header with extern "C" blocks (default stdin)`)
		outFile     = flag.String("out", "", "Output path for the generated Go file (default stdout)")
		pkg         = flag.String("pkg", env.Str("LAPACKGEN_PKG", "lapack"), "Package name of the generated file")
		ldflags     = flag.String("lib", env.Str("LAPACKGEN_LIB", "-llapack"), "cgo LDFLAGS of the generated file")
		list        = flag.Bool("list", false, "List declarations and derived signatures and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		wrap.SetLogger(logger)
	}

	opts := lapackgen.Options{Package: *pkg, LDFlags: *ldflags}

	if *interactive {
		if *inFile == "" {
			fmt.Fprintln(os.Stderr, "Usage: lapackgen -i -in <header>")
			os.Exit(1)
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*inFile, *outFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, opts, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, opts lapackgen.Options, listOnly bool) error {
	src, err := readSource(inFile)
	if err != nil {
		return err
	}

	if listOnly {
		return listDecls(os.Stdout, src)
	}

	out, err := lapackgen.Generate(src, opts)
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readSource(inFile string) (string, error) {
	if inFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inFile)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// listDecls prints each raw declaration next to the safe signature the
// generator would derive for it, without emitting any file.
func listDecls(w io.Writer, src string) error {
	decls, err := cdecl.ParseAll(src)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Declarations: %d\n", len(decls))
	for _, d := range decls {
		sig, err := wrap.Signature(d)
		if err != nil {
			return err
		}
		ret, err := wrap.Return(d)
		if err != nil {
			return err
		}

		params := make([]string, len(sig))
		for i, p := range sig {
			params[i] = p.Name + " " + p.Type
		}
		result := ""
		if ret != "" {
			result = " " + ret
		}

		fmt.Fprintf(w, "\n  %s\n", d.Prototype())
		fmt.Fprintf(w, "  -> func %s(%s)%s\n", wrap.Name(d.Name), strings.Join(params, ", "), result)
	}
	return nil
}
