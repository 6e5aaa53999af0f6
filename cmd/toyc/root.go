package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"toylang/internal/ast"
	"toylang/internal/compiler"
	"toylang/internal/diag"
	"toylang/internal/ir"
	"toylang/internal/loader"
)

var errFailed = errors.New("compilation failed")

type options struct {
	emitAST bool
	emitIR  bool
	brief   bool
	jobs    int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "toyc [flags] <file|dir>...",
		Short: "toyc - toy language front end",
		Long: `toyc parses and type-checks toy source files.

Each file is an independent compilation unit. A directory contributes
its *.toy files. Code generation is left to the backend; toyc stops at
the typed IR.
`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdout, stderr)
		},
	}
	cmd.Flags().BoolVarP(&opts.emitAST, "emit-ast", "a", false, "print the AST of each unit")
	cmd.Flags().BoolVarP(&opts.emitIR, "emit-ir", "i", false, "print the typed IR of each unit")
	cmd.Flags().BoolVarP(&opts.brief, "brief", "b", false, "one line per diagnostic, sorted by position")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "units compiled in parallel (default: GOMAXPROCS)")
	return cmd
}

func run(ctx context.Context, opts options, args []string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := loader.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}
	units, errs := compiler.CompileAll(ctx, files, opts.jobs)

	bag := &diag.Bag{}
	for i, u := range units {
		if opts.emitAST && u.Module != nil {
			fmt.Fprintf(stdout, "== ast %s\n", u.File.Name)
			ast.Fprint(stdout, u.File, u.Module)
		}
		if opts.emitIR && u.IR != nil {
			fmt.Fprintf(stdout, "== ir %s\n", u.File.Name)
			fmt.Fprint(stdout, ir.Format(u.IR))
		}
		if errs[i] == nil {
			continue
		}
		if opts.brief {
			bag.AddError(u.File, errs[i])
		} else {
			diag.Render(stderr, u.File, errs[i])
		}
	}
	diag.Print(stderr, bag)

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(stderr, "%d of %d units failed\n", failed, len(units))
		return errFailed
	}
	return nil
}
