// © 2024 Ledgerlang LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"gopkg.ledgerlang.org/lexer.go/internal/exc"
	"gopkg.ledgerlang.org/lexer.go/internal/fs"
	"gopkg.ledgerlang.org/lexer.go/internal/lang"
	"gopkg.ledgerlang.org/lexer.go/internal/lexer"
)

type opts struct {
	Roots    []string
	Encoding string
	Values   bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("ledlex", pflag.PanicOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for includes.")
	flags.StringVar(&op.Encoding, "encoding", "utf-8", "Encoding tag recorded for the scan.")
	flags.BoolVar(&op.Values, "values", false, "Output builder values next to each token.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	mf := make(fs.FileSystemMulti, 0, len(op.Roots))
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			panic(errAbs.Error())
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, rf)
	}

	reporter := exc.NewReporter(nil)
	lx := lexer.NewLexerLedger(
		reporter,
		lexer.NewBuilder(),
		lexer.WithOptionFileSystem(mf),
		lexer.WithOptionEncoding(op.Encoding),
	)

	for _, target := range targets {
		files, err := mf.Open(ctx, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		for _, f := range files {
			if err := dump(ctx, lx, f, op.Values); err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
		}
	}

	reported := reporter.Reported()
	for _, e := range reported {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if len(reported) > 0 {
		os.Exit(1)
	}
}

func dump(ctx context.Context, lx *lexer.LexerLedger, f lang.File, values bool) error {
	s, err := lx.Lex(ctx, f)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close(ctx)
	}()
	for {
		tok := s.Next(ctx)
		if values && tok.Value != nil {
			fmt.Printf("%s = %v\n", tok.String(), tok.Value)
		} else {
			fmt.Println(tok.String())
		}
		if tok.Type == lang.TokenTypeEOF {
			return nil
		}
	}
}
