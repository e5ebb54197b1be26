package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/carbocation/tmb"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calctmb: ")

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := tmb.LoadConfig()
	if err != nil {
		return pfx.Err(err)
	}

	fs := flag.NewFlagSet("calctmb", flag.ContinueOnError)
	ledgerPath := fs.String("ledger", cfg.Ledger, "SQLite database to append each completed run to (optional; env TMB_LEDGER)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: calctmb [flags] [vcf.gz | gs://bucket/object | -]\n\nThe input defaults to %s.\n\n", tmb.DefaultPath)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	path := tmb.DefaultPath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	burden, err := tmb.CountFile(ctx, path)
	if err != nil {
		return pfx.Err(err)
	}

	fmt.Fprintln(stdout, "Total somatic variants:", burden.Variants)
	fmt.Fprintln(stdout, "TMB (mutations/Mb):", tmb.FormatRate(burden.PerMegabase()))

	if *ledgerPath == "" {
		return nil
	}

	ledger, err := tmb.OpenLedger(*ledgerPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer ledger.Close()

	if err := ledger.Record(path, burden); err != nil {
		return pfx.Err(err)
	}

	return nil
}
