package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/I-Am-Dench/mixbuild/mix"
)

func doHash(args []string) {
	SetLogPrefix("mixbuild(hash): ")

	flagset := flag.NewFlagSet("hash", flag.ExitOnError)
	flagset.Parse(args)

	if flagset.NArg() == 0 {
		Error.Fatal("no names provided")
	}

	tab := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tab, "name\tid\tsigned")
	for _, name := range flagset.Args() {
		id := mix.Id(name)
		fmt.Fprintf(tab, "%s\t%08X\t%d\n", name, id, int32(id))
	}
	tab.Flush()
}
