package main

import (
	"flag"
	"log"
	"slices"
	"strings"
)

type CommandList map[string]func(args []string)

func (list *CommandList) Usage() {
	keys := []string{}
	for key := range *list {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	log.Fatalf("expected subcommand: {%s}", strings.Join(keys, "|"))
}

func GetArgFilename(flagset *flag.FlagSet, i int, message ...string) string {
	m := "no filename provided"
	if len(message) > 0 {
		m = message[0]
	}

	if flagset.NArg() < i+1 {
		Error.Fatal(m)
	}

	return flagset.Args()[i]
}
