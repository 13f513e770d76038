package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/naruneph/lockcounter/registry"

	_ "github.com/naruneph/lockcounter/coordinator"
)

func main() {
	list := flag.Bool("list", false, "list available scenarios")
	example := flag.String("example", "counter", "scenario to run")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nScenarios:")
		for _, name := range registry.List() {
			if ex, ok := registry.Lookup(name); ok && ex.Doc != "" {
				fmt.Fprintf(os.Stderr, " - %s: %s\n", name, ex.Doc)
				continue
			}
			fmt.Fprintf(os.Stderr, " - %s\n", name)
		}
	}

	flag.Parse()

	if *list {
		fmt.Println("Available scenarios:")
		for _, name := range registry.List() {
			if ex, ok := registry.Lookup(name); ok {
				fmt.Printf(" - %s: %s\n", name, ex.Doc)
			}
		}
		return
	}

	if ex, ok := registry.Lookup(*example); ok {
		ex.Func()
	} else {
		fmt.Fprintln(os.Stderr, "Unknown scenario. Use -list to see options.")
		os.Exit(1)
	}
}
