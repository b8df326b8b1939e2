package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/choice/interop"
	"github.com/wippyai/choice/layout"
	"github.com/wippyai/choice/object"
)

type shapeEntry struct {
	name  string
	desc  string
	shape layout.Shape
}

// Built-in shapes covering both storage strategies.
var shapes = []shapeEntry{
	{"option-ptr", "optional pointer, niche-compressed", layout.Of2[object.Unit, *int]()},
	{"option-map", "optional map, niche-compressed", layout.Of2[object.Unit, map[string]int]()},
	{"option-int", "optional integer, tagged", layout.Of2[object.Unit, int]()},
	{"option-string", "optional string, tagged", layout.Of2[object.Unit, string]()},
	{"result-string", "string or error code, tagged", layout.Of2[string, int32]()},
	{"int-or-float", "two-alternative scalar choice", layout.Of2[int32, float64]()},
	{"tri", "three-alternative mixed choice", layout.Of3[int, float64, *int]()},
	{"quad", "four-alternative scalar choice", layout.Of4[uint8, uint16, uint32, uint64]()},
	{"wide", "five-alternative choice", layout.Of5[bool, int8, int64, float32, string]()},
}

func main() {
	var (
		list        = flag.Bool("list", false, "List built-in shapes and exit")
		shapeName   = flag.String("shape", "", "Inspect a single shape by name")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log layout decisions")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layout.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*shapeName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(shapeName string, listOnly bool) error {
	if listOnly {
		for _, s := range shapes {
			fmt.Printf("%-14s %s\n", s.name, s.desc)
		}
		return nil
	}

	calc := layout.NewCalculator()

	if shapeName != "" {
		for _, s := range shapes {
			if s.name == shapeName {
				printShape(calc, s)
				return nil
			}
		}
		return fmt.Errorf("unknown shape %q (try -list)", shapeName)
	}

	for i, s := range shapes {
		if i > 0 {
			fmt.Println()
		}
		printShape(calc, s)
	}
	return nil
}

func printShape(calc *layout.Calculator, s shapeEntry) {
	info := calc.Calculate(s.shape)

	fmt.Printf("Shape: %s  %s\n", s.name, s.shape)
	fmt.Printf("Decision: %s\n", info.Decision)
	fmt.Printf("Size: %d  Align: %d\n", info.Size, info.Align)
	if !info.Decision.Niched() {
		fmt.Printf("Discriminant: %d byte(s)  Payload offset: %d\n", info.DiscSize, info.PayloadOffset)
	}

	if td, err := interop.WitShape(s.shape); err == nil {
		fmt.Printf("WIT: %s\n", interop.Render(td))
	} else {
		fmt.Printf("WIT: (no analogue: %v)\n", err)
	}
}
