// Command rpl48 is an interactive line-mode front end for the RPL
// engine: it reads command lines from standard input, evaluates each
// against one persistent VM, and prints the resulting stack.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/openrpl/rpl48"
)

func main() {
	heap := flag.Int("heap", rpl48.DefaultHeapSize, "object heap size in bytes")
	precision := flag.Int("precision", 0, "working precision in decimal digits (0 keeps the default)")
	load := flag.String("load", "", "load a saved .48s state file before starting")
	trace := flag.Bool("trace", false, "print the stack depth after every line")
	rawkeys := flag.Bool("rawkeys", false, "read input one keystroke at a time instead of by line")
	flag.Parse()

	vm := rpl48.NewVM(*heap)
	if *precision > 0 {
		s := vm.Settings()
		s.Precision = *precision
		vm.SetSettings(s)
	}

	if *load != "" {
		if err := vm.LoadStatePath(*load); err != nil {
			fmt.Fprintf(os.Stderr, "rpl48: loading %s: %v\n", *load, err)
			os.Exit(1)
		}
	}

	var readLine func() (string, bool)
	if *rawkeys {
		restore, err := enableRawMode(int(os.Stdin.Fd()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "rpl48: -rawkeys unavailable: %v\n", err)
			os.Exit(1)
		}
		defer restore()
		readLine = rawKeyLineReader(os.Stdin)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		readLine = func() (string, bool) {
			if !scanner.Scan() {
				return "", false
			}
			return scanner.Text(), true
		}
	}

	for {
		fmt.Print("rpl48> ")
		line, ok := readLine()
		if !ok {
			break
		}
		if line == "bye" || line == "exit" {
			break
		}
		if err := vm.EvalString(line); err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(vm.RenderTop())
		if *trace {
			fmt.Println("depth:", vm.Depth())
		}
	}
}

// rawKeyLineReader assembles keystrokes read one at a time into command
// lines, echoing each printable character and terminating a line on
// Enter, so -rawkeys behaves like the line reader except for how it
// reads from the terminal.
func rawKeyLineReader(r *os.File) func() (string, bool) {
	buf := bufio.NewReader(r)
	return func() (string, bool) {
		var line []byte
		for {
			b, err := buf.ReadByte()
			if err != nil {
				return "", false
			}
			switch b {
			case '\r', '\n':
				fmt.Println()
				return string(line), true
			case 127, 8: // backspace / delete
				if len(line) > 0 {
					line = line[:len(line)-1]
					fmt.Print("\b \b")
				}
			case 3: // Ctrl-C
				return "", false
			default:
				line = append(line, b)
				fmt.Printf("%c", b)
			}
		}
	}
}
