// Command nanotek loads a circuit description and runs an interactive
// simulation session against it.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpelletier/nanotek"
	"github.com/mpelletier/nanotek/dsl"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nanotek <circuit-file>",
	Short: "Discrete-time tristate digital circuit simulator",
	Long: `nanotek loads a circuit description written in the chipsets/links DSL,
builds and evaluates it once at tick 0, then opens an interactive session
accepting:

  simulate        advance the circuit by one tick
  <name>=<value>  stage a value ("0", "1" or "U") on an input or clock
  display         print the current tick, inputs and outputs
  exit            quit`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every command before executing it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := dsl.Build(f)
	if err != nil {
		return fmt.Errorf("building circuit: %w", err)
	}

	if err := c.WriteTo(os.Stdout); err != nil {
		return err
	}

	return repl(c, os.Stdin, os.Stdout)
}

func repl(c *nanotek.Circuit, in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if verbose {
			log.Printf("command: %s", line)
		}
		switch {
		case line == "exit":
			return nil
		case line == "display":
			if err := c.WriteTo(out); err != nil {
				return err
			}
		case line == "simulate":
			c.Simulate()
			if err := c.WriteTo(out); err != nil {
				return err
			}
		case strings.Contains(line, "="):
			name, value, _ := strings.Cut(line, "=")
			if err := c.SetValue(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		default:
			fmt.Fprintln(out, "unrecognized command:", line)
		}
	}
	return scanner.Err()
}
