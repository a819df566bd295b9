// f14repl is a simple CLI for exercising an in-memory f14.Table.
//
// Usage:
//
//	f14repl
//
// Commands (in REPL):
//
//	put <key> <value>     Insert or update an entry
//	get <key>              Retrieve an entry by key
//	del <key>              Delete an entry
//	scan [limit]           List all entries
//	len                    Count live entries
//	info                   Show table info (capacity, tombstones, chunks)
//	debug                  Dump control bytes per chunk
//	bulk <count>           Insert N random entries
//	seq <count> [start]    Insert N sequential entries
//	bench <count>          Benchmark insert+get performance
//	rebuild                Force a tombstone rebuild
//	clear                  Remove every entry
//	help                   Show this help
//	exit / quit / q        Exit
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/calvinalkan/f14map/pkg/f14"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	r := &REPL{table: f14.New[string, string]()}

	return r.Run()
}

// REPL drives an interactive session against a single in-memory table.
type REPL struct {
	table *f14.Table[string, string]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".f14repl_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Println("f14repl - in-memory f14.Table CLI")
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("f14> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "put":
			r.cmdPut(args)

		case "get":
			r.cmdGet(args)

		case "del", "delete":
			r.cmdDelete(args)

		case "scan", "ls", "list":
			r.cmdScan(args)

		case "len", "count":
			r.cmdLen()

		case "info":
			r.cmdInfo()

		case "debug":
			fmt.Print(r.table.GoString())

		case "bulk":
			r.cmdBulk(args)

		case "seq":
			r.cmdSeq(args)

		case "bench":
			r.cmdBench(args)

		case "rebuild":
			r.cmdRebuild()

		case "clear", "cls":
			r.table.Clear()
			fmt.Println("cleared")

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{
		"put", "get", "del", "delete",
		"scan", "ls", "list",
		"len", "count", "info", "debug",
		"bulk", "seq", "bench", "rebuild",
		"clear", "cls",
		"help", "exit", "quit", "q",
	}

	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  put <key> <value>     Insert or update an entry")
	fmt.Println("  get <key>             Retrieve an entry by key")
	fmt.Println("  del <key>             Delete an entry")
	fmt.Println("  scan [limit]          List all entries")
	fmt.Println("  len                   Count live entries")
	fmt.Println("  info                  Show table info")
	fmt.Println("  debug                 Dump control bytes per chunk")
	fmt.Println("  bulk <count>          Insert N random entries")
	fmt.Println("  seq <count> [start]   Insert N sequential entries")
	fmt.Println("  bench <count>         Benchmark insert+get performance")
	fmt.Println("  rebuild               Force a tombstone rebuild")
	fmt.Println("  clear                 Remove every entry")
	fmt.Println("  help                  Show this help")
	fmt.Println("  exit / quit / q       Exit")
}

func (r *REPL) cmdPut(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: put <key> <value>")
		return
	}

	key, value := args[0], strings.Join(args[1:], " ")

	old, existed, err := r.table.Insert(key, value)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if existed {
		fmt.Printf("updated %q (was %q)\n", key, old)
	} else {
		fmt.Printf("inserted %q\n", key)
	}
}

func (r *REPL) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: get <key>")
		return
	}

	v, ok := r.table.Get(args[0])
	if !ok {
		fmt.Println("(not found)")
		return
	}

	fmt.Println(v)
}

func (r *REPL) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: del <key>")
		return
	}

	_, ok := r.table.Remove(args[0])
	if !ok {
		fmt.Println("(not found)")
		return
	}

	fmt.Println("deleted")
}

func (r *REPL) cmdScan(args []string) {
	limit := -1

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("invalid limit: %v\n", err)
			return
		}

		limit = n
	}

	var n int

	for k, v := range r.table.All() {
		if limit >= 0 && n >= limit {
			break
		}

		fmt.Printf("%s = %s\n", k, v)
		n++
	}

	fmt.Printf("(%d entries shown)\n", n)
}

func (r *REPL) cmdLen() {
	fmt.Println(r.table.Len())
}

func (r *REPL) cmdInfo() {
	fmt.Println(r.table)
}

func (r *REPL) cmdRebuild() {
	if err := r.table.Rebuild(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Println("rebuilt")
}

func (r *REPL) cmdBulk(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: bulk <count>")
		return
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("invalid count: %v\n", err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("key-%08x", rng.Uint32())
		value := fmt.Sprintf("val-%08x", rng.Uint32())

		if _, _, err := r.table.Insert(key, value); err != nil {
			fmt.Printf("error at entry %d: %v\n", i, err)
			return
		}
	}

	fmt.Printf("inserted %d random entries\n", count)
}

func (r *REPL) cmdSeq(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: seq <count> [start]")
		return
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("invalid count: %v\n", err)
		return
	}

	start := 0
	if len(args) > 1 {
		start, err = strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("invalid start: %v\n", err)
			return
		}
	}

	for i := 0; i < count; i++ {
		n := start + i
		key := fmt.Sprintf("key-%d", n)
		value := fmt.Sprintf("val-%d", n)

		if _, _, err := r.table.Insert(key, value); err != nil {
			fmt.Printf("error at entry %d: %v\n", i, err)
			return
		}
	}

	fmt.Printf("inserted %d sequential entries starting at %d\n", count, start)
}

func (r *REPL) cmdBench(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: bench <count>")
		return
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("invalid count: %v\n", err)
		return
	}

	keys := make([]string, count)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-%d", i)
	}

	start := time.Now()

	for _, k := range keys {
		if _, _, err := r.table.Insert(k, k); err != nil {
			fmt.Printf("insert error: %v\n", err)
			return
		}
	}

	insertElapsed := time.Since(start)

	start = time.Now()

	for _, k := range keys {
		r.table.Get(k)
	}

	getElapsed := time.Since(start)

	fmt.Printf("insert: %d ops in %v (%.0f ops/sec)\n", count, insertElapsed, float64(count)/insertElapsed.Seconds())
	fmt.Printf("get:    %d ops in %v (%.0f ops/sec)\n", count, getElapsed, float64(count)/getElapsed.Seconds())
}
