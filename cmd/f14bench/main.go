// f14bench is a standalone throughput benchmark for pkg/f14, reporting
// wall-clock ops/sec for insert, get, and remove without depending on
// `go test -bench`.
//
// Usage:
//
//	f14bench -n 1000000 -hasher maphash
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/calvinalkan/f14map/pkg/f14"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("f14bench", flag.ExitOnError)

	n := fs.Int("n", 1_000_000, "number of keys to insert/get/remove")
	hasherName := fs.String("hasher", "maphash", "hasher to use: maphash, fnv, constant")
	capacity := fs.Int("capacity", 0, "pre-size the table to this capacity (0 lets it grow)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	table, err := newTable(*hasherName, *capacity)
	if err != nil {
		return err
	}

	keys := make([]string, *n)
	for i := range keys {
		keys[i] = fmt.Sprintf("bench-key-%d", i)
	}

	report("insert", *n, func() error {
		for _, k := range keys {
			if _, _, err := table.Insert(k, k); err != nil {
				return err
			}
		}

		return nil
	})

	var hits int

	report("get", *n, func() error {
		for _, k := range keys {
			if _, ok := table.Get(k); ok {
				hits++
			}
		}

		return nil
	})

	fmt.Printf("get hit rate: %d/%d\n", hits, *n)

	report("remove", *n, func() error {
		for _, k := range keys {
			table.Remove(k)
		}

		return nil
	})

	fmt.Printf("final: %s\n", table)

	return nil
}

func newTable(hasherName string, capacity int) (*f14.Table[string, string], error) {
	var hasher f14.HashBuilder[string]

	switch hasherName {
	case "maphash":
		return f14.NewWithCapacity[string, string](capacity)
	case "fnv":
		hasher = f14.FNV1a64Hasher{}
	case "constant":
		hasher = f14.ConstantHasher[string]{Value: 0xC0FFEE}
	default:
		return nil, fmt.Errorf("unknown hasher %q", hasherName)
	}

	return f14.NewWithCapacityAndHasher[string, string](capacity, hasher)
}

func report(label string, n int, fn func() error) {
	start := time.Now()

	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
		os.Exit(1)
	}

	elapsed := time.Since(start)

	fmt.Printf("%-8s %10d ops in %10v  (%.0f ops/sec)\n", label, n, elapsed, float64(n)/elapsed.Seconds())
}
