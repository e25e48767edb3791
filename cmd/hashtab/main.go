package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sugawarayuuta/sonnet"
	"github.com/xyproto/env/v2"

	"github.com/wishedeom/hashtab"
)

// hashtab reads whitespace-separated words from the given files and puts each word into
// an open addressing hash table (key and value both set to the word), then reports the
// table's collision statistics. Defaults come from the HASHTAB_* environment variables
// and can be overridden with flags.
func main() {
	size := flag.Int64("size", int64(env.Int("HASHTAB_SIZE", 100)), "requested table size, rounded up to the next prime")
	collision := flag.String("collision", env.Str("HASHTAB_COLLISION", "D"), "collision handling scheme: D(ouble) or Q(uadratic)")
	empty := flag.String("empty", env.Str("HASHTAB_EMPTY", "A"), "empty marker scheme: A(vailable), N(egative) or R(eplace)")
	threshold := flag.Float64("threshold", env.Float64("HASHTAB_THRESHOLD", hashtab.DefaultRehashThreshold), "load factor that triggers expansion")
	asJSON := flag.Bool("json", false, "emit statistics as JSON")
	display := flag.Bool("display", false, "dump every slot after loading")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hashtab [flags] file...")
		flag.Usage()
		os.Exit(2)
	}
	if *collision == "" || *empty == "" {
		fmt.Fprintln(os.Stderr, "scheme codes must not be empty")
		os.Exit(2)
	}

	table, err := hashtab.NewHashTableWithConfig(hashtab.Config{
		InitialSize:     *size,
		RehashThreshold: *threshold,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating hash table: %s\n", err)
		os.Exit(2)
	}
	if err = table.Reconfigure((*collision)[0], (*empty)[0]); err != nil {
		fmt.Fprintf(os.Stderr, "error applying schemes: %s\n", err)
		os.Exit(2)
	}

	for _, name := range flag.Args() {
		words, elapsed, err := putFromFile(table, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %s\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d words in %s\n", name, words, elapsed)
	}

	if *display {
		if err = table.Display(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error dumping table: %s\n", err)
			os.Exit(1)
		}
	}

	if *asJSON {
		var buf []byte
		buf, err = sonnet.Marshal(table.Stat())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error marshalling statistics: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(string(buf))
	} else {
		if err = table.PrintStatistics(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error printing statistics: %s\n", err)
			os.Exit(1)
		}
	}
}

// putFromFile - Puts every whitespace-separated word of one file into the table
func putFromFile(table *hashtab.HashTable, name string) (words int64, elapsed time.Duration, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	start := time.Now()
	for scanner.Scan() {
		word := scanner.Text()
		if _, _, err = table.Put(word, word); err != nil {
			return
		}
		words++
	}
	elapsed = time.Since(start)
	err = scanner.Err()

	return
}
