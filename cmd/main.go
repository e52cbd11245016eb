// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	smallvec "github.com/facebookincubator/go-smallvec"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/urfave/cli/v2"
)

// elementKinds maps the --type names the tool understands to layout
// and trace implementations for that element type
var elementKinds = map[string]struct {
	layout func() smallvec.Layout
	trace  func(log *slog.Logger, n int) traceResult
}{
	"int8":       {smallvec.LayoutOf[int8], traceOf(func(i int) int8 { return int8(i) })},
	"int16":      {smallvec.LayoutOf[int16], traceOf(func(i int) int16 { return int16(i) })},
	"int32":      {smallvec.LayoutOf[int32], traceOf(func(i int) int32 { return int32(i) })},
	"int64":      {smallvec.LayoutOf[int64], traceOf(func(i int) int64 { return int64(i) })},
	"float32":    {smallvec.LayoutOf[float32], traceOf(func(i int) float32 { return float32(i) })},
	"float64":    {smallvec.LayoutOf[float64], traceOf(func(i int) float64 { return float64(i) })},
	"complex128": {smallvec.LayoutOf[complex128], traceOf(func(i int) complex128 { return complex(float64(i), 0) })},
	"block32":    {smallvec.LayoutOf[[4]int64], traceOf(func(i int) [4]int64 { return [4]int64{int64(i)} })},
}

func kindNames() string {
	names := make([]string, 0, len(elementKinds))
	for k := range elementKinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type traceResult struct {
	transitions int
	final       smallvec.Mode
	capacity    int
}

// traceOf returns a function which pushes n elements into a fresh
// vector, logging every change of representation or capacity
func traceOf[T comparable](mk func(int) T) func(*slog.Logger, int) traceResult {
	return func(log *slog.Logger, n int) traceResult {
		v := smallvec.New[T]()
		mode, capacity := v.Mode(), v.Cap()
		var res traceResult
		for i := 0; i < n; i++ {
			v.PushBack(mk(i))
			if v.Mode() != mode || v.Cap() != capacity {
				res.transitions++
				log.Debug("storage changed",
					"len", v.Len(),
					"from", mode,
					"to", v.Mode(),
					"old_cap", capacity,
					"new_cap", v.Cap(),
				)
				mode, capacity = v.Mode(), v.Cap()
			}
		}
		if err := v.CheckConsistency(); err != nil {
			log.Error("trace left vector inconsistent", "error", err)
		}
		res.final, res.capacity = v.Mode(), v.Cap()
		return res
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// readValues loads one integer per line from r.  With unique set,
// repeated values are dropped using a bloom filter sized for expected
// entries, so a small fraction of distinct values may be dropped too.
func readValues(r io.Reader, unique bool, expected uint, fp float64) (*smallvec.Vector[int64], int, error) {
	var filter *bloom.BloomFilter
	if unique {
		filter = bloom.NewWithEstimates(expected, fp)
	}
	v := smallvec.New[int64]()
	dropped := 0
	rdr := bufio.NewReader(r)
	var key [8]byte
	for {
		l, _, err := rdr.ReadLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, 0, err
		}
		s := strings.TrimSpace(string(l))
		if s == "" {
			continue
		}
		x, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("bad value %q: %w", s, err)
		}
		if filter != nil {
			binary.LittleEndian.PutUint64(key[:], uint64(x))
			if filter.TestAndAdd(key[:]) {
				dropped++
				continue
			}
		}
		v.PushBack(x)
	}
	return v, dropped, nil
}

func loadPath(path string) (*smallvec.Vector[int64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, _, err := readValues(f, false, 0, 0)
	return v, err
}

func main() {
	var log *slog.Logger
	app := &cli.App{
		Name:  "smallvec",
		Usage: "inspect and exercise small-buffer vectors",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
			},
		},
		Before: func(c *cli.Context) error {
			log = newLogger(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "explain",
				Usage: "describe the layout of a vector of the given element type",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   "int32",
						Usage:   "element type: " + kindNames(),
					},
					&cli.IntFlag{
						Name:    "upto",
						Aliases: []string{"n"},
						Value:   100,
						Usage:   "print the growth schedule up to this many elements",
					},
				},
				Action: func(c *cli.Context) error {
					k, ok := elementKinds[c.String("type")]
					if !ok {
						return fmt.Errorf("unknown element type %q, expected one of %s", c.String("type"), kindNames())
					}
					l := k.layout()
					l.Explain(os.Stdout)
					fmt.Printf("growth schedule: %v\n", l.GrowthSchedule(c.Int("upto")))
					return nil
				},
			},
			{
				Name:  "trace",
				Usage: "push elements one at a time and report representation changes",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   "int32",
						Usage:   "element type: " + kindNames(),
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1000,
						Usage:   "number of elements to push",
					},
				},
				Action: func(c *cli.Context) error {
					k, ok := elementKinds[c.String("type")]
					if !ok {
						return fmt.Errorf("unknown element type %q, expected one of %s", c.String("type"), kindNames())
					}
					start := time.Now()
					res := k.trace(log, c.Int("count"))
					log.Info("trace complete",
						"type", c.String("type"),
						"pushed", c.Int("count"),
						"transitions", res.transitions,
						"mode", res.final,
						"capacity", res.capacity,
						"elapsed", time.Since(start),
					)
					return nil
				},
			},
			{
				Name:  "load",
				Usage: "load integers, one per line, into a vector and describe it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file to read from (default is stdin)",
					},
					&cli.BoolFlag{
						Name:    "unique",
						Aliases: []string{"u"},
						Usage:   "drop repeated values (approximately, via a bloom filter)",
					},
					&cli.UintFlag{
						Name:  "expected",
						Value: 100000,
						Usage: "expected number of distinct values, sizes the bloom filter",
					},
					&cli.Float64Flag{
						Name:  "fp",
						Value: 0.001,
						Usage: "bloom filter false positive rate",
					},
					&cli.BoolFlag{
						Name:  "shrink",
						Usage: "shrink the vector to fit after loading",
					},
					&cli.BoolFlag{
						Name:    "dump",
						Aliases: []string{"d"},
						Usage:   "dump the vector contents",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					var reader io.Reader
					if c.IsSet("input") {
						f, err := os.Open(c.String("input"))
						if err != nil {
							return err
						}
						reader = f
						defer f.Close()
					} else {
						reader = os.Stdin
					}

					start := time.Now()
					v, dropped, err := readValues(reader, c.Bool("unique"), c.Uint("expected"), c.Float64("fp"))
					if err != nil {
						return fmt.Errorf("load: %w", err)
					}
					if c.Bool("shrink") {
						v.ShrinkToFit()
					}
					if err := v.CheckConsistency(); err != nil {
						return err
					}
					log.Info("loaded vector",
						"len", v.Len(),
						"cap", v.Cap(),
						"mode", v.Mode(),
						"dropped", dropped,
						"elapsed", time.Since(start),
					)
					fmt.Printf("%d elements, %s, capacity %d, hash %016x\n", v.Len(), v.Mode(), v.Cap(), v.Hash(0))
					if c.Bool("dump") {
						v.DebugDump(os.Stdout)
					}
					return nil
				},
			},
			{
				Name:      "diff",
				Usage:     "compare two files of integers loaded as vectors",
				ArgsUsage: "<a> <b>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("diff: expected two files, got %d", c.NArg())
					}
					a, err := loadPath(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("diff: can't read %s: %w", c.Args().Get(0), err)
					}
					b, err := loadPath(c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("diff: can't read %s: %w", c.Args().Get(1), err)
					}
					d := smallvec.Mismatch(a, b)
					fmt.Printf("rough parity: %t, strict equality: %t, %d differing positions\n",
						a.RoughParity(b), a.StrictEqual(b), d.Count())
					for i, ok := d.NextSet(0); ok; i, ok = d.NextSet(i + 1) {
						x, errA := a.TryGet(int(i))
						y, errB := b.TryGet(int(i))
						switch {
						case errA != nil:
							fmt.Printf("%8d  -        %d\n", i, y)
						case errB != nil:
							fmt.Printf("%8d  %d        -\n", i, x)
						default:
							fmt.Printf("%8d  %d        %d\n", i, x, y)
						}
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if log == nil {
			log = newLogger(false)
		}
		log.Error("smallvec failed", "error", err)
		os.Exit(1)
	}
}
