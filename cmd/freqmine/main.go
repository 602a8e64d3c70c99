// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

// Command freqmine mines frequent item sets, closed/maximal sets,
// association rules, hyperedges, or groups from a line-oriented
// transaction file: one transaction per line, items separated by
// whitespace.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/elsif/freqmine"
	"github.com/elsif/freqmine/item"
	"github.com/elsif/freqmine/transaction"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "freqmine:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("freqmine", flag.ContinueOnError)
	var (
		support    = fs.Int("support", 2, "absolute minimum support")
		confidence = fs.Float64("confidence", 0.8, "minimum rule/hyperedge confidence, in [0,1]")
		target     = fs.String("target", "sets", "sets|closed|maximal|rules|hyperedges|groups")
		minLen     = fs.Int("min-len", 1, "minimum reported pattern length")
		maxLen     = fs.Int("max-len", 0, "maximum reported pattern length (0: unbounded)")
		measureStr = fs.String("measure", "none", "none|conf-diff|conf-quot-diff-to-1|improvement-diff|info-gain|chi2-normalised|chi2-pvalue")
		minMeasure = fs.Float64("min-measure", 0, "floor for -measure")
		memOpt     = fs.Bool("memory-optimise", true, "use sparse node layout where it saves memory")
		useTree    = fs.Bool("transaction-tree", true, "compress the transaction database into a shared-prefix tree before counting")
		verbose    = fs.Bool("v", false, "debug-level logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: freqmine [flags] <transaction-file>")
	}

	tgt, err := parseTarget(*target)
	if err != nil {
		return err
	}
	m, err := parseMeasure(*measureStr)
	if err != nil {
		return err
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	lines, err := readLines(fs.Arg(0))
	if err != nil {
		return err
	}

	dict := item.NewMapDictionary()
	raw := make([][]string, len(lines))
	for i, line := range lines {
		names := strings.Fields(line)
		raw[i] = names
		for _, name := range names {
			if _, ok := dict.IDOf(name); !ok {
				dict.Add(name, item.Both)
			}
		}
	}

	encoded := make([][]int32, len(raw))
	for i, names := range raw {
		ids := make([]int32, 0, len(names))
		for _, name := range names {
			id, _ := dict.IDOf(name)
			ids = append(ids, id)
			dict.IncrFrequency(id, 1)
		}
		encoded[i] = sortUnique(ids)
	}

	oldToNew := dict.SortByFrequency()
	for i, ids := range encoded {
		for j, id := range ids {
			ids[j] = oldToNew[id]
		}
		encoded[i] = sortUnique(ids)
	}

	oneItemCounts := make([]int32, dict.ItemCount())
	for id := int32(0); id < int32(dict.ItemCount()); id++ {
		oneItemCounts[id] = int32(dict.Frequency(id))
	}

	opts := freqmine.Options{
		MinSupport:     *support,
		MinConfidence:  *confidence,
		Target:         tgt,
		MinLen:         *minLen,
		MaxLen:         *maxLen,
		ExtraMeasure:   m,
		MinMeasure:     *minMeasure,
		MemoryOptimise: *memOpt,
	}
	tree, err := freqmine.NewTree(opts, dict, oneItemCounts, log)
	if err != nil {
		return err
	}

	var source freqmine.TransactionSource
	if *useTree {
		source = transaction.Build(encoded)
	} else {
		source = transaction.NewSliceSource(encoded)
	}

	job := freqmine.NewJob(tree, source, log)
	if err := job.Run(context.Background()); err != nil {
		return err
	}

	return emit(os.Stdout, tree, dict, tgt)
}

func emit(w io.Writer, tree *freqmine.Tree, dict *item.MapDictionary, target freqmine.Target) error {
	out := bufio.NewWriter(w)
	defer out.Flush() //nolint:errcheck

	names := func(ids []int32) string {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = dict.NameOf(id)
		}
		return strings.Join(parts, " ")
	}

	switch target {
	case freqmine.TargetRules:
		it := tree.Rules()
		for {
			r, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%s -> %s\t%d\t%.4f\t%.4f\t%.4f\n",
				names(r.Body), dict.NameOf(r.Head), r.Support, r.Confidence, r.Lift, r.Measure)
		}
	case freqmine.TargetHyperedges:
		it := tree.Hyperedges()
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%s\t%d\t%.4f\n", names(p.Items), p.Support, p.Measure)
		}
	case freqmine.TargetGroups:
		it := tree.Groups()
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%s\t%d\t%.4f\n", names(p.Items), p.Support, p.Measure)
		}
	default:
		it := tree.Sets()
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%s\t%d\t%.4f\n", names(p.Items), p.Support, p.Measure)
		}
	}
	return nil
}

func parseTarget(s string) (freqmine.Target, error) {
	switch s {
	case "sets":
		return freqmine.TargetSets, nil
	case "closed":
		return freqmine.TargetClosedSets, nil
	case "maximal":
		return freqmine.TargetMaximalSets, nil
	case "rules":
		return freqmine.TargetRules, nil
	case "hyperedges":
		return freqmine.TargetHyperedges, nil
	case "groups":
		return freqmine.TargetGroups, nil
	default:
		return 0, fmt.Errorf("unknown -target %q", s)
	}
}

func parseMeasure(s string) (freqmine.ExtraMeasureKind, error) {
	switch s {
	case "none":
		return freqmine.MeasureNone, nil
	case "conf-diff":
		return freqmine.MeasureConfDiff, nil
	case "conf-quot-diff-to-1":
		return freqmine.MeasureConfQuotDiffToOne, nil
	case "improvement-diff":
		return freqmine.MeasureImprovementDiff, nil
	case "info-gain":
		return freqmine.MeasureInfoGain, nil
	case "chi2-normalised":
		return freqmine.MeasureChi2Normalised, nil
	case "chi2-pvalue":
		return freqmine.MeasureChi2PValue, nil
	default:
		return 0, fmt.Errorf("unknown -measure %q", s)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func sortUnique(ids []int32) []int32 {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
