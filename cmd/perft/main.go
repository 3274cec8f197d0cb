package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ekhar/shakmaty"
	"github.com/fatih/color"
)

var (
	variantName = flag.String("variant", "standard", "variant to search: standard, atomic, antichess, kingofthehill, 3check, crazyhouse, racingkings, horde")
	moves       = flag.String("moves", "", "space-separated UCI moves to play from the variant's starting position before searching")
	minDepth    = flag.Int("min-depth", 1, "minimum depth to search (inclusive)")
	maxDepth    = flag.Int("max-depth", 5, "maximum depth to search (inclusive)")
	depth       = flag.Int("depth", 0, "if non-zero, searches only this single depth")
	splitDepth  = flag.Int("split", 0, "ply at which to print a per-move divide breakdown")
)

func findByUCI(pos shakmaty.Position, uci string) (shakmaty.Move, bool) {
	for _, m := range pos.LegalMoves() {
		if m.UCI() == uci {
			return m, true
		}
	}
	return shakmaty.Move{}, false
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	kind, ok := shakmaty.VariantKindFromName(*variantName)
	if !ok {
		log.Fatalf("unknown --variant %q", *variantName)
	}
	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	vp := shakmaty.NewVariantPosition(kind)
	var pos shakmaty.Position = vp

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("Searching variant %q\n", kind.String())

	if strings.TrimSpace(*moves) != "" {
		for _, uci := range strings.Fields(*moves) {
			m, found := findByUCI(pos, uci)
			if !found {
				log.Fatalf("illegal or unknown move %q in --moves", uci)
			}
			if err := pos.Play(m); err != nil {
				log.Fatalf("playing %q: %v", uci, err)
			}
		}
	}

	fmt.Println("depth        nodes   captures enpassant castles   promotions   elapsed")
	fmt.Println("-----+------------+----------+---------+---------+----------+---------")

	var report func(depth int, trail []string, c counters)
	if *splitDepth > 0 {
		moveColor := color.New(color.FgYellow)
		report = func(depth int, trail []string, c counters) {
			moveColor.Printf("   %2d %12d %8d %9d %7d %10d split %s\n",
				depth, c.nodes, c.captures, c.enpassant, c.castles, c.promotions, strings.Join(trail, " "))
		}
	}

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		var c counters
		if *splitDepth > 0 {
			c = split(pos, d, *splitDepth, nil, report)
		} else {
			c = perft(pos, d)
		}
		elapsed := time.Since(start)
		row := color.New(color.FgGreen)
		row.Printf("%5d %12d %10d %9d %8d %10d %s\n",
			d, c.nodes, c.captures, c.enpassant, c.castles, c.promotions, elapsed)
	}
}
