// Command presets manages named rule presets in a SQLite file.
//
//	presets -db rules.db save -name glider-farm -rule B3/S23 -boundary torus
//	presets -db rules.db list
//	presets -db rules.db show -name glider-farm
//	presets -db rules.db delete -name glider-farm
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"topolife/internal/preset"
	"topolife/internal/rule"
)

func main() {
	db := flag.String("db", "topolife-presets.db", "path to the preset database")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	ctx := context.Background()
	store := preset.NewStore(*db)
	if err := store.Init(ctx); err != nil {
		log.Fatalf("open preset store: %v", err)
	}
	defer store.Close()

	switch args[0] {
	case "save":
		runSave(ctx, store, args[1:])
	case "list":
		runList(ctx, store)
	case "show":
		runShow(ctx, store, args[1:])
	case "delete":
		runDelete(ctx, store, args[1:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: presets [-db path] <save|list|show|delete> [options]")
	os.Exit(2)
}

func runSave(ctx context.Context, store *preset.Store, args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	p := preset.Preset{
		Boundary:         "torus",
		Neighborhood:     "moore",
		Vitality:         "none",
		Threshold:        0.5,
		GhostFactor:      0.5,
		SigmoidSharpness: 10,
		DecayPower:       2,
	}
	fs.StringVar(&p.Name, "name", "", "preset name (required)")
	fs.StringVar(&p.Rule, "rule", "B3/S23", "rule string")
	fs.StringVar(&p.Boundary, "boundary", p.Boundary, "boundary topology id")
	fs.StringVar(&p.Neighborhood, "neighborhood", p.Neighborhood, "neighborhood shape id")
	fs.StringVar(&p.Vitality, "vitality", p.Vitality, "vitality mode id")
	fs.Float64Var(&p.Threshold, "threshold", p.Threshold, "vitality threshold")
	fs.Float64Var(&p.GhostFactor, "ghost", p.GhostFactor, "ghost factor")
	fs.Float64Var(&p.SigmoidSharpness, "sharpness", p.SigmoidSharpness, "sigmoid sharpness")
	fs.Float64Var(&p.DecayPower, "power", p.DecayPower, "decay power")
	_ = fs.Parse(args)

	if p.Name == "" {
		log.Fatalf("save: -name is required")
	}
	if _, ok := rule.Parse(p.Rule); !ok {
		log.Fatalf("save: %q is not a valid rule string", p.Rule)
	}
	if err := store.Save(ctx, p); err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("saved %q\n", p.Name)
}

func runList(ctx context.Context, store *preset.Store) {
	presets, err := store.List(ctx)
	if err != nil {
		log.Fatalf("list: %v", err)
	}
	if len(presets) == 0 {
		fmt.Println("no presets saved")
		return
	}
	for _, p := range presets {
		fmt.Printf("%-20s %-12s %s/%s vitality=%s\n", p.Name, p.Rule, p.Boundary, p.Neighborhood, p.Vitality)
	}
}

func runShow(ctx context.Context, store *preset.Store, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	name := fs.String("name", "", "preset name (required)")
	_ = fs.Parse(args)
	if *name == "" {
		log.Fatalf("show: -name is required")
	}

	p, ok, err := store.Get(ctx, *name)
	if err != nil {
		log.Fatalf("show: %v", err)
	}
	if !ok {
		log.Fatalf("show: no preset named %q", *name)
	}
	fmt.Printf("name:         %s\n", p.Name)
	fmt.Printf("rule:         %s\n", p.Rule)
	fmt.Printf("boundary:     %s\n", p.Boundary)
	fmt.Printf("neighborhood: %s\n", p.Neighborhood)
	fmt.Printf("vitality:     %s\n", p.Vitality)
	fmt.Printf("threshold:    %g\n", p.Threshold)
	fmt.Printf("ghost factor: %g\n", p.GhostFactor)
	fmt.Printf("sharpness:    %g\n", p.SigmoidSharpness)
	fmt.Printf("decay power:  %g\n", p.DecayPower)
}

func runDelete(ctx context.Context, store *preset.Store, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	name := fs.String("name", "", "preset name (required)")
	_ = fs.Parse(args)
	if *name == "" {
		log.Fatalf("delete: -name is required")
	}

	existed, err := store.Delete(ctx, *name)
	if err != nil {
		log.Fatalf("delete: %v", err)
	}
	if !existed {
		log.Fatalf("delete: no preset named %q", *name)
	}
	fmt.Printf("deleted %q\n", *name)
}
