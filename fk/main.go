package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hqassab/faktur/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits early when invoked by the
// shell's completion machinery and is a no-op otherwise.
func completion() {
	dateFlags := map[string]complete.Predictor{
		"date":     predict.Something,
		"customer": predict.Something,
		"item":     predict.Something,
		"plain":    predict.Nothing,
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"customers":       {},
			"add-customer":    {},
			"rename-customer": {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"rm-customer":     {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"products":        {},
			"add-product":     {},
			"rename-product":  {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"rm-product":      {Flags: map[string]complete.Predictor{"i": predict.Something}},
			"invoice":         {Flags: dateFlags},
			"edit-invoice":    {Flags: dateFlags},
			"rm-invoice":      {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"show-invoice":    {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"report": {Flags: map[string]complete.Predictor{
				"year":     predict.Something,
				"month":    predict.Something,
				"day":      predict.Something,
				"customer": predict.Something,
				"product":  predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import": {Args: predict.Files("*.json")},
		},
		Flags: map[string]complete.Predictor{
			"book-file": predict.Files("*.json"),
		},
	}
	c.Complete("fk")
}
