package cmd

import (
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the fintrack command line.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	views := make(predict.Set, 0, len(fintrack.Views))
	for _, v := range fintrack.Views {
		views = append(views, v.String())
	}

	entry := map[string]complete.Predictor{
		"d":      predict.Something,
		"t":      predict.Something,
		"desc":   predict.Something,
		"vendor": predict.Something,
		"a":      predict.Something,
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"deposit": {Flags: entry},
			"payment": {Flags: entry},
			"ledger": {Flags: map[string]complete.Predictor{
				"view": views,
				"md":   predict.Nothing,
			}},
			"menu":     {},
			"topic":    {Args: predict.Set(append(topics, "*"))},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*.yaml"),
			"ledger-file": predict.Files("*"),
			"v":           predict.Nothing,
		},
	}
}
