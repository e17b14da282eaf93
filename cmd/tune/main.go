// Run a hyperparameter sweep over learning rate and number of points.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/jnb666/perceptron/nnet"
	"github.com/jnb666/perceptron/tune"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tune [opts] <model>")
		os.Exit(1)
	}
	model := os.Args[len(os.Args)-1]
	conf, err := nnet.LoadConfig(model + ".conf")
	if os.IsNotExist(err) {
		conf, err = nnet.DefaultConfig(), nil
	}
	nnet.CheckErr(err)

	eta := flag.String("eta", fmt.Sprint(conf.Eta), "comma separated learning rates")
	points := flag.String("points", fmt.Sprint(conf.Points), "comma separated number of points")
	workers := flag.Int("workers", 0, "number of parallel runs, 0 for one per cpu")
	flag.IntVar(&conf.TrainRuns, "runs", conf.TrainRuns, "runs per config")
	flag.IntVar(&conf.MaxRound, "rounds", conf.MaxRound, "max rounds, 0 for no limit")
	flag.Int64Var(&conf.RandSeed, "seed", conf.RandSeed, "random number seed")
	flag.IntVar(&conf.DebugLevel, "debug", conf.DebugLevel, "debug logging level")
	flag.Parse()

	params := []tune.Param{tune.NewParam("Eta", *eta), tune.NewParam("Points", *points)}
	confs, err := tune.RunConfig(conf, params)
	nnet.CheckErr(err)
	fmt.Printf("%d runs\n", len(confs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := tune.Run(ctx, confs, *workers)
	nnet.CheckErr(err)
	for _, r := range results {
		fmt.Println(r)
	}
	for _, p := range params {
		fmt.Printf("== by %s ==\n", p.Name)
		for _, g := range tune.Summarise(results, p.Name) {
			fmt.Println(g)
		}
	}
}
