// Train the square edge network from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jnb666/perceptron/nnet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: train [opts] <model>")
		os.Exit(1)
	}
	model := os.Args[len(os.Args)-1]
	fmt.Println("load model:", model)
	conf, err := nnet.LoadConfig(model + ".conf")
	if os.IsNotExist(err) {
		conf, err = nnet.DefaultConfig(), nil
	}
	nnet.CheckErr(err)

	// override config settings from command line
	flag.Float64Var(&conf.Eta, "eta", conf.Eta, "learning rate")
	flag.IntVar(&conf.Points, "points", conf.Points, "number of generated training points")
	flag.Float64Var(&conf.CenterX, "cx", conf.CenterX, "square center x")
	flag.Float64Var(&conf.CenterY, "cy", conf.CenterY, "square center y")
	flag.Float64Var(&conf.Width, "width", conf.Width, "square width")
	flag.Float64Var(&conf.Height, "height", conf.Height, "square height")
	flag.IntVar(&conf.MaxRound, "rounds", conf.MaxRound, "max rounds, 0 for no limit")
	flag.IntVar(&conf.LogEvery, "log", conf.LogEvery, "log stats every n rounds")
	flag.Int64Var(&conf.RandSeed, "seed", conf.RandSeed, "random number seed")
	flag.IntVar(&conf.DebugLevel, "debug", conf.DebugLevel, "debug logging level")
	flag.Parse()
	nnet.CheckErr(conf.Validate())

	// load training data or generate new points
	var data *nnet.Dataset
	if conf.DataSet != "" && nnet.FileExists(conf.DataSet+"_train.dat") {
		data, err = nnet.LoadDataFile(conf.DataSet + "_train")
		nnet.CheckErr(err)
		data.Relabel(conf.Square())
	} else {
		data = nnet.Generate(conf.Points, conf.Square(), nnet.SetSeed(conf.RandSeed))
	}
	fmt.Println(conf)
	fmt.Println("training data:", data)

	net := nnet.New()
	s := nnet.Train(net, data, conf, nnet.NewTestLogger(conf, data))
	fmt.Println(net)
	fmt.Printf("final accuracy: %d / %d = %.1f%%\n", s.Correct, data.Len(), s.Accuracy*100)
}
