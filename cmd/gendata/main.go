// Generate a labeled training data set and default config for a model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jnb666/perceptron/nnet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: gendata [opts] <model>")
		os.Exit(1)
	}
	model := os.Args[len(os.Args)-1]
	conf := nnet.DefaultConfig()
	conf.DataSet = model
	flag.IntVar(&conf.Points, "points", conf.Points, "number of points")
	flag.Float64Var(&conf.Eta, "eta", conf.Eta, "learning rate")
	flag.Float64Var(&conf.CenterX, "cx", conf.CenterX, "square center x")
	flag.Float64Var(&conf.CenterY, "cy", conf.CenterY, "square center y")
	flag.Float64Var(&conf.Width, "width", conf.Width, "square width")
	flag.Float64Var(&conf.Height, "height", conf.Height, "square height")
	flag.Int64Var(&conf.RandSeed, "seed", conf.RandSeed, "random number seed")
	flag.Parse()
	nnet.CheckErr(conf.Validate())

	data := nnet.Generate(conf.Points, conf.Square(), nnet.SetSeed(conf.RandSeed))
	fmt.Println(data)
	nnet.CheckErr(nnet.SaveDataFile(data, model+"_train"))

	fmt.Println(conf)
	nnet.CheckErr(conf.SaveDefault(model))
}
