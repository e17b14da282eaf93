// Web server to train the network and visualise the results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jnb666/perceptron/nnet"
	"github.com/jnb666/perceptron/web"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Println("usage: web [opts] <model>")
		os.Exit(1)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Println("error loading .env file:", err)
	}
	if dir := os.Getenv("PERCEPTRON_DATA"); dir != "" {
		nnet.DataDir = dir
	}
	addr := flag.String("addr", getenv("PERCEPTRON_ADDR", ":8080"), "address to listen on")
	flag.Parse()
	model := os.Args[len(os.Args)-1]

	conf, err := web.NewConfig(model)
	nnet.CheckErr(err)

	net, err := web.NewNetwork(conf)
	nnet.CheckErr(err)

	t, err := web.NewTemplates()
	nnet.CheckErr(err)

	r := web.NewRouter(t, net)
	if user := os.Getenv("PERCEPTRON_USER"); user != "" {
		r.Use(web.NewAuthMiddleware(user, os.Getenv("PERCEPTRON_PASSWORD")).Middleware)
	} else {
		log.Println("PERCEPTRON_USER not set - authentication disabled")
	}

	fmt.Printf("serving web page at http://localhost%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func getenv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
