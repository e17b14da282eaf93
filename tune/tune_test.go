package tune

import (
	"context"
	"testing"

	"github.com/jnb666/perceptron/nnet"
)

func TestRunConfig(t *testing.T) {
	conf := nnet.DefaultConfig()
	conf.TrainRuns = 2
	param := []Param{
		NewParam("Eta", "0.1, 0.05,0.15"),
		NewParam("Points", "50,200"),
	}
	runs, err := RunConfig(conf, param)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 12 {
		t.Fatalf("got %d runs expect 12", len(runs))
	}
	seen := map[[2]float64]int{}
	for _, c := range runs {
		seen[[2]float64{c.Eta, float64(c.Points)}]++
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct configs: %v", seen)
	}
	for k, n := range seen {
		if n != 2 {
			t.Errorf("%v repeated %d times", k, n)
		}
	}
}

func TestRunConfigErrors(t *testing.T) {
	conf := nnet.DefaultConfig()
	if _, err := RunConfig(conf, []Param{{Name: "Eta"}}); err == nil {
		t.Error("expected error for empty values")
	}
	if _, err := RunConfig(conf, []Param{NewParam("Eta", "0.1,fast")}); err == nil {
		t.Error("expected parse error")
	}
}

func TestRun(t *testing.T) {
	conf := nnet.DefaultConfig()
	conf.RandSeed = 1
	conf.MaxRound = 200
	confs, err := RunConfig(conf, []Param{NewParam("Eta", "0.1,0.5"), NewParam("Points", "20,40")})
	if err != nil {
		t.Fatal(err)
	}
	results, err := Run(context.Background(), confs, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(confs) {
		t.Fatalf("got %d results", len(results))
	}
	ids := map[string]bool{}
	for i, r := range results {
		t.Log(r)
		if r.Run != i || r.Conf != confs[i] {
			t.Errorf("result %d out of order", i)
		}
		if r.Final.Round < 1 || r.Final.Round > conf.MaxRound {
			t.Errorf("result %d: round %d", i, r.Final.Round)
		}
		if r.Converged != (r.Final.Errors == 0) {
			t.Errorf("result %d: converged flag %v errors %d", i, r.Converged, r.Final.Errors)
		}
		ids[r.ID] = true
	}
	if len(ids) != len(results) {
		t.Error("duplicate result ids")
	}
	groups := Summarise(results, "Eta")
	if len(groups) != 2 || groups[0].Value != "0.1" || groups[1].Value != "0.5" {
		t.Fatalf("groups: %v", groups)
	}
	for _, g := range groups {
		t.Log(g)
		if g.Total != 2 || g.Accuracy.Count != 2 {
			t.Errorf("group %s: %+v", g.Value, g)
		}
	}
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conf := nnet.DefaultConfig()
	if _, err := Run(ctx, []nnet.Config{conf, conf}, 1); err == nil {
		t.Error("expected context error")
	}
}

func TestRunInvalid(t *testing.T) {
	conf := nnet.DefaultConfig()
	conf.Eta = 0
	if _, err := Run(context.Background(), []nnet.Config{conf}, 1); err == nil {
		t.Error("expected validation error")
	}
}
