package nnet

import (
	"testing"
)

func TestConfig(t *testing.T) {
	DataDir = t.TempDir()
	conf := DefaultConfig()
	conf.DataSet = "square"
	if err := conf.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := conf.SaveDefault("square"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"square.default", "square.conf"} {
		c, err := LoadConfig(name)
		if err != nil {
			t.Fatal(err)
		}
		if c != conf {
			t.Errorf("%s: got\n%s\nexpect\n%s", name, c, conf)
		}
	}
	conf, err := conf.SetString("Eta", " 0.25")
	if err != nil || conf.Eta != 0.25 {
		t.Errorf("set Eta: %v %g", err, conf.Eta)
	}
	if conf, err = conf.SetString("RandSeed", "99"); err != nil || conf.RandSeed != 99 {
		t.Errorf("set RandSeed: %v %d", err, conf.RandSeed)
	}
	if _, err = conf.SetString("Points", "lots"); err == nil {
		t.Error("expected syntax error")
	}
	if _, err = conf.SetString("Nosuch", "1"); err == nil {
		t.Error("expected unknown field error")
	}
	if conf.Get("Width") != 0.8 {
		t.Errorf("get Width: %v", conf.Get("Width"))
	}
	if len(conf.Fields()) != 13 {
		t.Errorf("fields: %v", conf.Fields())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		field  string
		modify func(*Config)
	}{
		{"Points", func(c *Config) { c.Points = 0 }},
		{"Eta", func(c *Config) { c.Eta = 0 }},
		{"Width", func(c *Config) { c.Width = -1 }},
		{"Height", func(c *Config) { c.Height = 0 }},
		{"MaxRound", func(c *Config) { c.MaxRound = -1 }},
	}
	for _, test := range tests {
		conf := DefaultConfig()
		test.modify(&conf)
		err := conf.Validate()
		if err == nil {
			t.Errorf("%s: expected error", test.field)
			continue
		}
		t.Log(err)
		errs := FieldErrors(err)
		if len(errs) != 1 || errs[test.field] == "" {
			t.Errorf("%s: field errors %v", test.field, errs)
		}
	}
	conf := DefaultConfig()
	conf.Eta, conf.Width = -1, 0
	if errs := FieldErrors(conf.Validate()); len(errs) != 2 || errs["Eta"] == "" || errs["Width"] == "" {
		t.Errorf("multiple errors: %v", errs)
	}
	if errs := FieldErrors(DefaultConfig().Validate()); len(errs) != 0 {
		t.Errorf("valid config: %v", errs)
	}
}

func TestTrain(t *testing.T) {
	conf := DefaultConfig()
	conf.LogEvery = 0
	conf.MaxRound = 1000
	data := &Dataset{Square: Square{Width: 0.8, Height: 0.8}, Points: gridData()}
	net := New()
	test := NewTestBase(conf, data)
	s := Train(net, data, conf, test)
	if !s.Converged() {
		t.Fatalf("not converged: %+v", s)
	}
	if s.Accuracy <= 0.5 || s.Correct != int(s.Accuracy*float64(len(data.Points))+0.5) {
		t.Errorf("final accuracy: %+v", s)
	}
	if len(test.Stats) != net.Round || test.Last().Round != net.Round {
		t.Errorf("stats history: %d entries, round %d", len(test.Stats), net.Round)
	}
	for i, st := range test.Stats {
		if st.Round != i+1 {
			t.Errorf("stats %d has round %d", i, st.Round)
		}
	}
}

func TestTrainMaxRound(t *testing.T) {
	conf := DefaultConfig()
	conf.MaxRound = 2
	data := &Dataset{Square: Square{Width: 0.8, Height: 0.8}, Points: gridData()}
	net := New()
	s := Train(net, data, conf, NewTestLogger(conf, data))
	if s.Round != 2 || net.Round != 2 {
		t.Errorf("expected stop at round 2: %+v", s)
	}
	if s.Converged() {
		t.Error("should not converge in 2 rounds")
	}
}
