package nnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"reflect"
	"strconv"
	"strings"
)

// Training configuration settings
type Config struct {
	DataSet    string
	Points     int
	Eta        float64
	CenterX    float64
	CenterY    float64
	Width      float64
	Height     float64
	MaxRound   int
	Interval   int
	LogEvery   int
	TrainRuns  int
	RandSeed   int64
	DebugLevel int
}

// Default settings for a new model
func DefaultConfig() Config {
	return Config{
		Points:   100,
		Eta:      0.1,
		Width:    0.8,
		Height:   0.8,
		Interval: 500,
		LogEvery: 10,
	}
}

// Target square from the config settings
func (c Config) Square() Square {
	return Square{CenterX: c.CenterX, CenterY: c.CenterY, Width: c.Width, Height: c.Height}
}

// Validation error for a single config field
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Msg
}

func fieldErr(field, format string, args ...interface{}) error {
	return &FieldError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Check settings are in range. Returns a join of *FieldError values, one per invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Points <= 0 {
		errs = append(errs, fieldErr("Points", "must be positive: got %d", c.Points))
	}
	if !(c.Eta > 0) {
		errs = append(errs, fieldErr("Eta", "must be positive: got %g", c.Eta))
	}
	if c.MaxRound < 0 {
		errs = append(errs, fieldErr("MaxRound", "must not be negative: got %d", c.MaxRound))
	}
	if !(c.Width > 0) {
		errs = append(errs, fieldErr("Width", "must be positive: got %g", c.Width))
	}
	if !(c.Height > 0) {
		errs = append(errs, fieldErr("Height", "must be positive: got %g", c.Height))
	}
	return errors.Join(errs...)
}

// Map from field name to message for each *FieldError contained in err.
func FieldErrors(err error) map[string]string {
	res := map[string]string{}
	var list []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		list = joined.Unwrap()
	} else if err != nil {
		list = []error{err}
	}
	for _, e := range list {
		var ferr *FieldError
		if errors.As(e, &ferr) {
			res[ferr.Field] = ferr.Msg
		}
	}
	return res
}

// Load config from json file under DataDir
func LoadConfig(name string) (c Config, err error) {
	filePath := path.Join(DataDir, name)
	var f *os.File
	if f, err = os.Open(filePath); err != nil {
		return
	}
	defer f.Close()
	fmt.Println("loading config from", name)
	c = DefaultConfig()
	if err = json.NewDecoder(f).Decode(&c); err != nil {
		err = fmt.Errorf("error decoding %s: %w", name, err)
	}
	return
}

// Save default config and overwrite the current config
func (c Config) SaveDefault(name string) error {
	err := c.Save(name + ".default")
	if err != nil {
		return err
	}
	return c.Save(name + ".conf")
}

// Save config to JSON file under DataDir
func (c Config) Save(name string) error {
	filePath := path.Join(DataDir, "."+name)
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	fmt.Println("saving config to", name)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(c); err != nil {
		f.Close()
		return err
	}
	f.Close()
	return os.Rename(filePath, path.Join(DataDir, name))
}

func (c Config) Fields() []string {
	st := reflect.TypeOf(c)
	fld := make([]string, st.NumField())
	for i := range fld {
		fld[i] = st.Field(i).Name
	}
	return fld
}

func (c Config) Get(key string) interface{} {
	s := reflect.ValueOf(c)
	return s.FieldByName(key).Interface()
}

func (c Config) String() string {
	str := []string{"== Config =="}
	for _, key := range c.Fields() {
		str = append(str, fmt.Sprintf("%-10s: %v", key, c.Get(key)))
	}
	return strings.Join(str, "\n")
}

func (c Config) SetString(key, val string) (Config, error) {
	s := reflect.ValueOf(&c).Elem()
	f := s.FieldByName(key)
	if !f.IsValid() {
		return c, fmt.Errorf("unknown config field %q", key)
	}
	var err error
	switch f.Type().Kind() {
	case reflect.Int, reflect.Int64:
		var x int64
		if x, err = strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			f.SetInt(x)
		}
	case reflect.Float64:
		var x float64
		if x, err = strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			f.SetFloat(x)
		}
	case reflect.String:
		f.SetString(val)
	default:
		return c, fmt.Errorf("invalid type for SetString: %v", f.Type().Kind())
	}
	return c, err
}
