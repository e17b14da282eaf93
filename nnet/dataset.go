package nnet

import (
	"encoding/gob"
	"fmt"
	"math/rand"
	"os"
	"path"
	"time"
)

var DataDir = dataDir()

func dataDir() string {
	if dir := os.Getenv("PERCEPTRON_DATA"); dir != "" {
		return dir
	}
	return os.Getenv("GOPATH") + "/src/github.com/jnb666/perceptron/data"
}

// Dataset type holds the labeled training points and the square used to label them.
type Dataset struct {
	Square
	Points []LabeledPoint
}

// Generate n random points uniformly distributed in [-1,1] x [-1,1] labeled against the square.
func Generate(n int, sq Square, rng *rand.Rand) *Dataset {
	d := &Dataset{Square: sq, Points: make([]LabeledPoint, n)}
	for i := range d.Points {
		d.Points[i].X = rng.Float64()*2 - 1
		d.Points[i].Y = rng.Float64()*2 - 1
	}
	d.Relabel(sq)
	return d
}

// Number of points
func (d *Dataset) Len() int { return len(d.Points) }

// Count of points with inside classification
func (d *Dataset) Inside() int {
	count := 0
	for _, p := range d.Points {
		if p.Class == 1 {
			count++
		}
	}
	return count
}

// Update the target square and reclassify each of the points.
func (d *Dataset) Relabel(sq Square) {
	d.Square = sq
	b := sq.Bounds()
	for i, p := range d.Points {
		d.Points[i].Class = Classify(p.Point, b)
	}
}

func (d *Dataset) String() string {
	return fmt.Sprintf("%d points (%d inside) square %s", d.Len(), d.Inside(), d.Square)
}

// Decode data from file in gob format under DataDir
func LoadDataFile(name string) (*Dataset, error) {
	filePath := path.Join(DataDir, name+".dat")
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d := new(Dataset)
	if err = gob.NewDecoder(f).Decode(d); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name+".dat", err)
	}
	fmt.Printf("loaded data from %s.dat: %s\n", name, d)
	return d, nil
}

// Encode in gob format and save to file under DataDir
func SaveDataFile(d *Dataset, name string) error {
	filePath := path.Join(DataDir, name+".dat")
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Println("saving data to", name+".dat")
	return gob.NewEncoder(f).Encode(d)
}

// Check if file exists under DataDir
func FileExists(name string) bool {
	filePath := path.Join(DataDir, name)
	_, err := os.Stat(filePath)
	return err == nil
}

// Set random number seed, or random seed if seed <= 0
func SetSeed(seed int64) *rand.Rand {
	if seed <= 0 {
		seed = time.Now().UTC().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
