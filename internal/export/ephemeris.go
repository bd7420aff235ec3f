package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/orrery/internal/geom"
	"github.com/san-kum/orrery/internal/scene"
)

var ephemerisHeader = []string{"time", "x", "z", "rotation"}

// WriteEphemerisCSV writes one row per sample: time,x,z,rotation.
func WriteEphemerisCSV(w io.Writer, samples []scene.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ephemerisHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			formatFloat(s.Time),
			formatFloat(s.Position.X),
			formatFloat(s.Position.Z),
			formatFloat(s.RotationY),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadEphemerisCSV parses what WriteEphemerisCSV produced.
func ReadEphemerisCSV(r io.Reader) ([]scene.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ephemerisHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ephemeris: missing header")
	}

	samples := make([]scene.Sample, 0, len(records)-1)
	for i, rec := range records[1:] {
		var vals [4]float64
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("ephemeris: row %d column %s: %w", i+1, ephemerisHeader[j], err)
			}
			vals[j] = v
		}
		samples = append(samples, scene.Sample{
			Time:      vals[0],
			Position:  geom.Vec3{X: vals[1], Z: vals[2]},
			RotationY: vals[3],
		})
	}
	return samples, nil
}

// EphemerisData is the JSON form of one body's sampled path.
type EphemerisData struct {
	Body     string      `json:"body"`
	Speed    float64     `json:"speed"`
	Distance float64     `json:"distance"`
	Step     float64     `json:"step"`
	Times    []float64   `json:"times"`
	Points   [][]float64 `json:"points"` // [x, z]
	Rotation []float64   `json:"rotation"`
}

// WriteEphemerisJSON writes the samples of one body with the parameters that
// produced them.
func WriteEphemerisJSON(w io.Writer, g scene.Group, speed, step float64, samples []scene.Sample) error {
	data := EphemerisData{
		Body:     g.Body.ID,
		Speed:    speed,
		Distance: g.Body.Distance,
		Step:     step,
		Times:    make([]float64, len(samples)),
		Points:   make([][]float64, len(samples)),
		Rotation: make([]float64, len(samples)),
	}
	for i, s := range samples {
		data.Times[i] = s.Time
		data.Points[i] = []float64{s.Position.X, s.Position.Z}
		data.Rotation[i] = s.RotationY
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
