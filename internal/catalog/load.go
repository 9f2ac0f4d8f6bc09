package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/3loulou/phone-purchase-referee/internal/models"
)

// Load reads a snapshot from a YAML, JSON, or CSV file. A trailing .zst
// extension selects transparent zstd decompression of the inner format.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	name := path
	if strings.HasSuffix(name, ".zst") {
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
		name = strings.TrimSuffix(name, ".zst")
	}

	switch ext := filepath.Ext(name); ext {
	case ".yaml", ".yml", ".json":
		return parseDocument(data)
	case ".csv":
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml, .yml, .json, or .csv)", ext)
	}
}

// parseDocument handles the YAML/JSON document form. YAML is a superset
// of JSON, so one decoder covers both. The document is schema-validated
// first so malformed files report field-level errors instead of a partial
// decode.
func parseDocument(data []byte) (*Snapshot, error) {
	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("catalog failed schema validation:\n  %s", strings.Join(errs, "\n  "))
	}

	var doc Snapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Version, doc.Items)
}

// csvRecord is the flat row shape of a CSV catalog. Values arrive as
// strings; mapstructure's weak typing converts them into numbers and
// booleans.
type csvRecord struct {
	ID             string   `mapstructure:"id"`
	Name           string   `mapstructure:"name"`
	Price          float64  `mapstructure:"price"`
	Region         string   `mapstructure:"region"`
	Availability   string   `mapstructure:"availability"`
	Has5G          bool     `mapstructure:"has_5g"`
	BatteryMAh     *float64 `mapstructure:"battery_mah"`
	CameraMP       *float64 `mapstructure:"camera_mp"`
	ScreenInches   *float64 `mapstructure:"screen_inches"`
	StorageGB      *float64 `mapstructure:"storage_gb"`
	WeightGrams    *float64 `mapstructure:"weight_grams"`
	BenchmarkScore *float64 `mapstructure:"benchmark_score"`
}

func parseCSV(data []byte) (*Snapshot, error) {
	rows, err := readCSVRows(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(rows))
	for i, row := range rows {
		// Empty cells mean "no data"; dropping them keeps the optional
		// pointer fields nil instead of zero.
		for k, v := range row {
			if strings.TrimSpace(v) == "" {
				delete(row, k)
			}
		}

		var rec csvRecord
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &rec,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		})
		if err != nil {
			return nil, fmt.Errorf("building csv decoder: %w", err)
		}
		if err := dec.Decode(row); err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+2, err)
		}

		items = append(items, models.Item{
			ID:           rec.ID,
			Name:         rec.Name,
			PriceUSD:     rec.Price,
			Availability: models.Availability(rec.Availability),
			Region:       rec.Region,
			Specs: models.SpecSheet{
				Has5G:          rec.Has5G,
				BatteryMAh:     rec.BatteryMAh,
				CameraMP:       rec.CameraMP,
				ScreenInches:   rec.ScreenInches,
				StorageGB:      rec.StorageGB,
				WeightGrams:    rec.WeightGrams,
				BenchmarkScore: rec.BenchmarkScore,
			},
		})
	}

	// CSV files carry no version field; the content hash identifies them.
	return New("", items)
}

func decompress(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
