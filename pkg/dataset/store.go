package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	TrainFile      = "dementia_train_split.json"
	ValidationFile = "dementia_validation_split.json"
	TestFile       = "dementia_test_multilang.json"
)

// Save writes records as an indented JSON array. HTML escaping is off so
// accented and markup characters are written literally.
func Save(path string, records []Example) error {
	if records == nil {
		records = []Example{}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return file.Close()
}

func Load(path string) ([]Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []Example
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", path, err)
	}
	return records, nil
}

// SaveSplits writes the three split artifacts into dir, creating it if needed.
func SaveSplits(dir string, splits Splits) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	for name, records := range map[string][]Example{
		TrainFile:      splits.Train,
		ValidationFile: splits.Validation,
		TestFile:       splits.Test,
	} {
		if err := Save(filepath.Join(dir, name), records); err != nil {
			return err
		}
	}
	return nil
}

func LoadSplits(dir string) (Splits, error) {
	var (
		splits Splits
		err    error
	)
	if splits.Train, err = Load(filepath.Join(dir, TrainFile)); err != nil {
		return Splits{}, err
	}
	if splits.Validation, err = Load(filepath.Join(dir, ValidationFile)); err != nil {
		return Splits{}, err
	}
	if splits.Test, err = Load(filepath.Join(dir, TestFile)); err != nil {
		return Splits{}, err
	}
	return splits, nil
}
