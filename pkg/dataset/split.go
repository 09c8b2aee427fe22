package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// Cumulative cut points: train ends at 70% of the records, validation at 90%.
const (
	TrainCut      = 0.7
	ValidationCut = 0.9
)

type Splits struct {
	Train      []Example
	Validation []Example
	Test       []Example
}

func (s Splits) Len() int {
	return len(s.Train) + len(s.Validation) + len(s.Test)
}

// Split partitions records by position into train, validation and test at
// the default cut points. The caller shuffles first.
func Split(records []Example) Splits {
	splits, _ := SplitAt(records, TrainCut, ValidationCut)
	return splits
}

// SplitAt cuts records at floor(trainCut*N) and floor(validationCut*N). The
// returned slices share the backing array of records.
func SplitAt(records []Example, trainCut, validationCut float64) (Splits, error) {
	if !validCut(trainCut) || !validCut(validationCut) || trainCut > validationCut {
		return Splits{}, errors.Wrapf(ErrInvalidArgument, "split cut points train=%v validation=%v", trainCut, validationCut)
	}

	n := len(records)
	trainEnd := boundary(trainCut, n)
	validationEnd := boundary(validationCut, n)

	return Splits{
		Train:      records[:trainEnd:trainEnd],
		Validation: records[trainEnd:validationEnd:validationEnd],
		Test:       records[validationEnd:],
	}, nil
}

func validCut(c float64) bool {
	return !math.IsNaN(c) && c >= 0 && c <= 1
}

func boundary(cut float64, n int) int {
	return min(int(math.Floor(cut*float64(n))), n)
}
