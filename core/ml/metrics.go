package ml

import "github.com/pkg/errors"

// Accuracy is the share of predictions equal to the true labels.
func Accuracy(yTrue, yPred []Label) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.Wrapf(ErrShapeMismatch, "%d labels but %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return 0, nil
	}
	hit := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hit++
		}
	}
	return float64(hit) / float64(len(yTrue)), nil
}
