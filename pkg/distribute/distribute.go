// Package distribute maps a small inventory of items onto a larger (or
// smaller) number of output slots.
//
// Every function takes (outputIndex, inputSize, outputSize) and returns the
// input index to use for that output slot. All three are pure.
//
// [Proportional] spreads the inputs evenly. [BottomPreferred] and
// [TopPreferred] also spread evenly but decide who gets the leftover slots:
// when up-sampling, BottomPreferred gives one extra repetition to the last
// inputs and TopPreferred to the first ones; when down-sampling,
// BottomPreferred drops the lowest inputs first and TopPreferred the highest.
//
// The two biased variants are mirror images for every valid argument:
//
//	TopPreferred(i, n, m) == n-1 - BottomPreferred(m-1-i, n, m)
package distribute

import (
	"github.com/vnalla55/farebrand/pkg/errors"
)

// Func is the common signature of the distribution functions.
type Func func(outputIndex, inputSize, outputSize int) (int, error)

func validate(outputIndex, inputSize, outputSize int) error {
	if inputSize <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "input size must be positive, got %d", inputSize)
	}
	if outputSize <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "output size must be positive, got %d", outputSize)
	}
	if outputIndex < 0 || outputIndex >= outputSize {
		return errors.New(errors.ErrCodeInvalidArgument, "output index %d out of range [0,%d)", outputIndex, outputSize)
	}
	return nil
}

// Proportional returns floor(outputIndex * inputSize / outputSize).
//
// With inputSize <= outputSize the result is non-decreasing in outputIndex
// and hits every input index at least once.
func Proportional(outputIndex, inputSize, outputSize int) (int, error) {
	if err := validate(outputIndex, inputSize, outputSize); err != nil {
		return 0, err
	}
	return proportional(outputIndex, inputSize, outputSize), nil
}

func proportional(i, n, m int) int {
	return i * n / m
}

// BottomPreferred distributes like Proportional but favours the last
// inputs. When up-sampling and outputSize is not a multiple of inputSize,
// the last outputSize%inputSize inputs get one extra repetition. When
// down-sampling, the lowest inputs are the ones dropped.
func BottomPreferred(outputIndex, inputSize, outputSize int) (int, error) {
	if err := validate(outputIndex, inputSize, outputSize); err != nil {
		return 0, err
	}
	return bottomPreferred(outputIndex, inputSize, outputSize), nil
}

func bottomPreferred(i, n, m int) int {
	if n > m {
		// Down-sampling is the mirror of proportional, which keeps input 0.
		return n - 1 - proportional(m-1-i, n, m)
	}
	q, r := m/n, m%n
	if r == 0 {
		return proportional(i, n, m)
	}
	// The first n-r inputs repeat q times; the remaining r repeat q+1 times.
	normal := (n - r) * q
	if i < normal {
		return i / q
	}
	return (n - r) + bottomPreferred(i-normal, r, m-normal)
}

// TopPreferred is the mirror of BottomPreferred: it favours the first
// inputs when up-sampling and drops the highest ones when down-sampling.
func TopPreferred(outputIndex, inputSize, outputSize int) (int, error) {
	if err := validate(outputIndex, inputSize, outputSize); err != nil {
		return 0, err
	}
	return topPreferred(outputIndex, inputSize, outputSize), nil
}

func topPreferred(i, n, m int) int {
	return (n - 1) - bottomPreferred(m-1-i, n, m)
}
