// SPDX-License-Identifier: MIT
//
// Purpose:
//  - One place for the structural checks every distance matrix must pass.
//  - Return sentinel errors wrapped with the offending cell so callers can
//    match with errors.Is and still print a useful message.

package distance

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by Validate for parsed input.
const DefaultEpsilon = 1e-9

// validatorErrorf tags a sentinel with the validator name and cell.
func validatorErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateValues ensures every entry is finite and non-negative.
// Complexity: O(n²).
func ValidateValues(m *Matrix) error {
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return validatorErrorf("ValidateValues", idx/m.n, idx%m.n, ErrBadValue)
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures |D[i][i]| <= eps for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Matrix, eps float64) error {
	for i := 0; i < m.n; i++ {
		if math.Abs(m.data[i*m.n+i]) > eps {
			return validatorErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures |D[i][j] - D[j][i]| <= eps, scanning the upper triangle only.
// Complexity: O(n²).
func ValidateSymmetric(m *Matrix, eps float64) error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.Abs(m.data[i*m.n+j]-m.data[j*m.n+i]) > eps {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// Validate runs ValidateValues → ValidateZeroDiagonal → ValidateSymmetric.
func Validate(m *Matrix, eps float64) error {
	if err := ValidateValues(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, eps); err != nil {
		return err
	}

	return ValidateSymmetric(m, eps)
}
