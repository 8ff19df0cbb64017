/*
 * gonum.go, part of gothermo.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gonum.go contains most of what is needed for handling the gonum/mat types and facilities.

//All the *Vec functions will operate/produce row vectors, as the underlying Dense is row major.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian (or fractional) coordinates
//of a point in 3D space, or one lattice vector.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//VecView returns a view of the given vector of the matrix. Changes in the view are
//reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Mul Wrapps mat.Dense.Mul to take care of the case when one of the
//arguments is a Matrix. The mat function could not know that internally
//F.Dense==A.Dense, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if D, ok := B.(*Matrix); ok {
		B = D.Dense
	}
	F.Dense.Mul(A, B)
}

//Copy puts a copy of A in the receiver. A and the receiver must have the same dimensions.
func (F *Matrix) Copy(A mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	F.Dense.Copy(A)
}

//Clone returns a copy of F that shares no memory with it.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//Det3 returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det3(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//Inverse3 returns the inverse of the 3x3 matrix A, or an error if A is singular
//or not 3x3.
func Inverse3(A *Matrix) (*Matrix, error) {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		return nil, Error{string(ErrDeterminant), []string{"Inverse3"}, true}
	}
	if math.Abs(Det3(A)) <= appzero {
		return nil, Error{"Singular matrix can't be inverted", []string{"Inverse3"}, true}
	}
	ret := Zeros(3)
	if err := ret.Dense.Inverse(A.Dense); err != nil {
		return nil, Error{fmt.Sprintf("%s: %s", ErrGonum, err.Error()), []string{"Inverse3"}, true}
	}
	return ret, nil
}

//Errors

//Error satisfies the thermo.Error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("gothermo/v3: A Matrix should have 3 columns")
	ErrGonum        = PanicMsg("gothermo/v3: Error in gonum function")
	ErrDeterminant  = PanicMsg("gothermo/v3: Determinants are only available for 3x3 matrices")
	ErrShape        = PanicMsg("gothermo/v3: Dimension mismatch")
)
