/*
 * structure.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rmeraatusachdotcl>
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
 *
 * */

package cell

import (
	"fmt"
	"math"
	"strings"

	v3 "github.com/rmera/gothermo/v3"
)

//Structure is a periodic (or partially periodic) crystal structure.
type Structure struct {
	Lattice *v3.Matrix //one lattice vector (a, b, c) per row, in A
	Species []int      //atomic numbers
	Frac    *v3.Matrix //fractional coordinates, one site per row
	PBC     [3]bool    //periodicity along a, b and c
	Charge  int
}

//NewStructure returns a structure with the given lattice, species and fractional
//coordinates. The lattice and coordinates are copied.
func NewStructure(lattice *v3.Matrix, species []int, frac *v3.Matrix, pbc [3]bool) (*Structure, error) {
	if err := checkLattice(lattice, "NewStructure"); err != nil {
		return nil, err
	}
	if len(species) == 0 || frac == nil || frac.NVecs() != len(species) {
		return nil, newError(fmt.Sprintf("%d species given for %d sites", len(species), nvecs(frac)), "NewStructure")
	}
	S := new(Structure)
	S.Lattice = lattice.Clone()
	S.Frac = frac.Clone()
	S.Species = append([]int(nil), species...)
	S.PBC = pbc
	return S, nil
}

//NewStructureCart is like NewStructure, but takes cartesian coordinates (A).
func NewStructureCart(lattice *v3.Matrix, species []int, cart *v3.Matrix, pbc [3]bool) (*Structure, error) {
	if err := checkLattice(lattice, "NewStructureCart"); err != nil {
		return nil, err
	}
	if len(species) == 0 || cart == nil || cart.NVecs() != len(species) {
		return nil, newError(fmt.Sprintf("%d species given for %d sites", len(species), nvecs(cart)), "NewStructureCart")
	}
	frac, err := cart2Frac(cart, lattice)
	if err != nil {
		return nil, decorate(err, "NewStructureCart")
	}
	S := new(Structure)
	S.Lattice = lattice.Clone()
	S.Frac = frac
	S.Species = append([]int(nil), species...)
	S.PBC = pbc
	return S, nil
}

func nvecs(A *v3.Matrix) int {
	if A == nil {
		return 0
	}
	return A.NVecs()
}

func checkLattice(lattice *v3.Matrix, caller string) error {
	if lattice == nil || lattice.NVecs() != 3 {
		return newError("The lattice must have exactly 3 vectors", caller)
	}
	if math.Abs(v3.Det3(lattice)) <= appzero {
		return newError("The lattice vectors are linearly dependent", caller)
	}
	return nil
}

//Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.Species)
}

//Dimensionality returns the number of periodic directions.
func (S *Structure) Dimensionality() int {
	n := 0
	for _, v := range S.PBC {
		if v {
			n++
		}
	}
	return n
}

//Cart returns the cartesian coordinates of the sites.
func (S *Structure) Cart() *v3.Matrix {
	ret := v3.Zeros(S.Len())
	ret.Mul(S.Frac, S.Lattice)
	return ret
}

//Volume returns the volume of the cell in A^3. For low-dimensional systems
//the non-periodic vectors are included as they are.
func (S *Structure) Volume() float64 {
	return math.Abs(v3.Det3(S.Lattice))
}

//Parameters returns the lattice parameters a, b, c (A) and alpha, beta, gamma (degrees).
func (S *Structure) Parameters() [6]float64 {
	var ret [6]float64
	a := S.Lattice.VecView(0)
	b := S.Lattice.VecView(1)
	c := S.Lattice.VecView(2)
	ret[0] = a.Norm()
	ret[1] = b.Norm()
	ret[2] = c.Norm()
	ret[3] = angle(b, c)
	ret[4] = angle(a, c)
	ret[5] = angle(a, b)
	return ret
}

//the angle in degrees between the first vectors of v1 and v2.
func angle(v1, v2 *v3.Matrix) float64 {
	cos := v1.Dot(v2) / (v1.Norm() * v2.Norm())
	//floating point noise can take us slightly outside [-1,1]
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	ret := new(Structure)
	ret.Lattice = S.Lattice.Clone()
	if S.Frac != nil {
		ret.Frac = S.Frac.Clone()
	}
	ret.Species = append([]int(nil), S.Species...)
	ret.PBC = S.PBC
	ret.Charge = S.Charge
	return ret
}

//String returns a short, human-readable description of the structure.
func (S *Structure) String() string {
	p := S.Parameters()
	ret := make([]string, 0, S.Len()+2)
	ret = append(ret, fmt.Sprintf("Lattice (%d-D): a=%.4f b=%.4f c=%.4f alpha=%.4f beta=%.4f gamma=%.4f", S.Dimensionality(), p[0], p[1], p[2], p[3], p[4], p[5]))
	for i, z := range S.Species {
		ret = append(ret, fmt.Sprintf("%-3s %12.8f %12.8f %12.8f", Symbol(z), S.Frac.At(i, 0), S.Frac.At(i, 1), S.Frac.At(i, 2)))
	}
	return strings.Join(ret, "\n")
}

func cart2Frac(cart, lattice *v3.Matrix) (*v3.Matrix, error) {
	inv, err := v3.Inverse3(lattice)
	if err != nil {
		return nil, newError(err.Error(), "cart2Frac")
	}
	frac := v3.Zeros(cart.NVecs())
	frac.Mul(cart, inv)
	return frac, nil
}
