/*
 * symmetry.go, part of gothermo.
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
	"math"

	v3 "github.com/rmera/gothermo/v3"
)

//SymmOp is a symmetry operation: a rotation (in cartesian coordinates,
//acting on row vectors) followed by a translation.
type SymmOp struct {
	Rotation    [3][3]float64
	Translation [3]float64
}

//Pure returns true if the operation has no translational part.
func (O SymmOp) Pure() bool {
	for _, v := range O.Translation {
		if math.Abs(v) > appzero {
			return false
		}
	}
	return true
}

//SymmetryAnalyzer is a space-group analysis backend. The package doesn't
//implement symmetry finding itself, any library able to provide these
//operations can be plugged in. Structures returned are new values,
//the argument is never modified.
type SymmetryAnalyzer interface {
	//Refine returns the idealized structure in the standard setting.
	Refine(s *Structure) (*Structure, error)
	//PrimitiveStandard returns the standard primitive cell.
	PrimitiveStandard(s *Structure) (*Structure, error)
	//ConventionalStandard returns the standard conventional cell.
	ConventionalStandard(s *Structure) (*Structure, error)
	//Symmetrized returns the structure with symmetry-equivalent sites made exactly equivalent.
	Symmetrized(s *Structure) (*Structure, error)
	SpaceGroupNumber(s *Structure) (int, error)
	//Operations returns the symmetry operations of s, in cartesian coordinates.
	Operations(s *Structure) ([]SymmOp, error)
}

//Trigonal space groups. These are converted to the hexagonal setting by RefineGeometry.
const (
	firstTrigonal = 143
	lastTrigonal  = 167
)

//RefineGeometry returns the space group number of s, and its symmetrized, primitive
//standard cell. Trigonal groups are given in the conventional (hexagonal) cell instead.
//Only 3D structures can be refined, anything else gives a *DomainError.
func RefineGeometry(s *Structure, analyzer SymmetryAnalyzer) (int, *Structure, error) {
	if d := s.Dimensionality(); d != 3 {
		return 0, nil, &DomainError{"Only 3D structures can be refined", d, []string{"RefineGeometry"}}
	}
	if analyzer == nil {
		return 0, nil, newError("No symmetry analyzer given", "RefineGeometry")
	}
	refined, err := analyzer.Refine(s)
	if err != nil {
		return 0, nil, decorate(err, "RefineGeometry")
	}
	sg, err := analyzer.SpaceGroupNumber(refined)
	if err != nil {
		return 0, nil, decorate(err, "RefineGeometry")
	}
	prim, err := analyzer.PrimitiveStandard(refined)
	if err != nil {
		return 0, nil, decorate(err, "RefineGeometry")
	}
	if sg >= firstTrigonal && sg <= lastTrigonal {
		prim, err = analyzer.ConventionalStandard(prim)
		if err != nil {
			return 0, nil, decorate(err, "RefineGeometry")
		}
	}
	ret, err := analyzer.Symmetrized(prim)
	if err != nil {
		return 0, nil, decorate(err, "RefineGeometry")
	}
	return sg, ret, nil
}

//SymmetryOperations returns the space group number of the refined s, and those
//symmetry operations of the refined structure that carry no translation.
func SymmetryOperations(s *Structure, analyzer SymmetryAnalyzer) (int, []SymmOp, error) {
	if analyzer == nil {
		return 0, nil, newError("No symmetry analyzer given", "SymmetryOperations")
	}
	refined, err := analyzer.Refine(s)
	if err != nil {
		return 0, nil, decorate(err, "SymmetryOperations")
	}
	sg, err := analyzer.SpaceGroupNumber(refined)
	if err != nil {
		return 0, nil, decorate(err, "SymmetryOperations")
	}
	all, err := analyzer.Operations(refined)
	if err != nil {
		return 0, nil, decorate(err, "SymmetryOperations")
	}
	ops := make([]SymmOp, 0, len(all))
	for _, o := range all {
		if o.Pure() {
			ops = append(ops, o)
		}
	}
	return sg, ops, nil
}

//RotateLattice returns a copy of s with the lattice L replaced by L*rot.
//Fractional coordinates are not changed. Useful to bring back geometries
//that were rotated by a symmetry backend to the orientation of a calculation.
func RotateLattice(s *Structure, rot *v3.Matrix) (*Structure, error) {
	if rot == nil || rot.NVecs() != 3 {
		return nil, newError("The rotation matrix must be 3x3", "RotateLattice")
	}
	lat := v3.Zeros(3)
	lat.Mul(s.Lattice, rot)
	ret, err := NewStructure(lat, s.Species, s.Frac, s.PBC)
	if err != nil {
		return nil, decorate(err, "RotateLattice")
	}
	ret.Charge = s.Charge
	return ret, nil
}

//P1 is a SymmetryAnalyzer that finds no symmetry at all: every structure
//is taken to be in space group 1, and the only operation is the identity.
//It is what the command line program uses when no other backend is available.
type P1 struct{}

func (P1) Refine(s *Structure) (*Structure, error)               { return s.Copy(), nil }
func (P1) PrimitiveStandard(s *Structure) (*Structure, error)    { return s.Copy(), nil }
func (P1) ConventionalStandard(s *Structure) (*Structure, error) { return s.Copy(), nil }
func (P1) Symmetrized(s *Structure) (*Structure, error)          { return s.Copy(), nil }
func (P1) SpaceGroupNumber(s *Structure) (int, error)            { return 1, nil }
func (P1) Operations(s *Structure) ([]SymmOp, error) {
	return []SymmOp{{Rotation: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}}, nil
}
