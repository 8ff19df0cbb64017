/*
 * supercell.go, part of gothermo.
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
	"log"
	"math"

	v3 "github.com/rmera/gothermo/v3"
)

//Fractional coordinates are rounded to this many decimal places
//before any containment test, to absorb floating point noise.
const roundDecimals = 12

//Identity is the trivial expansion matrix.
var Identity = [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

//expansion returns the expansion matrix actually applied to a structure with
//periodicity pbc: smx for the periodic block, identity for the rest, so
//non-periodic lattice vectors are never replicated.
func expansion(smx [3][3]int, pbc [3]bool) *v3.Matrix {
	M := v3.Eye()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if pbc[i] && pbc[j] {
				M.Set(i, j, float64(smx[i][j]))
			}
		}
	}
	return M
}

func round(f float64) float64 {
	p := math.Pow(10, roundDecimals)
	return math.Round(f*p) / p
}

//wrap brings a fractional coordinate to [0,1). The rounded value decides
//the image, but the precision of f is kept.
func wrap(f float64) float64 {
	return f - math.Floor(round(f))
}

//translationRange returns, for each dimension, the smallest and largest
//lattice translation (in units of the primitive vectors) that can land a
//site, wrapped to [0,1) in the primitive cell, inside the supercell spanned by M.
func translationRange(M *v3.Matrix, pbc [3]bool) (lo, hi [3]int) {
	for d := 0; d < 3; d++ {
		if !pbc[d] {
			continue
		}
		min, max := 0.0, 0.0
		for corner := 0; corner < 8; corner++ {
			var c float64
			for k := 0; k < 3; k++ {
				if corner&(1<<uint(k)) != 0 {
					c += M.At(k, d)
				}
			}
			min = math.Min(min, c)
			max = math.Max(max, c)
		}
		lo[d] = int(math.Floor(min)) - 1
		hi[d] = int(math.Ceil(max)) + 1
	}
	return lo, hi
}

//ExpandToSupercell applies the integer expansion matrix smx to the structure s.
//The supercell lattice is smx times the lattice of s, and every site is replicated
//over the lattice translations that fall within the supercell. Rows and columns of
//smx corresponding to non-periodic directions are ignored (taken from the identity).
//The origin of the returned supercell is shifted to its geometric center, so
//periodic fractional coordinates lie in [-0.5,0.5).
func ExpandToSupercell(s *Structure, smx [3][3]int) (*Structure, error) {
	M := expansion(smx, s.PBC)
	det := math.Round(math.Abs(v3.Det3(M)))
	if det < 1 {
		return nil, newError(fmt.Sprintf("Singular expansion matrix %v", smx), "ExpandToSupercell")
	}
	Minv, err := v3.Inverse3(M)
	if err != nil {
		return nil, newError(err.Error(), "ExpandToSupercell")
	}
	slat := v3.Zeros(3)
	slat.Mul(M, s.Lattice)
	lo, hi := translationRange(M, s.PBC)

	expected := s.Len() * int(det)
	species := make([]int, 0, expected)
	coords := make([]float64, 0, 3*expected)
	p := v3.Zeros(1)
	sf := v3.Zeros(1)
	for i, z := range s.Species {
		var f [3]float64
		for d := 0; d < 3; d++ {
			f[d] = s.Frac.At(i, d)
			if s.PBC[d] {
				f[d] = wrap(f[d])
			}
		}
		for n0 := lo[0]; n0 <= hi[0]; n0++ {
			for n1 := lo[1]; n1 <= hi[1]; n1++ {
				for n2 := lo[2]; n2 <= hi[2]; n2++ {
					p.Set(0, 0, f[0]+float64(n0))
					p.Set(0, 1, f[1]+float64(n1))
					p.Set(0, 2, f[2]+float64(n2))
					sf.Mul(p, Minv)
					inside := true
					for d := 0; d < 3; d++ {
						if !s.PBC[d] {
							continue
						}
						if r := round(sf.At(0, d)); r >= 1 || r < 0 {
							inside = false
							break
						}
					}
					if !inside {
						continue
					}
					//Shifting the cartesian origin by -0.5 times each periodic
					//supercell vector is the same as this.
					for d := 0; d < 3; d++ {
						v := sf.At(0, d)
						if s.PBC[d] {
							v -= 0.5
						}
						coords = append(coords, v)
					}
					species = append(species, z)
				}
			}
		}
	}
	if len(species) != expected {
		log.Printf("ExpandToSupercell: %d sites generated, %d expected. Sites in the original structure might overlap", len(species), expected)
	}
	frac, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, newError(err.Error(), "ExpandToSupercell")
	}
	ret, err := NewStructure(slat, species, frac, s.PBC)
	if err != nil {
		return nil, decorate(err, "ExpandToSupercell")
	}
	ret.Charge = s.Charge * int(det)
	return ret, nil
}

//ReduceToPrimitive recovers the primitive cell from the supercell s, built with the
//expansion matrix smx. The origin of the primitive cell is placed at the geometric
//center of the supercell, and only the sites whose periodic fractional coordinates
//(rounded to 12 decimal places) lie in [-0.5,0.5) are kept, the rest being periodic
//images. Non-periodic lattice vectors are kept unchanged.
func ReduceToPrimitive(s *Structure, smx [3][3]int) (*Structure, error) {
	M := expansion(smx, s.PBC)
	shrink, err := v3.Inverse3(M)
	if err != nil {
		return nil, newError(fmt.Sprintf("Can't invert expansion matrix %v: %s", smx, err.Error()), "ReduceToPrimitive")
	}
	//Put the origin at the cell corner, with all periodic fractional coordinates in [0,1)
	wrapped := s.Frac.Clone()
	for i := 0; i < s.Len(); i++ {
		for d := 0; d < 3; d++ {
			if !s.PBC[d] {
				continue
			}
			wrapped.Set(i, d, wrap(wrapped.At(i, d)))
		}
	}
	cart := v3.Zeros(s.Len())
	cart.Mul(wrapped, s.Lattice)
	//Now we move the origin to the geometric center of the supercell.
	shift := v3.Zeros(1)
	for d := 0; d < 3; d++ {
		if !s.PBC[d] {
			continue
		}
		for k := 0; k < 3; k++ {
			shift.Set(0, k, shift.At(0, k)+0.5*s.Lattice.At(d, k))
		}
	}
	cart.SubVec(cart, shift)

	plat := v3.Zeros(3)
	plat.Mul(shrink, s.Lattice)
	pfrac, err := cart2Frac(cart, plat)
	if err != nil {
		return nil, decorate(err, "ReduceToPrimitive")
	}
	species := make([]int, 0, s.Len())
	coords := make([]float64, 0, 3*s.Len())
	for i, z := range s.Species {
		var c [3]float64
		inside := true
		for d := 0; d < 3; d++ {
			c[d] = round(pfrac.At(i, d))
			if s.PBC[d] && (c[d] >= 0.5 || c[d] < -0.5) {
				inside = false
				break
			}
		}
		if !inside {
			continue
		}
		species = append(species, z)
		coords = append(coords, c[:]...)
	}
	if len(species) == 0 {
		return nil, newError("No sites left in the primitive cell", "ReduceToPrimitive")
	}
	if det := math.Round(math.Abs(v3.Det3(M))); s.Len() != len(species)*int(det) {
		log.Printf("ReduceToPrimitive: %d sites in the supercell, %d in the primitive cell, for an expansion of %d. The supercell might be incomplete", s.Len(), len(species), int(det))
	}
	frac, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, newError(err.Error(), "ReduceToPrimitive")
	}
	ret, err := NewStructure(plat, species, frac, s.PBC)
	if err != nil {
		return nil, decorate(err, "ReduceToPrimitive")
	}
	ret.Charge = s.Charge * len(species) / s.Len()
	return ret, nil
}
