/*
 * harmonic.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package thermo

import (
	"fmt"
	"log"
	"math"

	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Harmonic computes thermodynamic functions from a single harmonic phonon
//calculation, over a grid of temperatures and pressures.
//A Harmonic can only be populated once.
type Harmonic struct {
	energy    float64 //kJ/mol
	volume    float64 //A^3
	qpoints   [][3]float64
	modes     [][]*Mode
	structure *cell.Structure
	temps     []float64
	press     []float64
	populated bool
	results   *Results
}

//NewHarmonic returns a Harmonic built from the electronic energies (kJ/mol, exactly one
//is allowed), the cell volume (A^3), the q-points and the frequencies (THz) of each
//mode at each q-point. If o is nil, the default options are used.
func NewHarmonic(energies []float64, volume float64, qpoints [][3]float64, freqs [][]float64, o *Options) (*Harmonic, error) {
	H := new(Harmonic)
	if err := H.Populate(energies, volume, qpoints, freqs, o); err != nil {
		return nil, err
	}
	return H, nil
}

//FromOutput returns a Harmonic built from the data in out. See Harmonic.PopulateFromOutput.
func FromOutput(out Output, o *Options) (*Harmonic, error) {
	H := new(Harmonic)
	if err := H.PopulateFromOutput(out, o); err != nil {
		return nil, err
	}
	return H, nil
}

//Populate fills H with the given data. It fails if H already has data.
func (H *Harmonic) Populate(energies []float64, volume float64, qpoints [][3]float64, freqs [][]float64, o *Options) error {
	return H.populate(energies, volume, qpoints, freqs, nil, nil, o, "Populate")
}

//PopulateFromOutput fills H with the data in out. Imaginary frequencies are discarded.
//If a supercell matrix is set in o, the primitive cell is recovered from the calculation
//cell, and refined if requested. The cell volume is taken from that structure.
func (H *Harmonic) PopulateFromOutput(out Output, o *Options) error {
	const caller = "PopulateFromOutput"
	if H.populated {
		return newUsageError("data exists, can't overwrite it", caller)
	}
	if o == nil {
		o = DefaultOptions()
	}
	energies, err := out.Energies()
	if err != nil {
		return decorate(err, caller)
	}
	qpoints, err := out.QPoints()
	if err != nil {
		return decorate(err, caller)
	}
	freqs, err := out.Frequencies()
	if err != nil {
		return decorate(err, caller)
	}
	eigvecs, err := out.Eigenvectors()
	if err != nil {
		return decorate(err, caller)
	}
	s, err := out.Structure()
	if err != nil {
		return decorate(err, caller)
	}
	if s == nil {
		return newUsageError("the output has no structure", caller)
	}
	imaginary := 0
	clean := make([][]float64, len(freqs))
	for q, row := range freqs {
		clean[q] = append([]float64(nil), row...)
		for i, f := range row {
			if f < 0 {
				clean[q][i] = math.NaN()
				imaginary++
			}
		}
	}
	if imaginary > 0 {
		log.Printf("%s: %d imaginary frequencies will be ignored", caller, imaginary)
	}
	if smx := o.Supercell(); smx != cell.Identity {
		s, err = cell.ReduceToPrimitive(s, smx)
		if err != nil {
			return decorate(err, caller)
		}
	}
	if o.Refine() {
		var sg int
		sg, s, err = cell.RefineGeometry(s, o.Analyzer())
		if err != nil {
			return decorate(err, caller)
		}
		log.Printf("%s: refined structure, space group %d", caller, sg)
	}
	return H.populate(energies, s.Volume(), qpoints, clean, eigvecs, s, o, caller)
}

func (H *Harmonic) populate(energies []float64, volume float64, qpoints [][3]float64, freqs [][]float64, eigvecs [][]*v3.Matrix, s *cell.Structure, o *Options, caller string) error {
	if H.populated {
		return newUsageError("data exists, can't overwrite it", caller)
	}
	if o == nil {
		o = DefaultOptions()
	}
	if len(energies) != 1 {
		return newUsageError(fmt.Sprintf("only a single-state calculation is permitted, got %d energies", len(energies)), caller)
	}
	if len(qpoints) == 0 || len(freqs) != len(qpoints) {
		return newUsageError(fmt.Sprintf("%d q-points but frequencies for %d", len(qpoints), len(freqs)), caller)
	}
	if eigvecs != nil && len(eigvecs) != len(qpoints) {
		return newUsageError(fmt.Sprintf("%d q-points but eigenvectors for %d", len(qpoints), len(eigvecs)), caller)
	}
	modes := make([][]*Mode, len(freqs))
	for q, row := range freqs {
		if eigvecs != nil && len(eigvecs[q]) != len(row) {
			return newUsageError(fmt.Sprintf("qpoint %d: %d frequencies but %d eigenvectors", q, len(row), len(eigvecs[q])), caller)
		}
		modes[q] = make([]*Mode, len(row))
		for m, f := range row {
			var ev []*v3.Matrix
			if eigvecs != nil {
				ev = append(ev, eigvecs[q][m])
			}
			modes[q][m] = NewMode(m+1, []float64{f}, []float64{volume}, ev...)
		}
	}
	H.energy = energies[0]
	H.volume = volume
	H.qpoints = append([][3]float64(nil), qpoints...)
	H.modes = modes
	H.structure = s
	H.temps = o.Temperatures()
	H.press = o.Pressures()
	H.populated = true
	return nil
}

//Energy returns the electronic energy of the cell, in kJ/mol.
func (H *Harmonic) Energy() float64 { return H.energy }

//Volume returns the cell volume in A^3.
func (H *Harmonic) Volume() float64 { return H.volume }

//Structure returns the (primitive) cell used, or nil if the Harmonic was
//populated manually.
func (H *Harmonic) Structure() *cell.Structure { return H.structure }

//Temperatures returns a copy of the temperatures (K) of the grid.
func (H *Harmonic) Temperatures() []float64 { return append([]float64(nil), H.temps...) }

//Pressures returns a copy of the pressures (GPa) of the grid.
func (H *Harmonic) Pressures() []float64 { return append([]float64(nil), H.press...) }

//NQPoints returns the number of q-points with data.
func (H *Harmonic) NQPoints() int { return len(H.qpoints) }

//Modes returns the modes, indexed by q-point and rank-1. The slices are copies,
//the modes themselves are shared with H.
func (H *Harmonic) Modes() [][]*Mode {
	ret := make([][]*Mode, len(H.modes))
	for q, v := range H.modes {
		ret[q] = append([]*Mode(nil), v...)
	}
	return ret
}

//Thermodynamics computes the zero-point energy, and the internal energy, entropy, heat
//capacity and Helmholtz free energy at each temperature of the grid, plus the Gibbs free
//energy at each temperature and pressure. If summed is true, the contributions of all the
//q-points are summed, and the results are given for one q-point at the origin.
//Each call replaces the previous results.
func (H *Harmonic) Thermodynamics(summed bool) (*Results, error) {
	if !H.populated {
		return nil, newUsageError("no data to compute thermodynamics from", "Thermodynamics")
	}
	zp, err := SumZeroPoint(H.modes)
	if err != nil {
		return nil, decorate(err, "Thermodynamics")
	}
	nq, nt, np := len(H.modes), len(H.temps), len(H.press)
	U := mat.NewDense(nq, nt, nil)
	S := mat.NewDense(nq, nt, nil)
	Cv := mat.NewDense(nq, nt, nil)
	A := mat.NewDense(nq, nt, nil)
	G := make([]*mat.Dense, nq)
	for q := range G {
		G[q] = mat.NewDense(nt, np, nil)
	}
	for t, T := range H.temps {
		u, s, cv, err := SumAtTemperature(H.modes, T)
		if err != nil {
			return nil, decorate(err, "Thermodynamics")
		}
		for q := 0; q < nq; q++ {
			helm := u[q] - T*s[q]/1000 + H.energy
			U.Set(q, t, u[q])
			S.Set(q, t, s[q])
			Cv.Set(q, t, cv[q])
			A.Set(q, t, helm)
			for p, P := range H.press {
				G[q].Set(t, p, P*H.volume*GPaA32KJmol+helm)
			}
		}
	}
	R := &Results{
		QPoints:      append([][3]float64(nil), H.qpoints...),
		Temperatures: append([]float64(nil), H.temps...),
		Pressures:    append([]float64(nil), H.press...),
		ZeroPoint:    zp,
		U:            U,
		S:            S,
		Cv:           Cv,
		A:            A,
		G:            G,
	}
	if summed {
		R.sumQPoints()
	}
	H.results = R
	return R, nil
}

//Results returns the last results computed by Thermodynamics.
func (H *Harmonic) Results() (*Results, error) {
	if H.results == nil {
		return nil, newUsageError("thermodynamics have not been computed", "Results")
	}
	return H.results, nil
}

//sumQPoints replaces every quantity in R by its sum over q-points.
func (R *Results) sumQPoints() {
	R.QPoints = [][3]float64{{0, 0, 0}}
	R.ZeroPoint = []float64{floats.Sum(R.ZeroPoint)}
	R.U = sumRows(R.U)
	R.S = sumRows(R.S)
	R.Cv = sumRows(R.Cv)
	R.A = sumRows(R.A)
	r, c := R.G[0].Dims()
	g := mat.NewDense(r, c, nil)
	for _, v := range R.G {
		g.Add(g, v)
	}
	R.G = []*mat.Dense{g}
}

//sumRows returns a 1-row matrix with the column sums of D.
func sumRows(D *mat.Dense) *mat.Dense {
	_, c := D.Dims()
	ret := mat.NewDense(1, c, nil)
	for j := 0; j < c; j++ {
		ret.Set(0, j, floats.Sum(mat.Col(nil, j, D)))
	}
	return ret
}
