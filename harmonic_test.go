/*
 * harmonic_test.go, part of gothermo.
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
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func scenario(Te *testing.T) *Harmonic {
	o := DefaultOptions()
	o.Temperatures(0, 100, 298.15)
	o.Pressures(0, 1)
	H, err := NewHarmonic([]float64{-100}, 50, [][3]float64{{0, 0, 0}}, [][]float64{{0, 5, 10}}, o)
	if err != nil {
		Te.Fatal(err)
	}
	return H
}

func TestScenario(Te *testing.T) {
	H := scenario(Te)
	R, err := H.Thermodynamics(false)
	if err != nil {
		Te.Fatal(err)
	}
	z5, _ := NewMode(2, []float64{5}, nil).ZeroPointEnergy()
	z10, _ := NewMode(3, []float64{10}, nil).ZeroPointEnergy()
	if R.NQPoints() != 1 || !scalar.EqualWithinAbsOrRel(R.ZeroPoint[0], z5+z10, 1e-12, 1e-12) {
		Te.Errorf("The 0 THz mode should be excluded. ZPE %f, expected %f", R.ZeroPoint[0], z5+z10)
	}
	if a := R.Helmholtz(0, 0); !scalar.EqualWithinAbsOrRel(a, z5+z10-100, 1e-10, 1e-12) {
		Te.Errorf("A(0 K) should be ZPE+E. Got %f, expected %f", a, z5+z10-100)
	}
	for t, T := range H.Temperatures() {
		a := R.Helmholtz(0, t)
		if R.Gibbs(0, t, 0) != a {
			Te.Errorf("G(P=0) should be A at %f K: %f %f", T, R.Gibbs(0, t, 0), a)
		}
		if g := R.Gibbs(0, t, 1); !scalar.EqualWithinAbsOrRel(g, a+50*GPaA32KJmol, 1e-10, 1e-12) {
			Te.Errorf("Wrong G(P=1) at %f K: %f", T, g)
		}
		expected := R.InternalEnergy(0, t) - T*R.Entropy(0, t)/1000 - 100
		if !scalar.EqualWithinAbsOrRel(a, expected, 1e-10, 1e-12) {
			Te.Errorf("A should be U-TS+E at %f K. Got %f, expected %f", T, a, expected)
		}
	}
	if R.HeatCapacity(0, 2) <= R.HeatCapacity(0, 1) {
		Te.Errorf("Cv should grow with T: %v", R.Cv)
	}
	if _, err := json.Marshal(R); err != nil {
		Te.Error(err)
	}
}

func TestSummed(Te *testing.T) {
	o := DefaultOptions()
	o.Temperatures(10, 300)
	o.Pressures(0, 2, 5)
	qp := [][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.5, 0.5, 0.5}}
	freqs := [][]float64{{0, 0, 0, 4, 8}, {1, 2, 3, 5, 9}, {1.5, 2.5, 3.5, 6, 7}}
	H, err := NewHarmonic([]float64{-1000}, 40, qp, freqs, o)
	if err != nil {
		Te.Fatal(err)
	}
	full, err := H.Thermodynamics(false)
	if err != nil {
		Te.Fatal(err)
	}
	if full.NQPoints() != 3 || len(full.G) != 3 {
		Te.Fatalf("Expected 3 q-points, got %d", full.NQPoints())
	}
	sum, err := H.Thermodynamics(true)
	if err != nil {
		Te.Fatal(err)
	}
	if sum.NQPoints() != 1 || sum.QPoints[0] != [3]float64{0, 0, 0} {
		Te.Errorf("Summed results should have a single q-point at the origin: %v", sum.QPoints)
	}
	if !scalar.EqualWithinAbsOrRel(sum.ZeroPoint[0], floats.Sum(full.ZeroPoint), 1e-10, 1e-12) {
		Te.Errorf("Wrong summed ZPE %f", sum.ZeroPoint[0])
	}
	for t := range H.Temperatures() {
		var u, s, cv, a float64
		for q := 0; q < 3; q++ {
			u += full.InternalEnergy(q, t)
			s += full.Entropy(q, t)
			cv += full.HeatCapacity(q, t)
			a += full.Helmholtz(q, t)
		}
		if !scalar.EqualWithinAbsOrRel(sum.InternalEnergy(0, t), u, 1e-10, 1e-12) ||
			!scalar.EqualWithinAbsOrRel(sum.Entropy(0, t), s, 1e-10, 1e-12) ||
			!scalar.EqualWithinAbsOrRel(sum.HeatCapacity(0, t), cv, 1e-10, 1e-12) ||
			!scalar.EqualWithinAbsOrRel(sum.Helmholtz(0, t), a, 1e-10, 1e-12) {
			Te.Errorf("Wrong summed values at temperature %d", t)
		}
		for p := range H.Pressures() {
			var g float64
			for q := 0; q < 3; q++ {
				g += full.Gibbs(q, t, p)
			}
			if !scalar.EqualWithinAbsOrRel(sum.Gibbs(0, t, p), g, 1e-10, 1e-12) {
				Te.Errorf("Wrong summed G at %d,%d: %f %f", t, p, sum.Gibbs(0, t, p), g)
			}
		}
	}
	last, err := H.Results()
	if err != nil {
		Te.Fatal(err)
	}
	if last != sum {
		Te.Error("Results should return the last computation")
	}
}

func TestUsageErrors(Te *testing.T) {
	var uerr *UsageError
	_, err := NewHarmonic([]float64{-100, -99}, 50, [][3]float64{{0, 0, 0}}, [][]float64{{5}}, nil)
	if !errors.As(err, &uerr) {
		Te.Errorf("Multi-state energies should give a UsageError, got %v", err)
	}
	_, err = NewHarmonic([]float64{-100}, 50, [][3]float64{{0, 0, 0}}, [][]float64{{5}, {6}}, nil)
	if !errors.As(err, &uerr) {
		Te.Errorf("Mismatched q-points should give a UsageError, got %v", err)
	}
	H := new(Harmonic)
	if _, err = H.Thermodynamics(true); !errors.As(err, &uerr) {
		Te.Errorf("Computing without data should give a UsageError, got %v", err)
	}
	H = scenario(Te)
	if _, err = H.Results(); !errors.As(err, &uerr) {
		Te.Errorf("Results before Thermodynamics should give a UsageError, got %v", err)
	}
	if err = H.WriteReport(new(bytes.Buffer)); !errors.As(err, &uerr) {
		Te.Errorf("A report before Thermodynamics should give a UsageError, got %v", err)
	}
	err = H.Populate([]float64{-100}, 50, [][3]float64{{0, 0, 0}}, [][]float64{{5}}, nil)
	if !errors.As(err, &uerr) || !strings.Contains(err.Error(), "data exists") {
		Te.Errorf("Populating twice should give a UsageError, got %v", err)
	}
	Te.Log(ErrorTrace(err))
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	if t := o.Temperatures(); len(t) != 1 || t[0] != 298.15 {
		Te.Errorf("Wrong default temperatures %v", t)
	}
	o.Temperatures(10, -5)
	if t := o.Temperatures(); len(t) != 1 {
		Te.Errorf("Negative temperatures should be rejected: %v", t)
	}
	if !o.Sum() || o.Refine() || o.Supercell() != cell.Identity {
		Te.Error("Wrong defaults")
	}
	o.Sum(false)
	if o.Sum() {
		Te.Error("Sum not set")
	}
	o.Temperatures(300, math.Inf(1))
	o.Temperatures(math.NaN())
	if t := o.Temperatures(); len(t) != 1 || t[0] != 298.15 {
		Te.Errorf("Non-finite temperatures should be rejected: %v", t)
	}
	o.Pressures(0, math.Inf(-1))
	o.Pressures(math.NaN())
	if p := o.Pressures(); len(p) != 1 || p[0] != 0 {
		Te.Errorf("Non-finite pressures should be rejected: %v", p)
	}
	o.Pressures(0, 2.5)
	if p := o.Pressures(); len(p) != 2 || p[1] != 2.5 {
		Te.Errorf("Pressures not set: %v", p)
	}
}

func TestGridCopies(Te *testing.T) {
	H := scenario(Te)
	H.Temperatures()[0] = 1
	H.Pressures()[0] = 7
	H.Modes()[0][0] = nil
	R, err := H.Thermodynamics(false)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Temperatures[0] != 0 || R.Pressures[0] != 0 {
		Te.Errorf("The grids changed through the accessors: %v %v", R.Temperatures, R.Pressures)
	}
	if H.Modes()[0][0] == nil {
		Te.Error("The modes changed through the accessor")
	}
}

func TestReport(Te *testing.T) {
	H := scenario(Te)
	if _, err := H.Thermodynamics(true); err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := H.WriteReport(&b); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "# DFT TOTAL ENERGY =  -1.0364e+00 eV,         =  -1.0000e+02 kJ/mol") {
		Te.Errorf("Wrong energy line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "# CELL VOLUME      =    50.000000 Angstrom^3, =    30.110700 cm^3/mol") {
		Te.Errorf("Wrong volume line: %q", lines[1])
	}
	if strings.Count(out, "# HARMONIC THERMODYNAMICS AT QPOINT #") != 1 {
		Te.Error("There should be one q-point block")
	}
	if !strings.Contains(out, "    rows    : pressure (GPa)     0.000    1.000 \n") {
		Te.Errorf("Wrong pressure line in:\n%s", out)
	}
	if !strings.Contains(out, "    T(K)     U_vib(kJ/mol)  Entropy(J/mol*K)      C_V(J/mol*K) Helmholtz(kJ/mol)\n") {
		Te.Errorf("Wrong header in:\n%s", out)
	}
	if !strings.HasSuffix(out, "  \n\n\n") {
		Te.Errorf("Wrong end of report: %q", out[len(out)-10:])
	}
	name := filepath.Join(Te.TempDir(), "HA-thermodynamics.dat")
	if err := H.WriteReportFile(name); err != nil {
		Te.Fatal(err)
	}
	fromfile, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if string(fromfile) != out {
		Te.Error("The report file differs from the report")
	}
}

//fakeOutput is an Output with fixed data.
type fakeOutput struct {
	energies []float64
	qpoints  [][3]float64
	freqs    [][]float64
	s        *cell.Structure
}

func (F *fakeOutput) Energies() ([]float64, error)          { return F.energies, nil }
func (F *fakeOutput) QPoints() ([][3]float64, error)        { return F.qpoints, nil }
func (F *fakeOutput) Frequencies() ([][]float64, error)     { return F.freqs, nil }
func (F *fakeOutput) Eigenvectors() ([][]*v3.Matrix, error) { return nil, nil }
func (F *fakeOutput) Structure() (*cell.Structure, error)   { return F.s, nil }

func TestFromOutput(Te *testing.T) {
	lat, _ := v3.NewMatrix([]float64{3, 0, 0, 0, 3, 0, 0, 0, 3})
	frac, _ := v3.NewMatrix([]float64{0, 0, 0})
	P, err := cell.NewStructure(lat, []int{29}, frac, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	diag2 := [3][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	S, err := cell.ExpandToSupercell(P, diag2)
	if err != nil {
		Te.Fatal(err)
	}
	out := &fakeOutput{
		energies: []float64{-5000},
		qpoints:  [][3]float64{{0, 0, 0}},
		freqs:    [][]float64{{0, 0, 0, -0.5, 3, 4}},
		s:        S,
	}
	o := DefaultOptions()
	o.Supercell(diag2)
	H, err := FromOutput(out, o)
	if err != nil {
		Te.Fatal(err)
	}
	if H.Structure().Len() != 1 || math.Abs(H.Volume()-27) > 1e-8 {
		Te.Errorf("The primitive cell should be recovered: %d sites, %f A^3", H.Structure().Len(), H.Volume())
	}
	if !H.Modes()[0][3].IsAcoustic() || !math.IsNaN(H.Modes()[0][3].Frequencies()[0]) {
		Te.Error("Imaginary modes should be discarded")
	}
	if out.freqs[0][3] != -0.5 {
		Te.Error("The data source should not be modified")
	}
	if H.Energy() != -5000 || H.NQPoints() != 1 {
		Te.Errorf("Wrong data: %f %d", H.Energy(), H.NQPoints())
	}
	R, err := H.Thermodynamics(true)
	if err != nil {
		Te.Fatal(err)
	}
	for t := range R.Temperatures {
		if math.IsNaN(R.Helmholtz(0, t)) {
			Te.Error("NaN Helmholtz energy")
		}
	}
	if err := H.PopulateFromOutput(out, o); err == nil {
		Te.Error("Populating twice should fail")
	}
	slab, err := cell.NewStructure(lat, []int{29}, frac, [3]bool{true, true, false})
	if err != nil {
		Te.Fatal(err)
	}
	out.s = slab
	o = DefaultOptions()
	o.Refine(true)
	var derr *cell.DomainError
	if _, err = FromOutput(out, o); !errors.As(err, &derr) {
		Te.Errorf("Refining a slab should give a DomainError, got %v", err)
	}
}
