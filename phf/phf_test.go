/*
 * phf_test.go, part of gothermo.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
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

package phf

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
	"gonum.org/v1/gonum/mat"
)

var _ thermo.Output = (*Data)(nil)

func testData(Te *testing.T, witheig bool) *Data {
	lat, _ := v3.NewMatrix([]float64{4.2, 0, 0, 0, 4.2, 0, 0, 0, 4.2})
	frac, _ := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0.5, 0.5})
	s, err := cell.NewStructure(lat, []int{12, 8}, frac, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	s.Charge = -1
	qp := [][3]float64{{0, 0, 0}, {0.5, 0, 0}}
	freqs := [][]float64{
		{0, 0, 0, 7.123456789012, 7.123456789012, 11.5},
		{-0.25, 1.5, 2.5, 6, 7, 12.000000000001},
	}
	var eig [][]*v3.Matrix
	if witheig {
		eig = make([][]*v3.Matrix, len(qp))
		for q := range eig {
			eig[q] = make([]*v3.Matrix, len(freqs[q]))
			for m := range eig[q] {
				eig[q][m], _ = v3.NewMatrix([]float64{0.1 * float64(m), -0.2, 1.0 / 3.0, 0, float64(q), -0.7071067811865476})
			}
		}
	}
	D, err := NewData([]float64{-7.3e6}, s, qp, freqs, eig)
	if err != nil {
		Te.Fatal(err)
	}
	return D
}

func compareData(Te *testing.T, A, B *Data) {
	if A.energies[0] != B.energies[0] || len(A.qpoints) != len(B.qpoints) {
		Te.Fatalf("Different energies or q-points: %v %v", A.energies, B.energies)
	}
	if !mat.Equal(A.structure.Lattice.Dense, B.structure.Lattice.Dense) || !mat.Equal(A.structure.Frac.Dense, B.structure.Frac.Dense) {
		Te.Errorf("Different structures:\n%s\n%s", A.structure, B.structure)
	}
	if A.structure.PBC != B.structure.PBC || A.structure.Charge != B.structure.Charge {
		Te.Errorf("Different periodicity or charge")
	}
	for q := range A.qpoints {
		if A.qpoints[q] != B.qpoints[q] {
			Te.Errorf("Different q-point %d: %v %v", q, A.qpoints[q], B.qpoints[q])
		}
		for m, f := range A.freqs[q] {
			if f != B.freqs[q][m] {
				Te.Errorf("Different frequency %d,%d: %v %v", q, m, f, B.freqs[q][m])
			}
		}
	}
	if (A.eigvecs == nil) != (B.eigvecs == nil) {
		Te.Fatalf("Eigenvectors lost or made up")
	}
	for q := range A.eigvecs {
		for m, ev := range A.eigvecs[q] {
			if !mat.Equal(ev.Dense, B.eigvecs[q][m].Dense) {
				Te.Errorf("Different eigenvector %d,%d: %v %v", q, m, ev, B.eigvecs[q][m])
			}
		}
	}
}

func TestWriteRead(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"test.phf", "test.phz", "test.phr", "test.pht"} {
		for _, witheig := range []bool{true, false} {
			D := testData(Te, witheig)
			path := filepath.Join(dir, name)
			if err := Write(path, D); err != nil {
				Te.Fatal(err)
			}
			R, err := Read(path)
			if err != nil {
				Te.Fatalf("%s: %v", name, err)
			}
			compareData(Te, D, R)
		}
	}
}

func TestReader(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "test.phf")
	if err := Write(path, testData(Te, false)); err != nil {
		Te.Fatal(err)
	}
	r, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Len() != 2 || r.NModes() != 6 || r.Structure().Species[1] != 8 {
		Te.Errorf("Wrong header: %d atoms %d modes", r.Len(), r.NModes())
	}
	blocks := 0
	for {
		_, f, ev, err := r.Next()
		if err != nil {
			var last *LastBlockError
			if !errors.As(err, &last) {
				Te.Fatal(err)
			}
			break
		}
		if len(f) != 6 || ev != nil {
			Te.Errorf("Wrong block: %v %v", f, ev)
		}
		blocks++
	}
	if blocks != 2 || r.Readable() {
		Te.Errorf("Expected 2 blocks and a closed reader, got %d", blocks)
	}
}

func TestMalformed(Te *testing.T) {
	dir := Te.TempDir()
	files := map[string]string{
		"nolattice.pht": "energy=-10\npbc=1 1 1\nnmodes=3\n** 1\n1 0 0 0\nq 0 0 0\n0\n0\n0\n*\n",
		"badmode.pht":   "energy=-10\nlattice=3 0 0 0 3 0 0 0 3\npbc=1 1 1\nnmodes=3\n** 1\n1 0 0 0\nq 0 0 0\n0 1 2\n0\n0\n*\n",
		"noend.pht":     "energy=-10\nlattice=3 0 0 0 3 0 0 0 3\npbc=1 1 1\nnmodes=3\n** 1\nH 0 0 0\nq 0 0 0\n0\n0\n0\n",
		"noq.pht":       "energy=-10\nlattice=3 0 0 0 3 0 0 0 3\npbc=1 1 1\nnmodes=3\n** 1\nH 0 0 0\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			Te.Fatal(err)
		}
		_, err := Read(path)
		var perr *Error
		if !errors.As(err, &perr) {
			Te.Errorf("%s should give a phf.Error, got %v", name, err)
		} else if perr.FileName() != path {
			Te.Errorf("Wrong file name in error: %s", perr.FileName())
		}
	}
}

func TestHarmonicFromFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "mgo.phf")
	if err := Write(path, testData(Te, true)); err != nil {
		Te.Fatal(err)
	}
	D, err := Read(path)
	if err != nil {
		Te.Fatal(err)
	}
	o := thermo.DefaultOptions()
	o.Temperatures(0, 300)
	H, err := thermo.FromOutput(D, o)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(H.Volume()-4.2*4.2*4.2) > 1e-8 {
		Te.Errorf("Wrong volume %f", H.Volume())
	}
	if H.Modes()[1][0].Eigenvector() == nil {
		Te.Error("Eigenvectors should be attached to the modes")
	}
	R, err := H.Thermodynamics(true)
	if err != nil {
		Te.Fatal(err)
	}
	if R.HeatCapacity(0, 1) <= 0 || R.Entropy(0, 0) != 0 {
		Te.Errorf("Wrong thermodynamics: %v %v", R.Cv, R.S)
	}
}
