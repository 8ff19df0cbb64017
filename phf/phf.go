/*
 * phf.go, part of gothermo.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gothermo/cell"
	v3 "github.com/rmera/gothermo/v3"
)

//Write!
type PhfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	nmodes    int
	filename  string
	writeable bool
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinFloats(f []float64) string {
	s := make([]string, len(f))
	for i, v := range f {
		s[i] = ftoa(v)
	}
	return strings.Join(s, " ")
}

//NewWriter creates the file name and writes the header and the structure s to it. The
//energies are in kJ/mol, and nmodes is the number of modes each q-point will have.
func NewWriter(name string, energies []float64, s *cell.Structure, nmodes int, compressionLevel ...int) (*PhfW, error) {
	if s == nil || len(energies) == 0 || nmodes <= 0 {
		return nil, &Error{"Energies, structure and number of modes are required", name, []string{"NewWriter"}, true}
	}
	level := 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(PhfW)
	var err error
	S.filename = name
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		S.h, err = gzip.NewWriterLevel(S.f, level)
	case 'r':
		S.h, err = flate.NewWriter(S.f, level)
	case 't':
		S.h = nopWriteCloser{S.f}
	default:
		S.h, err = zstd.NewWriter(S.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	if err != nil {
		S.f.Close()
		return nil, &Error{"Can't open compressed stream " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = s.Len()
	S.nmodes = nmodes
	var b strings.Builder
	fmt.Fprintf(&b, "energy=%s\n", joinFloats(energies))
	lat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lat = append(lat, s.Lattice.At(i, j))
		}
	}
	fmt.Fprintf(&b, "lattice=%s\n", joinFloats(lat))
	pbc := make([]string, 3)
	for i, v := range s.PBC {
		pbc[i] = "0"
		if v {
			pbc[i] = "1"
		}
	}
	fmt.Fprintf(&b, "pbc=%s\n", strings.Join(pbc, " "))
	fmt.Fprintf(&b, "nmodes=%d\n", nmodes)
	fmt.Fprintf(&b, "charge=%d\n", s.Charge)
	fmt.Fprintf(&b, "** %d\n", S.natoms)
	for i, z := range s.Species {
		fmt.Fprintf(&b, "%d %s %s %s\n", z, ftoa(s.Frac.At(i, 0)), ftoa(s.Frac.At(i, 1)), ftoa(s.Frac.At(i, 2)))
	}
	if _, err := S.h.Write([]byte(b.String())); err != nil {
		S.h.Close()
		S.f.Close()
		return nil, &Error{"Can't write header " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.writeable = true
	return S, nil
}

//WNext writes the frequencies (THz) of the modes at the q-point q. The eigenvectors,
//one matrix with natoms rows per mode, can be nil.
func (S *PhfW) WNext(q [3]float64, freqs []float64, eigvecs []*v3.Matrix) error {
	if !S.writeable {
		return &Error{PhfUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if len(freqs) != S.nmodes {
		return &Error{fmt.Sprintf("%d frequencies given, but %d expected", len(freqs), S.nmodes), S.filename, []string{"WNext"}, true}
	}
	if eigvecs != nil && len(eigvecs) != len(freqs) {
		return &Error{fmt.Sprintf("%d eigenvectors given for %d modes", len(eigvecs), len(freqs)), S.filename, []string{"WNext"}, true}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "q %s\n", joinFloats(q[:]))
	comps := make([]float64, 0, 3*S.natoms)
	for m, f := range freqs {
		b.WriteString(ftoa(f))
		if eigvecs != nil && eigvecs[m] != nil {
			ev := eigvecs[m]
			if ev.NVecs() != S.natoms {
				return &Error{fmt.Sprintf("Eigenvector %d has %d vectors, but there are %d atoms", m, ev.NVecs(), S.natoms), S.filename, []string{"WNext"}, true}
			}
			comps = comps[:0]
			for i := 0; i < S.natoms; i++ {
				comps = append(comps, ev.At(i, 0), ev.At(i, 1), ev.At(i, 2))
			}
			b.WriteString(" ")
			b.WriteString(joinFloats(comps))
		}
		b.WriteString("\n")
	}
	b.WriteString("*\n")
	if _, err := S.h.Write([]byte(b.String())); err != nil {
		return &Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	return nil
}

//Close flushes and closes the file. The writer can't be used after this call.
func (S *PhfW) Close() error {
	if S == nil || !S.writeable {
		return nil
	}
	S.writeable = false
	err := S.h.Close()
	if err2 := S.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Read!
type PhfR struct {
	f         *os.File
	dec       io.ReadCloser
	h         *bufio.Reader
	filename  string
	natoms    int
	nmodes    int
	energies  []float64
	structure *cell.Structure
	readable  bool
}

//This will cause additional indirections
//but each call takes long enough for that not to matter.
type stdql struct {
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call
func (s stdql) Close() error {
	s.Decoder.Close()
	return nil
}

//New opens a PHF file for reading, and reads its header and structure.
func New(name string) (*PhfR, error) {
	S := new(PhfR)
	var err error
	S.filename = name
	S.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	intermediate := bufio.NewReader(S.f)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		S.dec, err = gzip.NewReader(intermediate)
	case 'r':
		S.dec = flate.NewReader(intermediate)
	case 't':
		S.dec = io.NopCloser(intermediate)
	default:
		var d *zstd.Decoder
		d, err = zstd.NewReader(intermediate)
		if err == nil {
			S.dec = stdql{d}
		}
	}
	if err != nil {
		S.f.Close()
		return nil, &Error{"Can't open compressed stream " + err.Error(), name, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.dec)
	if err = S.readHeader(); err != nil {
		S.Close()
		return nil, decorate(err, "New")
	}
	S.readable = true
	return S, nil
}

func (S *PhfR) line() (string, error) {
	str, err := S.h.ReadString('\n')
	if err != nil && !(err == io.EOF && str != "") {
		return "", err
	}
	return strings.TrimSpace(str), nil
}

func parseFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	var err error
	for i, v := range fields {
		ret[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (S *PhfR) readHeader() error {
	m := make(map[string]string)
	S.natoms = -1
	for {
		str, err := S.line()
		if err != nil {
			return &Error{"Can't read header " + err.Error(), S.filename, []string{"readHeader"}, true}
		}
		if strings.HasPrefix(str, "**") {
			nat := strings.Fields(str)
			if len(nat) < 2 {
				return &Error{fmt.Sprintf("Can't read atom number from '%s'", str), S.filename, []string{"readHeader"}, true}
			}
			S.natoms, err = strconv.Atoi(nat[1])
			if err != nil || S.natoms <= 0 {
				return &Error{fmt.Sprintf("Can't read atom number from '%s'", nat[1]), S.filename, []string{"readHeader"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return &Error{"Malformed header line: " + str, S.filename, []string{"readHeader"}, true}
		}
		m[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	for _, k := range []string{"energy", "lattice", "pbc", "nmodes"} {
		if _, ok := m[k]; !ok {
			return &Error{"Missing header key " + k, S.filename, []string{"readHeader"}, true}
		}
	}
	var err error
	S.energies, err = parseFloats(strings.Fields(m["energy"]))
	if err != nil || len(S.energies) == 0 {
		return &Error{"Can't read the energies: " + m["energy"], S.filename, []string{"readHeader"}, true}
	}
	lat, err := parseFloats(strings.Fields(m["lattice"]))
	if err != nil || len(lat) != 9 {
		return &Error{"The lattice must have 9 numbers: " + m["lattice"], S.filename, []string{"readHeader"}, true}
	}
	lattice, _ := v3.NewMatrix(lat)
	var pbc [3]bool
	pf := strings.Fields(m["pbc"])
	if len(pf) != 3 {
		return &Error{"The periodicity must have 3 values: " + m["pbc"], S.filename, []string{"readHeader"}, true}
	}
	for i, v := range pf {
		pbc[i] = v == "1"
	}
	S.nmodes, err = strconv.Atoi(m["nmodes"])
	if err != nil || S.nmodes <= 0 {
		return &Error{"Can't read the number of modes: " + m["nmodes"], S.filename, []string{"readHeader"}, true}
	}
	charge := 0
	if c, ok := m["charge"]; ok {
		charge, err = strconv.Atoi(c)
		if err != nil {
			log.Printf("Invalid charge in %s. Will assume 0", S.filename) //just a head-up
			charge = 0
		}
	}
	species := make([]int, S.natoms)
	frac := make([]float64, 0, 3*S.natoms)
	for i := 0; i < S.natoms; i++ {
		str, err := S.line()
		if err != nil {
			return &Error{fmt.Sprintf("Can't read atom %d: %s", i, err.Error()), S.filename, []string{"readHeader"}, true}
		}
		fields := strings.Fields(str)
		if len(fields) != 4 {
			return &Error{fmt.Sprintf("Ill formated atom line: %s", str), S.filename, []string{"readHeader"}, true}
		}
		species[i], err = strconv.Atoi(fields[0])
		if err != nil {
			z, ok := cell.AtomicNumber(fields[0])
			if !ok {
				return &Error{fmt.Sprintf("Unknown element %s", fields[0]), S.filename, []string{"readHeader"}, true}
			}
			species[i] = z
		}
		c, err := parseFloats(fields[1:])
		if err != nil {
			return &Error{fmt.Sprintf("Can't parse coordinates for atom %d: %s", i, err.Error()), S.filename, []string{"readHeader"}, true}
		}
		frac = append(frac, c...)
	}
	fm, _ := v3.NewMatrix(frac)
	S.structure, err = cell.NewStructure(lattice, species, fm, pbc)
	if err != nil {
		return &Error{err.Error(), S.filename, []string{"readHeader"}, true}
	}
	S.structure.Charge = charge
	return nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *PhfR) Readable() bool { return S.readable }

//Len returns the number of atoms in the cell.
func (S *PhfR) Len() int { return S.natoms }

//NModes returns the number of modes at each q-point
func (S *PhfR) NModes() int { return S.nmodes }

//Energies returns the energies in the header, in kJ/mol.
func (S *PhfR) Energies() []float64 { return S.energies }

//Structure returns the calculation cell in the file.
func (S *PhfR) Structure() *cell.Structure { return S.structure }

//Next reads the next q-point block, and returns the q-point, the frequencies in THz and the
//eigenvectors (nil if the file has none for this q-point, and nil elements for modes without one).
//At the end of the file it returns a *LastBlockError.
func (S *PhfR) Next() ([3]float64, []float64, []*v3.Matrix, error) {
	var q [3]float64
	if !S.readable {
		return q, nil, nil, &Error{PhfUnIniRead, S.filename, []string{"Next"}, true}
	}
	str, err := S.line()
	if err == io.EOF || (err == nil && str == "") {
		S.Close()
		return q, nil, nil, newLastBlockError(S.filename, "Next")
	}
	if err != nil {
		return q, nil, nil, &Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(str)
	if len(fields) != 4 || fields[0] != "q" {
		return q, nil, nil, &Error{"Expected a q-point line, got: " + str, S.filename, []string{"Next"}, true}
	}
	qf, err := parseFloats(fields[1:])
	if err != nil {
		return q, nil, nil, &Error{"Can't parse q-point: " + str, S.filename, []string{"Next"}, true}
	}
	copy(q[:], qf)
	freqs := make([]float64, S.nmodes)
	eigvecs := make([]*v3.Matrix, S.nmodes)
	haseig := false
	for m := 0; m < S.nmodes; m++ {
		str, err := S.line()
		if err != nil {
			return q, nil, nil, &Error{fmt.Sprintf("Can't read mode %d: %s", m+1, err.Error()), S.filename, []string{"Next"}, true}
		}
		v, err := parseFloats(strings.Fields(str))
		if err != nil || len(v) == 0 {
			return q, nil, nil, &Error{fmt.Sprintf("Ill formated mode line: %s", str), S.filename, []string{"Next"}, true}
		}
		freqs[m] = v[0]
		switch len(v) {
		case 1:
		case 1 + 3*S.natoms:
			eigvecs[m], _ = v3.NewMatrix(v[1:])
			haseig = true
		default:
			return q, nil, nil, &Error{fmt.Sprintf("Mode %d has %d eigenvector components, %d expected", m+1, len(v)-1, 3*S.natoms), S.filename, []string{"Next"}, true}
		}
	}
	str, err = S.line()
	if err != nil || !strings.HasPrefix(str, "*") {
		return q, nil, nil, &Error{WrongFormat + ": missing q-point block termination", S.filename, []string{"Next"}, true}
	}
	if !haseig {
		eigvecs = nil
	}
	return q, freqs, eigvecs, nil
}

//Close closes the file, and marks the object as unreadable
func (S *PhfR) Close() {
	if S.dec != nil {
		S.dec.Close()
	}
	if S.f != nil {
		S.f.Close()
	}
	S.dec = nil
	S.f = nil
	S.readable = false
}
