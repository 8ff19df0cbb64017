/*
 * report.go, part of gothermo.
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
	"io"
	"os"
	"strings"
)

//WriteReport writes the last computed results of H to w, as a plain-text table.
//If H was populated without a structure, the lattice parameters are printed as zeros.
func (H *Harmonic) WriteReport(w io.Writer) error {
	R, err := H.Results()
	if err != nil {
		return decorate(err, "WriteReport")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-21s%12.4e%-15s%12.4e%-10s\n", "# DFT TOTAL ENERGY = ", H.energy*KJmol2EV, " eV,         = ", H.energy, " kJ/mol")
	fmt.Fprintf(&b, "%-21s%12.6f%-15s%12.6f%-10s\n", "# CELL VOLUME      = ", H.volume, " Angstrom^3, = ", H.volume*GPaA32KJmol, " cm^3/mol")
	b.WriteString("# LATTICE PARAMETERS (ANGSTROM, DEGREE)\n")
	fmt.Fprintf(&b, "%12s%12s%12s%12s%12s%12s\n", "A", "B", "C", "ALPHA", "BETA", "GAMMA")
	var p [6]float64
	if H.structure != nil {
		p = H.structure.Parameters()
	}
	fmt.Fprintf(&b, "%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f\n\n", p[0], p[1], p[2], p[3], p[4], p[5])
	for q := 0; q < R.NQPoints(); q++ {
		fmt.Fprintf(&b, "%-40s%5d\n\n", "# HARMONIC THERMODYNAMICS AT QPOINT #", q)
		fmt.Fprintf(&b, "%-23s%12.6e%8s\n\n", "  zero point energy = ", R.ZeroPoint[q], " kJ/mol")
		b.WriteString("  temperature dependent properties\n")
		fmt.Fprintf(&b, "%8s%18s%18s%18s%18s\n", "    T(K)", "U_vib(kJ/mol)", "Entropy(J/mol*K)", "C_V(J/mol*K)", "Helmholtz(kJ/mol)")
		for t, T := range R.Temperatures {
			fmt.Fprintf(&b, "%8.2f%18.6e%18.6e%18.6e%18.6e\n", T, R.InternalEnergy(q, t), R.Entropy(q, t), R.HeatCapacity(q, t), R.Helmholtz(q, t))
		}
		b.WriteString("\n  Gibbs free energy\n")
		fmt.Fprintf(&b, "%-30s", "    rows    : pressure (GPa)  ")
		for _, P := range R.Pressures {
			fmt.Fprintf(&b, "%8.3f ", P)
		}
		fmt.Fprintf(&b, "\n%-30s", "    columns : temperature (K) ")
		for _, T := range R.Temperatures {
			fmt.Fprintf(&b, "%8.3f ", T)
		}
		for t := range R.Temperatures {
			b.WriteString("\n    ")
			for p := range R.Pressures {
				fmt.Fprintf(&b, "%18.6e  ", R.Gibbs(q, t, p))
			}
		}
		b.WriteString("\n\n\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return nil
}

//WriteReportFile writes the report (see WriteReport) to a new file with the given name.
func (H *Harmonic) WriteReportFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := H.WriteReport(f); err != nil {
		f.Close()
		return decorate(err, "WriteReportFile")
	}
	return f.Close()
}
