/*
 * atomicdata.go, part of gothermo.
 *
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

package cell

import "strings"

//Element symbols, indexed by atomic number. Index 0 is a dummy atom.
var symbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var symbolZ map[string]int

func init() {
	symbolZ = make(map[string]int, len(symbols))
	for z, s := range symbols {
		symbolZ[strings.ToLower(s)] = z
	}
}

//Symbol returns the element symbol for the atomic number z.
//CRYSTAL adds multiples of 100 to z to flag pseudopotentials, those
//are removed. Unknown numbers give "X".
func Symbol(z int) string {
	if z >= len(symbols) {
		z = z % 100
	}
	if z < 0 || z >= len(symbols) {
		return "X"
	}
	return symbols[z]
}

//AtomicNumber returns the atomic number for the element symbol sym
//(case insensitive), and false if the symbol is unknown.
func AtomicNumber(sym string) (int, bool) {
	z, ok := symbolZ[strings.ToLower(strings.TrimSpace(sym))]
	return z, ok
}
