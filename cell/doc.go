/*
 * doc.go, part of gothermo.
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

//Package cell handles periodic crystal structures: lattices, sites in
//fractional coordinates and periodicity flags. It builds supercells from
//a primitive cell and recovers the primitive cell from a supercell, with the
//origin placed at the geometric center of the cell, as CRYSTAL does.
//
//Space-group analysis is not implemented here. Instead, the functions that
//need it take a SymmetryAnalyzer, which is expected to wrap an external
//crystallography library.
package cell
