/*
 * config_test.go, part of gothermo.
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


package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gothermo/cell"
	"github.com/rmera/gothermo/phf"
	v3 "github.com/rmera/gothermo/v3"
	"github.com/spf13/cobra"
)

func TestParseSupercell(Te *testing.T) {
	cases := map[string][3][3]int{
		"":                  cell.Identity,
		"2":                 {{2, 0, 0}, {0, 2, 0}, {0, 0, 2}},
		"2,3,1":             {{2, 0, 0}, {0, 3, 0}, {0, 0, 1}},
		"0,1,1,1,0,1,1,1,0": {{0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
	}
	for in, expected := range cases {
		var vals []string
		if in != "" {
			vals = strings.Split(in, ",")
		}
		smx, err := parseSupercell(vals)
		if err != nil {
			Te.Fatal(err)
		}
		if smx != expected {
			Te.Errorf("%q: expected %v, got %v", in, expected, smx)
		}
	}
	if _, err := parseSupercell([]string{"1", "2"}); err == nil {
		Te.Error("2 elements should not make a supercell matrix")
	}
	if _, err := parseSupercell([]string{"a"}); err == nil {
		Te.Error("Non-integers should not make a supercell matrix")
	}
	f, err := parseFloats([]string{"0", "100 298.15"})
	if err != nil || len(f) != 3 || f[2] != 298.15 {
		Te.Errorf("Wrong floats %v %v", f, err)
	}
}

func TestCommands(Te *testing.T) {
	dir := Te.TempDir()
	lat, _ := v3.NewMatrix([]float64{3, 0, 0, 0, 3, 0, 0, 0, 3})
	frac, _ := v3.NewMatrix([]float64{0, 0, 0})
	P, _ := cell.NewStructure(lat, []int{13}, frac, [3]bool{true, true, true})
	S, err := cell.ExpandToSupercell(P, [3][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}})
	if err != nil {
		Te.Fatal(err)
	}
	D, err := phf.NewData([]float64{-1000}, S, [][3]float64{{0, 0, 0}}, [][]float64{{0, 0, 0, 2, 3, 4}}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	in := filepath.Join(dir, "al.phf")
	if err := phf.Write(in, D); err != nil {
		Te.Fatal(err)
	}
	report := filepath.Join(dir, "HA.dat")
	js := filepath.Join(dir, "HA.json")
	rootCmd.SetArgs([]string{"harmonic", in, "--temperatures", "0,300", "--pressures", "0,1", "--supercell", "2", "-o", report, "--json", js})
	if err := rootCmd.Execute(); err != nil {
		Te.Fatal(err)
	}
	b, err := os.ReadFile(report)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(b), "# CELL VOLUME      =    27.000000") {
		Te.Errorf("The primitive cell volume should be in the report:\n%s", b)
	}
	if _, err := os.Stat(js); err != nil {
		Te.Error(err)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"cell", in, "--supercell", "2,2,2"})
	if err := rootCmd.Execute(); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 sites") {
		Te.Errorf("Expected one site in the primitive cell:\n%s", out.String())
	}
}

func TestNonFiniteGrid(Te *testing.T) {
	dir := Te.TempDir()
	report := filepath.Join(dir, "HA.dat")
	for _, args := range [][]string{
		{"--temperatures", "300,inf", "--pressures", "0"},
		{"--temperatures", "NaN", "--pressures", "0"},
		{"--temperatures", "300", "--pressures", "0,-Inf"},
	} {
		rootCmd.SetArgs(append([]string{"harmonic", filepath.Join(dir, "missing.phf"), "-o", report}, args...))
		err := rootCmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "must be finite") {
			Te.Errorf("%v: expected a non-finite grid error, got %v", args, err)
		}
	}
	if _, err := os.Stat(report); err == nil {
		Te.Error("No report should be written for an invalid grid")
	}
}

func TestRefineHelp(Te *testing.T) {
	for _, c := range []*cobra.Command{harmonicCmd, cellCmd} {
		if u := c.Flags().Lookup("refine").Usage; !strings.Contains(u, "assumes P1") {
			Te.Errorf("%s: the refine help should say the built-in backend assumes P1: %q", c.Name(), u)
		}
	}
}
