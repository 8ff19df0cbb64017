/*
 * root.go, part of gothermo.
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
	"os"

	thermo "github.com/rmera/gothermo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	jsonLogs bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "gothermo",
	Short: "Harmonic thermodynamics from periodic phonon calculations",
	Long: `gothermo reads the results of a periodic harmonic phonon calculation, stored
in a phf file, and computes the zero-point energy, vibrational internal energy,
entropy, heat capacity, and the Helmholtz and Gibbs free energies over a grid
of temperatures and pressures. It can also recover the primitive cell from a
supercell calculation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(thermo.ErrorTrace(err))
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gothermo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "write logs as JSON")
	rootCmd.AddCommand(harmonicCmd, cellCmd)
}

// initConfig sets up logging, and loads configuration from the config file and environment.
func initConfig() {
	if err := setupLogging(verbose, jsonLogs); err != nil {
		setupLogging(verbose, false)
		logger.Warnw("can't set up JSON logging", "error", err)
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gothermo")
	}
	viper.SetEnvPrefix("GOTHERMO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debugw("using config file", "file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warnw("can't read config file", "file", cfgFile, "error", err)
	}
}
