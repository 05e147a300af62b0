/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshfield/display"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshfield",
	Short: "Labeled arrays, Cartesian meshes and fields on them",
	Long: `
Builds labeled arrays, turns coordinate arrays into meshes and defines fields
on their cells or nodes, printing each step.

meshfield array
meshfield field -I workflow.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return startProfile(viper.GetString("profile"))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meshfield.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "collect a profile while running: cpu or mem")
	rootCmd.PersistentFlags().Int("precision", 4, "digits after the decimal point in tables")
	rootCmd.PersistentFlags().Int("maxRows", 20, "tuples shown per table, 0 for all")
	rootCmd.PersistentFlags().Int("plotHeight", 10, "height of component plots")
	rootCmd.PersistentFlags().Int("plotWidth", 60, "width of component plots")
	for _, name := range []string{"profile", "precision", "maxRows", "plotHeight", "plotWidth"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".meshfield" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".meshfield")
	}
	viper.SetEnvPrefix("meshfield")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(kind string) (err error) {
	switch kind {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	default:
		err = fmt.Errorf("unknown profile type %q, use cpu or mem", kind)
	}
	return
}

// Settings holds the display configuration shared by all commands
type Settings struct {
	Table display.TableOptions
	Plot  display.PlotOptions
}

func settingsFromConfig() Settings {
	return Settings{
		Table: display.TableOptions{
			Precision: viper.GetInt("precision"),
			MaxRows:   viper.GetInt("maxRows"),
		},
		Plot: display.PlotOptions{
			Height: viper.GetInt("plotHeight"),
			Width:  viper.GetInt("plotWidth"),
		},
	}
}
