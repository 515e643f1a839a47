// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gotruss/fem"
	"github.com/cpmech/gotruss/inp"
	"github.com/cpmech/gotruss/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// command line flags
var (
	verbose  bool   // show messages
	listBcs  bool   // list boundary conditions
	jsonPath string // save results to JSON file
	xlsxPath string // save results to Excel workbook
	format   string // format of model printed by "example"
)

func main() {

	// catch errors
	status := 0
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			status = 1
		}
		os.Exit(status)
	}()

	if err := newRootCmd().Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		status = 1
	}
}

// newRootCmd returns the root command with all subcommands and flags
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gotruss",
		Short:         "plane truss analysis with the finite element method",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, "")
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run analysis of model file (.yaml or .json); the built-in exs3 model if none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fnpath := ""
			if len(args) > 0 {
				fnpath = args[0]
			}
			return runModel(cmd, fnpath)
		},
	}
	runCmd.Flags().BoolVar(&listBcs, "listbcs", false, "list boundary conditions")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "save results to JSON file")
	runCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "save results to Excel workbook")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "print the built-in exs3 model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := inp.Exs3().Encode(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	exampleCmd.Flags().StringVar(&format, "format", "yaml", "model format: yaml or json")

	rootCmd.AddCommand(runCmd, exampleCmd)
	return rootCmd
}

// runModel runs the analysis and writes the report and results files
func runModel(cmd *cobra.Command, fnpath string) (err error) {

	// model
	model := inp.Exs3()
	if fnpath != "" {
		model, err = inp.ReadModel(fnpath)
		if err != nil {
			return
		}
	}
	model.ListBcs = model.ListBcs || listBcs

	// message
	io.Verbose = verbose
	if verbose {
		io.PfWhite("\nGotruss -- plane truss analysis with the finite element method\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model file path", "fnpath", fnpath,
			"model key", "key", model.Key,
			"show messages", "verbose", verbose,
			"list boundary conditions", "listbcs", model.ListBcs,
			"JSON results file", "json", jsonPath,
			"Excel results file", "xlsx", xlsxPath,
		))
	}

	// run
	analysis, err := fem.NewMain(model, verbose)
	if err != nil {
		return chk.Err("cannot initialise analysis of %q:\n%v", model.Key, err)
	}
	res, err := analysis.Run()
	if err != nil {
		return chk.Err("analysis of %q failed:\n%v", model.Key, err)
	}

	// output
	err = out.WriteReport(cmd.OutOrStdout(), res)
	if err != nil {
		return
	}
	if jsonPath != "" {
		err = out.WriteJSON(jsonPath, res)
		if err != nil {
			return
		}
		if verbose {
			io.Pf("> file <%s> written\n", jsonPath)
		}
	}
	if xlsxPath != "" {
		err = out.WriteXlsx(xlsxPath, res)
		if err != nil {
			return
		}
		if verbose {
			io.Pf("> file <%s> written\n", xlsxPath)
		}
	}
	return
}
