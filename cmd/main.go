/*
Copyright 2025 Truna Authors.

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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	fraudcheck "github.com/truna-id/fraudcheck"
	"github.com/truna-id/fraudcheck/config"
)

// Cli encapsulates the root Cobra command for the fraudcheck CLI.
type Cli struct {
	cmd *cobra.Command
}

// appInstance holds the runtime service and its configuration for commands
// to share.
type appInstance struct {
	service *fraudcheck.Fraudcheck
	cnf     *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the
// error before exiting.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and wires the fraudcheck service before
// any command runs.
func preRun(app *appInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			configFile = "fraudcheck.json"
		}

		if err := config.InitConfig(configFile); err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		service, err := fraudcheck.NewFraudcheck()
		if err != nil {
			log.Fatal(err)
		}

		app.service = service
		app.cnf = cnf
		return nil
	}
}

// NewCLI creates the command-line interface for the fraudcheck service.
func NewCLI() *Cli {
	var configFile string
	app := &appInstance{}

	var rootCmd = &cobra.Command{
		Use:   "fraudcheck",
		Short: "identity fraud check service",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./fraudcheck.json", "Configuration file for the fraudcheck service")
	rootCmd.PersistentPreRunE = preRun(app)

	rootCmd.AddCommand(serverCommands(app))
	rootCmd.AddCommand(workerCommands(app))
	rootCmd.AddCommand(mappingCommands(app))

	return &Cli{cmd: rootCmd}
}

func (c Cli) executeCLI() {
	if err := c.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()
	cli := NewCLI()
	cli.executeCLI()
}
