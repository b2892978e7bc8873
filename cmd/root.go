// Copyright (C) 2026 ConsentHound Contributors
//
// This file is part of ConsentHound.
//
// ConsentHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ConsentHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/config"
	"github.com/consenthound/consenthound/constants"
	"github.com/consenthound/consenthound/logger"
)

var log logr.Logger

var rootCmd = &cobra.Command{
	Use:          constants.Name,
	Short:        constants.Description,
	Long:         fmt.Sprintf("%s %s\n%s", constants.DisplayName, constants.Version, constants.Description),
	Version:      constants.Version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	if err := config.Init(rootCmd, config.GlobalConfigs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() {
	verbosity, _ := config.VerbosityLevel.Value().(int)
	structured, _ := config.JsonLogs.Value().(bool)
	log = logger.NewLogger(logger.Options{
		Verbosity:  verbosity,
		Structured: structured,
		Colors:     !structured,
	})
}

// connectAndCreateClient authenticates with the configured method and
// verifies the Graph connection; any failure here is fatal before
// enumeration begins.
func connectAndCreateClient(ctx context.Context) client.AzureClient {
	credential, err := config.BuildCredential()
	if err != nil {
		exit(err)
	}

	azClient, err := client.NewClient(ctx, credential, config.Proxy.Value().(string))
	if err != nil {
		exit(fmt.Errorf("connecting to graph: %w", err))
	}
	return azClient
}

func gracefulShutdown(stop context.CancelFunc) {
	stop()
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}
