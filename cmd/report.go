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
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/consenthound/consenthound/config"
	"github.com/consenthound/consenthound/panicrecovery"
	"github.com/consenthound/consenthound/report"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:          "report",
	Short:        "Audits every consent grant in the tenant and classifies its privilege level",
	Long:         "Enumerates all service principals with their delegated and application permission grants, classifies each grant against the permission table, and writes the report as JSON lines or CSV",
	Run:          reportCmdImpl,
	SilenceUsage: true,
}

func reportCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	log.V(1).Info("testing connections")
	azClient := connectAndCreateClient(ctx)
	defer azClient.CloseIdleConnections()

	out, err := openOutput()
	if err != nil {
		exit(err)
	}
	if out != os.Stdout {
		defer out.Close()
	}

	opts := report.Options{
		TablePath: config.PermissionTable.Value().(string),
		ProxyUrl:  config.Proxy.Value().(string),
		Format:    config.OutputFormat.Value().(string),
	}

	log.Info("auditing consent grants...", "tenant", azClient.TenantInfo().TenantId)
	start := time.Now()
	panicrecovery.HandleBubbledPanic(ctx, stop, log)
	if err := report.Run(ctx, azClient, opts, out, log); err != nil {
		exit(err)
	}
	duration := time.Since(start)
	log.Info("audit completed", "duration", duration.String())
}
