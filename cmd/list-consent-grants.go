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
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/consenthound/consenthound/cache"
	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/collect"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/models"
	"github.com/consenthound/consenthound/panicrecovery"
	"github.com/consenthound/consenthound/pipeline"
)

func init() {
	listRootCmd.AddCommand(listConsentGrantsCmd)
}

var listConsentGrantsCmd = &cobra.Command{
	Use:          "consent-grants",
	Long:         "Lists delegated and application consent grants without privilege classification",
	Run:          listConsentGrantsCmdImpl,
	SilenceUsage: true,
}

func listConsentGrantsCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	log.V(1).Info("testing connections")
	azClient := connectAndCreateClient(ctx)
	log.Info("collecting entra id consent grants...")
	start := time.Now()
	stream := listConsentGrants(ctx, azClient)
	panicrecovery.HandleBubbledPanic(ctx, stop, log)
	outputStream(ctx, stream)
	duration := time.Since(start)
	log.Info("collection completed", "duration", duration.String())
}

func listConsentGrants(ctx context.Context, azClient client.AzureClient) <-chan azureWrapper[models.GrantRecord] {
	out := make(chan azureWrapper[models.GrantRecord])

	go func() {
		defer panicrecovery.PanicRecovery()
		defer close(out)

		objects := cache.NewDirectoryObjectCache(azClient, log)
		collector := collect.NewCollector(azClient, objects, log)

		count := 0
		for item := range collector.Collect(ctx) {
			if item.Error != nil {
				log.Error(item.Error, "unable to continue processing consent grants")
				return
			}
			log.V(2).Info("found consent grant", "client", item.Ok.ClientObjectId, "permission", item.Ok.Permission)
			count++
			if ok := pipeline.Send(ctx.Done(), out, NewAzureWrapper(
				enums.KindAZConsentGrant,
				item.Ok,
			)); !ok {
				return
			}
		}
		log.Info("finished listing all consent grants", "count", count)
	}()

	return out
}
