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
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/client/query"
	"github.com/consenthound/consenthound/enums"
	"github.com/consenthound/consenthound/panicrecovery"
	"github.com/consenthound/consenthound/pipeline"
)

func init() {
	listRootCmd.AddCommand(listServicePrincipalsCmd)
}

var listServicePrincipalsCmd = &cobra.Command{
	Use:          "service-principals",
	Long:         "Lists Entra ID Service Principals",
	Run:          listServicePrincipalsCmdImpl,
	SilenceUsage: true,
}

func listServicePrincipalsCmdImpl(cmd *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	log.V(1).Info("testing connections")
	azClient := connectAndCreateClient(ctx)
	log.Info("collecting entra id service principals...")
	start := time.Now()
	stream := listServicePrincipals(ctx, azClient)
	panicrecovery.HandleBubbledPanic(ctx, stop, log)
	outputStream(ctx, stream)
	duration := time.Since(start)
	log.Info("collection completed", "duration", duration.String())
}

func listServicePrincipals(ctx context.Context, azClient client.AzureClient) <-chan interface{} {
	out := make(chan interface{})

	makeParams := func(includeAppRoleAssignments bool) query.GraphParams {
		params := query.GraphParams{}
		if includeAppRoleAssignments {
			params.Expand = []string{"appRoleAssignedTo"}
		}
		return params
	}

	go func() {
		defer panicrecovery.PanicRecovery()
		defer close(out)

		streamOnce := func(params query.GraphParams) (int, error) {
			count := 0
			for item := range azClient.ListAzureADServicePrincipals(ctx, params) {
				if item.Error != nil {
					return count, item.Error
				}
				log.V(2).Info("found service principal", "id", item.Ok.Id)
				count++
				if ok := pipeline.SendAny(ctx.Done(), out, AzureWrapper{
					Kind: enums.KindAZServicePrincipal,
					Data: item.Ok,
				}); !ok {
					return count, nil
				}
			}
			return count, nil
		}

		params := makeParams(true)
		count, err := streamOnce(params)
		if err != nil && count == 0 && isGraphAuthorizationDenied(err) {
			log.Info("warning: authorization denied when expanding appRoleAssignedTo for service principals; retrying without the expansion")
			params = makeParams(false)
			count, err = streamOnce(params)
		}
		if err != nil {
			log.Error(err, "unable to continue processing service principals")
			return
		}
		log.Info("finished listing all service principals", "count", count)
	}()

	return out
}

func isGraphAuthorizationDenied(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Authorization_RequestDenied")
}
