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
	"encoding/json"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/consenthound/consenthound/client"
	"github.com/consenthound/consenthound/config"
	"github.com/consenthound/consenthound/enums"
)

func init() {
	rootCmd.AddCommand(tenantInfoCmd)
}

var tenantInfoCmd = &cobra.Command{
	Use:          "tenant-info <domain>",
	Short:        "Resolves tenant identity information from the public metadata endpoints",
	Long:         "Looks up the tenant id, namespace type and federation branding for a verified domain using only unauthenticated, public endpoints",
	Args:         cobra.ExactArgs(1),
	Run:          tenantInfoCmdImpl,
	SilenceUsage: true,
}

func tenantInfoCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer gracefulShutdown(stop)

	resolver, err := client.NewTenantMetadataResolver(config.Proxy.Value().(string))
	if err != nil {
		exit(err)
	}

	tenant, err := resolver.Resolve(ctx, args[0])
	if err != nil {
		exit(err)
	}

	out, err := openOutput()
	if err != nil {
		exit(err)
	}
	if out != os.Stdout {
		defer out.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewAzureWrapper(enums.KindAZTenant, tenant)); err != nil {
		exit(err)
	}
}
