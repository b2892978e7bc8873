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

package config

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/manifoldco/promptui"
)

// BuildCredential constructs the token credential for the configured
// authentication method. Order of preference: client certificate, client
// secret, Azure CLI session. When an app id is configured without any
// secret material, the secret is prompted for interactively.
func BuildCredential() (azcore.TokenCredential, error) {
	var (
		tenant = AzTenant.Value().(string)
		appId  = AzAppId.Value().(string)
		secret = AzSecret.Value().(string)
		cert   = AzCert.Value().(string)
		key    = AzKey.Value().(string)
	)

	switch {
	case appId != "" && cert != "" && key != "":
		certs, privateKey, err := LoadCertificate(cert, key, AzKeyPass.Value().(string))
		if err != nil {
			return nil, err
		}
		return azidentity.NewClientCertificateCredential(tenant, appId, certs, privateKey, nil)

	case appId != "":
		if secret == "" {
			prompted, err := promptSecret()
			if err != nil {
				return nil, err
			}
			secret = prompted
		}
		return azidentity.NewClientSecretCredential(tenant, appId, secret, nil)

	case AzureCli.Value().(bool):
		return azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{TenantID: tenant})

	default:
		return nil, fmt.Errorf("no authentication method configured; set --app with --secret or --cert/--key, or --use-azure-cli")
	}
}

func promptSecret() (string, error) {
	prompt := promptui.Prompt{
		Label: "Client Secret",
		Mask:  '*',
	}

	secret, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("reading client secret: %w", err)
	}
	return secret, nil
}
