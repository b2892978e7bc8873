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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CONSENTHOUND"

// Config describes one configuration value, settable by flag, environment
// variable or config file, in that order of precedence.
type Config struct {
	Name       string
	Shorthand  string
	Usage      string
	Default    interface{}
	Persistent bool
}

func (s Config) Value() interface{} {
	return viper.Get(s.Name)
}

func (s Config) Set(value interface{}) {
	viper.Set(s.Name, value)
}

var (
	AzTenant = Config{
		Name:       "tenant",
		Shorthand:  "t",
		Usage:      "The directory tenant to audit, as a tenant id or a verified domain name",
		Default:    "",
		Persistent: true,
	}

	AzAppId = Config{
		Name:       "app",
		Shorthand:  "a",
		Usage:      "The application (client) id of the registration used to authenticate",
		Default:    "",
		Persistent: true,
	}

	AzSecret = Config{
		Name:       "secret",
		Shorthand:  "s",
		Usage:      "The client secret of the application; prompted for when --app is set without --secret or --key",
		Default:    "",
		Persistent: true,
	}

	AzCert = Config{
		Name:       "cert",
		Shorthand:  "c",
		Usage:      "Path to a PEM encoded certificate for client certificate authentication",
		Default:    "",
		Persistent: true,
	}

	AzKey = Config{
		Name:       "key",
		Shorthand:  "k",
		Usage:      "Path to the PEM encoded private key belonging to --cert",
		Default:    "",
		Persistent: true,
	}

	AzKeyPass = Config{
		Name:       "keypass",
		Usage:      "Passphrase for the private key when it is encrypted",
		Default:    "",
		Persistent: true,
	}

	AzureCli = Config{
		Name:       "use-azure-cli",
		Usage:      "Authenticate with the token of an existing 'az login' session",
		Default:    false,
		Persistent: true,
	}

	Proxy = Config{
		Name:       "proxy",
		Usage:      "HTTP proxy to route all remote calls through, e.g. http://localhost:8080",
		Default:    "",
		Persistent: true,
	}

	PermissionTable = Config{
		Name:       "permission-table",
		Shorthand:  "p",
		Usage:      "Path to a local permission classification table (CSV); downloaded from the community table when omitted",
		Default:    "",
		Persistent: true,
	}

	OutputFile = Config{
		Name:       "output",
		Shorthand:  "o",
		Usage:      "Write the report to this file instead of stdout",
		Default:    "",
		Persistent: true,
	}

	OutputFormat = Config{
		Name:       "format",
		Shorthand:  "f",
		Usage:      "Report output format: json or csv",
		Default:    "json",
		Persistent: true,
	}

	VerbosityLevel = Config{
		Name:       "verbosity",
		Shorthand:  "v",
		Usage:      "Diagnostic verbosity; 0 for info, 1 for debug, 2 for trace",
		Default:    0,
		Persistent: true,
	}

	JsonLogs = Config{
		Name:       "json-logs",
		Usage:      "Emit logs as JSON lines instead of the console format",
		Default:    false,
		Persistent: true,
	}
)

// GlobalConfigs lists every registered configuration value.
var GlobalConfigs = []Config{
	AzTenant,
	AzAppId,
	AzSecret,
	AzCert,
	AzKey,
	AzKeyPass,
	AzureCli,
	Proxy,
	PermissionTable,
	OutputFile,
	OutputFormat,
	VerbosityLevel,
	JsonLogs,
}

// Init registers the given configs as flags on the command and binds them to
// viper along with CONSENTHOUND_* environment variables.
func Init(cmd *cobra.Command, configs []Config) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, config := range configs {
		flags := cmd.Flags()
		if config.Persistent {
			flags = cmd.PersistentFlags()
		}

		switch value := config.Default.(type) {
		case string:
			flags.StringP(config.Name, config.Shorthand, value, config.Usage)
		case bool:
			flags.BoolP(config.Name, config.Shorthand, value, config.Usage)
		case int:
			flags.IntP(config.Name, config.Shorthand, value, config.Usage)
		default:
			return fmt.Errorf("unsupported default type for config %s", config.Name)
		}

		if err := viper.BindPFlag(config.Name, flags.Lookup(config.Name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", config.Name, err)
		}
	}

	return nil
}
