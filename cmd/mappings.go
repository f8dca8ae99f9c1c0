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
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/truna-id/fraudcheck/contraindicator"
)

// mappingCommands defines the `mappings` command group for maintaining the
// contraindication mapping table.
func mappingCommands(app *appInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "manage contraindication mappings",
	}

	seed := &cobra.Command{
		Use:   "seed <fraud-code> <contraindicator-code>",
		Short: "insert or update one mapping for the configured tenant",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := contraindicator.ConnectStore(app.cnf.DataSource.Dns)
			if err != nil {
				log.Fatal(err)
			}
			defer conn.Close()

			store := contraindicator.NewStore(conn, nil)
			tenantID := app.cnf.Provider.TenantID
			if err := store.SeedMapping(context.Background(), tenantID, args[0], args[1]); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("mapped %s -> %s for tenant %s\n", args[0], args[1], tenantID)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "list mappings for the configured tenant",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := contraindicator.ConnectStore(app.cnf.DataSource.Dns)
			if err != nil {
				log.Fatal(err)
			}
			defer conn.Close()

			store := contraindicator.NewStore(conn, nil)
			mappings, err := store.Mappings(context.Background(), app.cnf.Provider.TenantID)
			if err != nil {
				log.Fatal(err)
			}
			for fraudCode, internalCode := range mappings {
				fmt.Printf("%s -> %s\n", fraudCode, internalCode)
			}
		},
	}

	cmd.AddCommand(seed, list)
	return cmd
}
