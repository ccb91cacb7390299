// Command server is the storefront CLI: it serves the API and manages
// the database.
//
//	storefront serve             start the HTTP server
//	storefront migrate           run pending migrations
//	storefront migrate:rollback  rollback the last batch
//	storefront migrate:status    show migration state
//	storefront seed              run database seeders
//	storefront route:list        print all registered routes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/singitronic/storefront/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront — e-commerce backend CLI",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
