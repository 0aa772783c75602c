package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	optargs "github.com/SimonDaKappa/go-optargs"
)

func loadSchema(path string) (*optargs.SchemaPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return optargs.PoolFromJSON(data)
	}
	return optargs.PoolFromYAML(data)
}

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "optargs",
		Short: "Inspect pool schemas and dry-run command lines against them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	var checkSchemaPath string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a pool schema file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := loadSchema(checkSchemaPath)
			if err != nil {
				return fmt.Errorf("load schema: %w", err)
			}
			fmt.Printf("schema ok: %d declarations\n", len(sp.Names))
			return nil
		},
	}
	checkCmd.Flags().StringVarP(&checkSchemaPath, "schema", "s", "", "schema file (.yaml or .json)")
	checkCmd.MarkFlagRequired("schema")

	var parseSchemaPath string
	parseCmd := &cobra.Command{
		Use:   "parse -s <schema> -- <argv...>",
		Short: "Parse a command line against a schema and print the result set",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := loadSchema(parseSchemaPath)
			if err != nil {
				return fmt.Errorf("load schema: %w", err)
			}
			set, err := optargs.ParseArgs(args, sp.Pool)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			out := make(map[string]any)
			for _, name := range sp.Names {
				d, _ := sp.Decl(name)
				if name == sp.Vararg {
					values, err := set.VarargValues(d)
					if err != nil {
						return err
					}
					out[name] = values
					continue
				}
				if v, ok, _ := set.Value(d); ok {
					out[name] = v
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	parseCmd.Flags().StringVarP(&parseSchemaPath, "schema", "s", "", "schema file (.yaml or .json)")
	parseCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
