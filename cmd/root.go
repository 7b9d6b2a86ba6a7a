package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scaffgen/plugins"
	"scaffgen/registry"
	"scaffgen/rules"
	"scaffgen/runner"
	"scaffgen/utils"
)

var rootCmd = &cobra.Command{
	Use:   "scaffgen",
	Short: "A schema-driven scaffolding fragment generator",
	Long: `scaffgen turns a declarative model definition into structured
scaffolding fragments: migration, request, resource, factory, seeder,
controller, policy, observer, service, action and rule descriptions.

Examples:

  scaffgen init
  scaffgen generate -f model.yaml
  scaffgen validate -f model.yaml
  scaffgen types
`,
}

// Execute runs the CLI
func Execute() {
	utils.LoadEnv()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on unknown field types instead of falling back to string")
	viper.BindPFlag("strict_types", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindEnv("strict_types", "SCAFFGEN_STRICT_TYPES")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(initCmd)
}

// toolkit wires the plugin manager, rule engine and generation service
// the commands share. Shipped plugins are always registered.
func toolkit() (*registry.Manager, *rules.Engine, *runner.Service, error) {
	manager := registry.NewManager()
	if err := plugins.RegisterAll(manager); err != nil {
		return nil, nil, nil, fmt.Errorf("registering shipped plugins: %w", err)
	}
	engine := rules.NewEngine(manager)
	service := runner.Default(manager, engine)
	return manager, engine, service, nil
}

func strictTypes() bool {
	return viper.GetBool("strict_types") || utils.StrictTypes()
}
