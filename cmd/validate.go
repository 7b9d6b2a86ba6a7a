package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scaffgen/loader"
	"scaffgen/schema"
	"scaffgen/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a model definition",
	Long: `Validate your model definition file against the type system.

This command performs comprehensive validation including:
- Table and field naming (identifier rules, reserved keywords)
- Field type resolution (plugins first, builtin types second)
- Custom attribute specs (value types, bounds, allowed values, validators)
- Relationship conventions (foreign key fields for belongs-to)

Construction errors (duplicate names, zero fields, unknown relationship
kinds) abort immediately; everything else is collected and reported with
a severity so you decide what blocks you.

Examples:
  scaffgen validate                      # Validate model.yaml
  scaffgen validate -f custom.yaml       # Validate a custom model file
  scaffgen validate --format json        # Output validation results as JSON
  scaffgen validate --strict             # Unknown types become errors
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateModel(); err != nil {
			fmt.Printf("❌ Model validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var (
	validateModelFile string
	validateFormat    string
)

func init() {
	validateCmd.Flags().StringVarP(&validateModelFile, "file", "f", "model.yaml", "Model file to validate")
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "Output format (text, json)")
}

func validateModel() error {
	doc, err := loader.Load(validateModelFile)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	manager, engine, _, err := toolkit()
	if err != nil {
		return err
	}

	sch, err := schema.New(doc.Definition, manager, schema.BuildOptions{StrictTypes: strictTypes()})
	if err != nil {
		return err
	}

	result := validator.NewSchemaValidator(manager, engine).ValidateSchema(sch)

	if validateFormat == "json" {
		return outputJSON(result)
	}
	return outputText(result)
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) error {
	if result.Valid {
		color.Green("✅ Model validation passed!")
	} else {
		color.Red("❌ Model validation failed!")
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\n🔴 Errors (%d):\n", len(result.Errors))
		printFindings(result.Errors)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("\n🟡 Warnings (%d):\n", len(result.Warnings))
		printFindings(result.Warnings)
	}
	if len(result.Info) > 0 {
		fmt.Printf("\n🔵 Info (%d):\n", len(result.Info))
		printFindings(result.Info)
	}

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  • Errors: %d\n", len(result.Errors))
	fmt.Printf("  • Warnings: %d\n", len(result.Warnings))
	fmt.Printf("  • Info: %d\n", len(result.Info))

	if result.Valid {
		fmt.Printf("\n🎉 Your model is valid and ready for fragment generation!\n")
	} else {
		fmt.Printf("\n💡 Fix the errors above before generating fragments.\n")
	}
	return nil
}

func printFindings(findings []validator.ValidationError) {
	for i, finding := range findings {
		fmt.Printf("  %d. ", i+1)
		if finding.Field != "" {
			fmt.Printf("[%s]", finding.Field)
		}
		if finding.Relation != "" {
			fmt.Printf("[%s]", finding.Relation)
		}
		fmt.Printf(": %s\n", finding.Message)
	}
}
