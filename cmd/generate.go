package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scaffgen/generator"
	"scaffgen/loader"
	"scaffgen/runner"
	"scaffgen/schema"
)

var (
	generateFile      string
	generateTargets   []string
	generateOutDir    string
	generateFormat    string
	generateNamespace string
	dryRunGenerate    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "model.yaml", "Model definition file to load")
	generateCmd.Flags().StringSliceVarP(&generateTargets, "generators", "g", nil, "Generators to run (default: all registered)")
	generateCmd.Flags().StringVarP(&generateOutDir, "output", "o", "fragments", "Directory the fragment files are written to")
	generateCmd.Flags().StringVar(&generateFormat, "format", "yaml", "Fragment file format (yaml, json)")
	generateCmd.Flags().StringVar(&generateNamespace, "namespace", "", "Namespace prefix for generated class references")
	generateCmd.Flags().BoolVar(&dryRunGenerate, "dry-run", false, "Preview the fragments without writing files")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate scaffolding fragments from a model definition",
	Long: `Generate scaffolding fragments from a model definition file.

Each requested generator produces one fragment file; a failing generator
is reported for its own fragment only and never blocks the others.

Examples:
  scaffgen generate                             # All generators, model.yaml
  scaffgen generate -f user.yaml                # Custom model file
  scaffgen generate -g migration,request        # Selected generators only
  scaffgen generate --format json -o out/       # JSON fragments into out/
  scaffgen generate --dry-run                   # Print fragments, write nothing
`,
	Run: func(cmd *cobra.Command, args []string) {
		if generateFormat != "yaml" && generateFormat != "json" {
			fmt.Println("❌ Unknown format:", generateFormat)
			os.Exit(1)
		}

		doc, err := loader.Load(generateFile)
		if err != nil {
			fmt.Println("❌ Loading model definition:", err)
			os.Exit(1)
		}

		manager, _, service, err := toolkit()
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		sch, err := schema.New(doc.Definition, manager, schema.BuildOptions{StrictTypes: strictTypes()})
		if err != nil {
			fmt.Println("❌ Building schema:", err)
			os.Exit(1)
		}

		opts := generator.DefaultOptions()
		opts.Namespace = generateNamespace

		results := service.GenerateAll(generateTargets, sch, opts)

		if dryRunGenerate {
			fmt.Println("\n================ DRY RUN: Fragment Preview ================")
			for _, res := range results {
				if res.Err != nil {
					color.Red("-- %s: %v", res.Name, res.Err)
					continue
				}
				out, err := renderFragment(res.Fragment)
				if err != nil {
					color.Red("-- %s: %v", res.Name, err)
					continue
				}
				fmt.Printf("-- %s --\n%s\n", res.Name, out)
			}
			fmt.Println("===========================================================")
			fmt.Println("(Dry run only. No files were written.)")
			reportFailures(results)
			return
		}

		if err := os.MkdirAll(generateOutDir, 0755); err != nil {
			fmt.Println("❌ Creating output directory:", err)
			os.Exit(1)
		}

		written := 0
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			out, err := renderFragment(res.Fragment)
			if err != nil {
				fmt.Println("❌ Encoding fragment:", err)
				os.Exit(1)
			}
			path := filepath.Join(generateOutDir, fmt.Sprintf("%s_%s.%s", sch.Table, res.Name, generateFormat))
			if err := os.WriteFile(path, out, 0644); err != nil {
				fmt.Println("❌ Writing fragment file:", err)
				os.Exit(1)
			}
			written++
		}

		color.Green("✅ %d fragment(s) written to %s", written, generateOutDir)
		if len(doc.Extensions) > 0 {
			keys := make([]string, 0, len(doc.Extensions))
			for key := range doc.Extensions {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			fmt.Printf("ℹ️  Extension sections passed through untouched: %s\n", strings.Join(keys, ", "))
		}
		reportFailures(results)
	},
}

func renderFragment(f generator.Fragment) ([]byte, error) {
	if generateFormat == "json" {
		return f.ToJSON()
	}
	return f.ToYAML()
}

func reportFailures(results []runner.Result) {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			color.Red("❌ %s: %v", res.Name, res.Err)
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("💡 %d generator(s) failed; the remaining fragments were still produced.\n", failed)
	}
}
