package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scaffgen/registry"
)

var typesPluginsOnly bool

func init() {
	typesCmd.Flags().BoolVar(&typesPluginsOnly, "plugins", false, "List registered plugins only")
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered field types",
	Long: `List every field type the generator can resolve: builtin types with
their base rules and storage mapping, and registered plugins with their
aliases and custom attributes.

Examples:
  scaffgen types             # Builtins and plugins
  scaffgen types --plugins   # Plugins only
`,
	Run: func(cmd *cobra.Command, args []string) {
		manager, _, _, err := toolkit()
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		if !typesPluginsOnly {
			color.Cyan("Builtin types:")
			for _, name := range registry.BuiltinTypes() {
				d, _ := registry.Resolve(name)
				fmt.Printf("  %-22s rules: %-24s storage: %s\n",
					name, strings.Join(d.BaseRules, ","), storageLabel(d.Storage))
			}
			fmt.Println()
		}

		color.Cyan("Plugins:")
		for _, p := range manager.Plugins() {
			fmt.Printf("  %-22s aliases: %s\n", p.TypeID(), strings.Join(p.Aliases(), ", "))
			fmt.Printf("  %-22s rules: %-24s storage: %s\n",
				"", strings.Join(p.BaseRules(), ","), storageLabel(p.StorageMapping()))

			specs := p.CustomAttributeSpecs()
			names := make([]string, 0, len(specs))
			for name := range specs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				spec := specs[name]
				label := string(spec.ValueType)
				if spec.Required {
					label += ", required"
				}
				fmt.Printf("    • %s (%s): %s\n", name, label, spec.Description)
			}
		}
	},
}

func storageLabel(m registry.StorageMapping) string {
	label := m.ColumnType
	switch {
	case m.Precision > 0:
		label = fmt.Sprintf("%s(%d,%d)", label, m.Precision, m.Scale)
	case m.Length > 0:
		label = fmt.Sprintf("%s(%d)", label, m.Length)
	}
	if m.Unsigned {
		label += " unsigned"
	}
	return label
}
