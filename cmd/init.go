package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new scaffgen project",
	Long: `Initialize a new scaffgen project with an example model definition.

The model file declares one entity: its fields (with types, attributes
and plugin custom attributes), relationships, and storage options. Any
top-level section besides the recognized core keys is host-owned
extension data and passes through generation untouched.

Examples:
  scaffgen init                   # Create model.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat("model.yaml"); err == nil {
			fmt.Println("❌ model.yaml already exists!")
			return
		}

		content := `# Model definition with examples of field types and attributes
model: Post
table: posts

fields:
  title:
    type: string
    length: 120
  slug:
    type: slug
    unique: true
  summary:
    type: text
    nullable: true
  status:
    type: enumeration
    values: [draft, published, archived]
    default: draft
  price:
    type: money
    currency_code: usd
    nullable: true
  views:
    type: unsigned_integer
    default: 0
  published_at:
    type: datetime
    nullable: true

relationships:
  author:
    kind: belongs_to
    target: User
  comments: has_many:Comment
  tags:
    kind: many_to_many
    target: Tag
    pivot_table: post_tags

options:
  timestamps: true
  soft_deletes: true

# Everything below is host-owned extension data; scaffgen never
# interprets it and hands it back untouched.
deploy:
  queue: default
`
		if err := os.WriteFile("model.yaml", []byte(content), 0644); err != nil {
			fmt.Println("❌ Error creating model.yaml:", err)
			return
		}
		fmt.Println("✅ Created model.yaml example file.")
		fmt.Println("📝 Edit model.yaml to define your entity")
		fmt.Println("🚀 Run 'scaffgen generate' to produce scaffolding fragments")
	},
}
