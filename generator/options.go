package generator

// Options configures a generation run. Each generator family gets its own
// small struct with documented defaults instead of a stringly-typed bag;
// DefaultOptions is the baseline every caller should start from.
type Options struct {
	// Namespace prefixes generated class/type references (e.g. "App").
	Namespace string

	Migration  MigrationOptions
	Request    RequestOptions
	Resource   ResourceOptions
	Factory    FactoryOptions
	Seeder     SeederOptions
	Controller ControllerOptions
	Policy     PolicyOptions
	Observer   ObserverOptions
	Service    ServiceOptions
	Action     ActionOptions
}

// MigrationOptions tunes the persistence-description fragment.
type MigrationOptions struct {
	// SoftDeleteColumns emits the soft-delete column when the schema
	// enables soft deletes. Default true.
	SoftDeleteColumns bool
	// TimestampColumns emits created_at/updated_at when the schema
	// enables timestamps. Default true.
	TimestampColumns bool
}

// RequestOptions tunes the validation-request fragment.
type RequestOptions struct {
	// Authorize marks the generated requests as authorization-gated.
	Authorize bool
}

// ResourceOptions tunes the API-transform fragment.
type ResourceOptions struct {
	// PerPage is the default page size for paginated collection
	// relationships. Default 15.
	PerPage int
}

// FactoryOptions tunes the sample-data fragment.
type FactoryOptions struct {
	// States adds named factory state descriptions besides the default.
	States []string
}

// SeederOptions tunes the seed fragment.
type SeederOptions struct {
	// Count is the number of records the seeder describes. Default 10.
	Count int
}

// ControllerOptions tunes the controller scaffolding fragment.
type ControllerOptions struct {
	// Actions overrides the RESTful action set. Empty means the default
	// five (index, store, show, update, destroy).
	Actions []string
	// LogicOverrides replaces the logic placeholder for single actions.
	LogicOverrides map[string]string
	// Api omits web-only concerns from the description. Default true.
	Api bool
}

// PolicyOptions tunes the policy fragment.
type PolicyOptions struct {
	// BeforeHook includes a before-hook description. Default true.
	BeforeHook bool
}

// ObserverOptions tunes the observer fragment.
type ObserverOptions struct {
	// Hooks overrides the lifecycle hook set. Empty means the defaults,
	// extended with restoring/restored when soft deletes are enabled.
	Hooks []string
}

// ServiceOptions tunes the service-layer fragment.
type ServiceOptions struct {
	// Methods overrides the CRUD method set.
	Methods []string
}

// ActionOptions tunes the single-purpose action fragment.
type ActionOptions struct {
	// Verbs overrides the CRUD verb set.
	Verbs []string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Migration: MigrationOptions{
			SoftDeleteColumns: true,
			TimestampColumns:  true,
		},
		Resource: ResourceOptions{PerPage: 15},
		Seeder:   SeederOptions{Count: 10},
		Controller: ControllerOptions{
			Api: true,
		},
		Policy: PolicyOptions{BeforeHook: true},
	}
}

// restActions is the default controller action set.
var restActions = []string{"index", "store", "show", "update", "destroy"}

// crudVerbs is the default verb set for services and actions.
var crudVerbs = []string{"create", "read", "update", "delete", "list"}
