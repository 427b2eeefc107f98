package repository

// Schema statically describes the table behind a repository: its key
// column, whether rows are organization-scoped, and the set of columns a
// client is allowed to write. Declaring this per entity keeps the generic
// dispatch compile-time checked instead of stringly-typed.
type Schema struct {
	Entity    string
	Table     string
	Key       string
	OrgScoped bool
	Columns   []string
}

// Columns that exist on every table and are never client-writable.
var immutableColumns = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"organization_id": true,
}

// HasColumn reports whether the named column is part of the writable set.
func (s Schema) HasColumn(name string) bool {
	for _, col := range s.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Statically declared schema descriptors, one per entity.
var (
	Organizations = Schema{
		Entity:  "organization",
		Table:   "organizations",
		Key:     "id",
		Columns: []string{"name", "email"},
	}

	Users = Schema{
		Entity:    "user",
		Table:     "users",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"first_name", "last_name", "email", "password_hash", "role", "archived_at"},
	}

	Brands = Schema{
		Entity:    "brand",
		Table:     "brands",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"name"},
	}

	Models = Schema{
		Entity:    "model",
		Table:     "models",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"brand_id", "name", "description"},
	}

	Kits = Schema{
		Entity:    "kit",
		Table:     "kits",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"name", "description"},
	}

	Categories = Schema{
		Entity:    "category",
		Table:     "categories",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"name"},
	}

	CustomFields = Schema{
		Entity:    "custom field",
		Table:     "custom_fields",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"name", "type"},
	}

	Items = Schema{
		Entity:    "item",
		Table:     "items",
		Key:       "barcode",
		OrgScoped: true,
		Columns:   []string{"category_id", "model_id", "barcode", "note"},
	}

	Rentals = Schema{
		Entity:    "rental",
		Table:     "rentals",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"user_id", "external_renter_id", "starts_at", "ends_at", "returned_at", "note"},
	}

	ExternalRenters = Schema{
		Entity:    "external renter",
		Table:     "external_renters",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"name", "email", "phone"},
	}

	Subscriptions = Schema{
		Entity:    "subscription",
		Table:     "subscriptions",
		Key:       "id",
		OrgScoped: true,
		Columns:   []string{"customer_ref", "plan", "status", "valid", "current_period_end"},
	}
)
