package access

// Resource identifies a protected resource kind.
type Resource string

// Protected resources.
const (
	ResourceCountry        Resource = "countries"
	ResourceCompany        Resource = "companies"
	ResourcePackage        Resource = "packages"
	ResourceCompanyPackage Resource = "companies_packages"
	ResourceRate           Resource = "rates"
	ResourceShipping       Resource = "shipping"
	ResourceAvailability   Resource = "available_packages"
	ResourceRole           Resource = "roles"
)

// Action identifies an operation kind on a resource.
type Action string

// Resource actions.
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Scope is the minimum ownership requirement a rule imposes.
type Scope int

const (
	// ScopeAll requires no ownership check.
	ScopeAll Scope = iota
	// ScopeOwned requires a role whose discriminant matches the target's owner.
	ScopeOwned
)

type ruleKey struct {
	resource Resource
	action   Action
}

type rule struct {
	scope Scope
	// anonymous rules are satisfied without any caller identity.
	anonymous bool
	// roles lists the non-superuser role kinds the rule accepts. Superusers
	// pass every rule and unlisted (resource, action) pairs are denied, so
	// an empty list means superuser-only.
	roles []RoleName
}

// rules is the static permission table. Catalog and geography reads are
// public; catalog writes are superuser-only; shipment bindings are managed
// by the store that owns them.
var rules = map[ruleKey]rule{
	{ResourceCountry, ActionRead}:   {scope: ScopeAll, anonymous: true},
	{ResourceCountry, ActionCreate}: {scope: ScopeAll},

	{ResourceCompany, ActionRead}:   {scope: ScopeAll, anonymous: true},
	{ResourceCompany, ActionCreate}: {scope: ScopeAll},
	{ResourceCompany, ActionUpdate}: {scope: ScopeAll},
	{ResourceCompany, ActionDelete}: {scope: ScopeAll},

	{ResourcePackage, ActionRead}:   {scope: ScopeAll, anonymous: true},
	{ResourcePackage, ActionCreate}: {scope: ScopeAll},
	{ResourcePackage, ActionUpdate}: {scope: ScopeAll},
	{ResourcePackage, ActionDelete}: {scope: ScopeAll},

	{ResourceCompanyPackage, ActionRead}:   {scope: ScopeAll, anonymous: true},
	{ResourceCompanyPackage, ActionCreate}: {scope: ScopeAll},
	{ResourceCompanyPackage, ActionDelete}: {scope: ScopeAll},

	{ResourceRate, ActionRead}:   {scope: ScopeAll, anonymous: true},
	{ResourceRate, ActionUpdate}: {scope: ScopeAll},

	{ResourceShipping, ActionRead}:   {scope: ScopeOwned, roles: []RoleName{RoleStoreManager}},
	{ResourceShipping, ActionCreate}: {scope: ScopeOwned, roles: []RoleName{RoleStoreManager}},
	{ResourceShipping, ActionUpdate}: {scope: ScopeOwned, roles: []RoleName{RoleStoreManager}},
	{ResourceShipping, ActionDelete}: {scope: ScopeOwned, roles: []RoleName{RoleStoreManager}},

	{ResourceAvailability, ActionRead}: {scope: ScopeAll, anonymous: true},

	{ResourceRole, ActionRead}:   {scope: ScopeAll},
	{ResourceRole, ActionCreate}: {scope: ScopeAll},
	{ResourceRole, ActionDelete}: {scope: ScopeAll},
}
