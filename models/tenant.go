package models

// Tenant is a storefront's branding and domain identity.
type Tenant struct {
	Name        string   `yaml:"name" json:"name"`
	Slug        string   `yaml:"slug" json:"slug"`
	Domains     []Domain `yaml:"domains,omitempty" json:"domains,omitempty"`
	LinkedAgent *Agent   `yaml:"linkedAgent,omitempty" json:"linked_agent,omitempty"`
}

// Domain is one hostname serving a tenant. The primary domain holds
// canonical authority for the tenant's URLs.
type Domain struct {
	Host      string `yaml:"host" json:"host"`
	IsPrimary bool   `yaml:"isPrimary" json:"is_primary"`
}

// PrimaryHost returns the tenant's primary domain host, falling back to the
// first listed domain, then to empty.
func (t *Tenant) PrimaryHost() string {
	if t == nil {
		return ""
	}
	for _, d := range t.Domains {
		if d.IsPrimary {
			return d.Host
		}
	}
	if len(t.Domains) > 0 {
		return t.Domains[0].Host
	}
	return ""
}
