// Package intent turns free-form user text into typed, confirmable commands.
// It covers template detection, field extraction, and confirmation message
// composition. All three lean on a llm.Generator but degrade differently:
// detection is best-effort, extraction is fatal to the turn, and composition
// falls back to a deterministic template.
package intent

// CommandTemplate describes one command the engine knows how to perform:
// which entity and operation it targets, which fields the extractor should
// look for, and which of those are mandatory before dispatch.
type CommandTemplate struct {
	ID          string
	Entity      string
	Operation   string
	Title       string
	Description string
	Examples    []string
	Fields      []string
	Required    []string
}

// HasField reports whether the template extracts the given field.
func (t CommandTemplate) HasField(name string) bool {
	for _, f := range t.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Catalog is the immutable set of command templates loaded at startup.
type Catalog struct {
	templates []CommandTemplate
	byID      map[string]CommandTemplate
}

// NewCatalog builds a catalog from templates. Duplicate IDs keep the first
// occurrence.
func NewCatalog(templates []CommandTemplate) *Catalog {
	byID := make(map[string]CommandTemplate, len(templates))
	for _, t := range templates {
		if _, ok := byID[t.ID]; !ok {
			byID[t.ID] = t
		}
	}
	return &Catalog{templates: templates, byID: byID}
}

// Templates returns all templates in registration order.
func (c *Catalog) Templates() []CommandTemplate {
	return c.templates
}

// ByID looks up a template by its identifier.
func (c *Catalog) ByID(id string) (CommandTemplate, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of registered templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// BuiltinCatalog returns the command templates the assistant ships with.
func BuiltinCatalog() *Catalog {
	return NewCatalog([]CommandTemplate{
		{
			ID:          "customer.create",
			Entity:      "customer",
			Operation:   "create",
			Title:       "Create customer",
			Description: "Register a new customer account",
			Examples: []string{
				"add a new customer called Acme Corp",
				"create customer Globex, they're in logistics",
			},
			Fields:   []string{"name", "industry", "website", "status", "tags", "description"},
			Required: []string{"name"},
		},
		{
			ID:          "customer.update",
			Entity:      "customer",
			Operation:   "update",
			Title:       "Update customer",
			Description: "Change fields on an existing customer",
			Examples: []string{
				"mark Acme as churned",
				"set Globex's website to globex.example.com",
			},
			Fields:   []string{"customerName", "name", "industry", "website", "status", "tags", "description"},
			Required: []string{"customerName"},
		},
		{
			ID:          "customer.delete",
			Entity:      "customer",
			Operation:   "delete",
			Title:       "Delete customer",
			Description: "Remove a customer account",
			Examples: []string{
				"delete the customer Initech",
			},
			Fields:   []string{"customerName"},
			Required: []string{"customerName"},
		},
		{
			ID:          "customer.search",
			Entity:      "customer",
			Operation:   "search",
			Title:       "Find customers",
			Description: "Search customers by name",
			Examples: []string{
				"find customers matching umbrella",
			},
			Fields:   []string{"query"},
			Required: []string{"query"},
		},
		{
			ID:          "customer.list",
			Entity:      "customer",
			Operation:   "list",
			Title:       "List customers",
			Description: "List all customers",
			Examples: []string{
				"show me all customers",
			},
			Fields:   []string{},
			Required: []string{},
		},
		{
			ID:          "note.create",
			Entity:      "note",
			Operation:   "create",
			Title:       "Add note",
			Description: "Attach a meeting or call note to a customer",
			Examples: []string{
				"add a note to Acme: green confidence, next step send POC doc",
				"note for Globex from yesterday's call, yellow, follow up on pricing",
			},
			Fields:   []string{"customerName", "notes", "noteDate", "confidence", "nextSteps"},
			Required: []string{"customerName", "notes"},
		},
		{
			ID:          "note.update",
			Entity:      "note",
			Operation:   "update",
			Title:       "Update note",
			Description: "Amend an existing note, addressed by customer and date",
			Examples: []string{
				"change the confidence on Acme's note from May 3rd to red",
			},
			Fields:   []string{"customerName", "noteDate", "notes", "confidence", "nextSteps"},
			Required: []string{"customerName", "noteDate"},
		},
		{
			ID:          "note.list",
			Entity:      "note",
			Operation:   "list",
			Title:       "List notes",
			Description: "List a customer's notes",
			Examples: []string{
				"show me the notes for Acme",
			},
			Fields:   []string{"customerName"},
			Required: []string{"customerName"},
		},
		{
			ID:          "profile.create",
			Entity:      "profile",
			Operation:   "create",
			Title:       "Create profile",
			Description: "Record a customer's technical and buying profile",
			Examples: []string{
				"Acme runs Kubernetes on AWS, pain points are cost and compliance",
			},
			Fields:   []string{"customerName", "techStack", "painPoints", "goals", "decisionProcess", "currentVendors"},
			Required: []string{"customerName"},
		},
		{
			ID:          "profile.update",
			Entity:      "profile",
			Operation:   "update",
			Title:       "Update profile",
			Description: "Change fields on a customer's profile",
			Examples: []string{
				"add GCP to Acme's tech stack",
			},
			Fields:   []string{"customerName", "techStack", "painPoints", "goals", "decisionProcess", "currentVendors"},
			Required: []string{"customerName"},
		},
		{
			ID:          "opportunity.create",
			Entity:      "opportunity",
			Operation:   "create",
			Title:       "Create opportunity",
			Description: "Open a new deal for a customer",
			Examples: []string{
				"new opportunity for Acme: cloud migration, about 50k USD",
			},
			Fields: []string{
				"customerName", "name", "description", "estimatedValue", "currency",
				"closeProbability", "expectedCloseDate", "priority", "type", "nextSteps",
			},
			Required: []string{"customerName", "name"},
		},
		{
			ID:          "opportunity.update",
			Entity:      "opportunity",
			Operation:   "update",
			Title:       "Update opportunity",
			Description: "Change fields on an existing opportunity",
			Examples: []string{
				"bump the Acme cloud migration deal to 75k",
			},
			Fields: []string{
				"customerName", "opportunityName", "name", "description", "estimatedValue",
				"currency", "closeProbability", "expectedCloseDate", "priority", "type",
				"competitorNotes", "nextSteps",
			},
			Required: []string{"customerName", "opportunityName"},
		},
		{
			ID:          "opportunity.stage",
			Entity:      "opportunity",
			Operation:   "special",
			Title:       "Change opportunity stage",
			Description: "Move an opportunity to a different pipeline stage",
			Examples: []string{
				"move the Acme cloud migration deal to Propose",
				"Globex renewal fell back to Discover, budget got cut",
			},
			Fields:   []string{"customerName", "opportunityName", "newStage", "notes"},
			Required: []string{"customerName", "opportunityName", "newStage"},
		},
		{
			ID:          "opportunity.list",
			Entity:      "opportunity",
			Operation:   "list",
			Title:       "List opportunities",
			Description: "List a customer's opportunities",
			Examples: []string{
				"what deals do we have with Acme",
			},
			Fields:   []string{"customerName"},
			Required: []string{"customerName"},
		},
		{
			ID:          "product.create",
			Entity:      "product",
			Operation:   "create",
			Title:       "Add product",
			Description: "Register a product, reusing an existing name+version match",
			Examples: []string{
				"add product DataGrid version 3.2",
			},
			Fields:   []string{"name", "version", "category", "description"},
			Required: []string{"name"},
		},
		{
			ID:          "partner.create",
			Entity:      "partner",
			Operation:   "create",
			Title:       "Add partner",
			Description: "Attach a partner organization to a customer",
			Examples: []string{
				"Acme works with Deloitte as their integration partner",
			},
			Fields:   []string{"customerName", "name", "role", "contactInfo"},
			Required: []string{"customerName", "name"},
		},
		{
			ID:          "contact.create",
			Entity:      "contact",
			Operation:   "create",
			Title:       "Add contact",
			Description: "Attach a person to a customer",
			Examples: []string{
				"add Jane Doe, VP Engineering at Acme, jane@acme.example",
			},
			Fields:   []string{"customerName", "name", "title", "email", "phone"},
			Required: []string{"customerName", "name"},
		},
	})
}

// Extraction is the structured result of interpreting one user turn.
// It is created fresh per turn and never mutated; a later extraction
// supersedes rather than patches an earlier one.
type Extraction struct {
	Intent          string                 `json:"intent"`
	Confidence      float64                `json:"confidence"`
	ExtractedData   map[string]interface{} `json:"extractedData"`
	MatchedTemplate *CommandTemplate       `json:"-"`
	TemplateID      string                 `json:"templateId,omitempty"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// Entity returns the target entity, or "" when no template matched.
func (e *Extraction) Entity() string {
	if e.MatchedTemplate == nil {
		return ""
	}
	return e.MatchedTemplate.Entity
}

// Operation returns the target operation, or "" when no template matched.
func (e *Extraction) Operation() string {
	if e.MatchedTemplate == nil {
		return ""
	}
	return e.MatchedTemplate.Operation
}

// Actionable reports whether the extraction can be dispatched, i.e. a
// template matched and it names a mutating or readable operation.
func (e *Extraction) Actionable() bool {
	return e.MatchedTemplate != nil
}
