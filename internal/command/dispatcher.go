package command

import (
	"context"

	"github.com/lumen-crm/assistant-api/internal/auth"
	"github.com/lumen-crm/assistant-api/internal/intent"
	"github.com/lumen-crm/assistant-api/internal/pipeline"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"go.uber.org/zap"
)

// Result is what a successful dispatch returns: a user-facing message and
// optional structured data.
type Result struct {
	Message string
	Data    interface{}
}

// HandlerFunc performs one entity operation after validation has passed.
type HandlerFunc func(ctx context.Context, fields Fields, user auth.UserContext) (*Result, error)

type tableKey struct {
	entity    string
	operation string
}

// Dispatcher validates and routes commands to entity handlers through a
// fixed table keyed by entity and operation. Adding a command is a table
// entry plus a catalog template, not a new switch arm.
type Dispatcher struct {
	customerRepo    *repository.CustomerRepository
	contactRepo     *repository.ContactRepository
	noteRepo        *repository.NoteRepository
	profileRepo     *repository.ProfileRepository
	opportunityRepo *repository.OpportunityRepository
	productRepo     *repository.ProductRepository
	partnerRepo     *repository.PartnerRepository
	pipeline        *pipeline.Pipeline
	logger          *zap.Logger

	table    map[tableKey]HandlerFunc
	entities map[string]bool
	required map[tableKey][]string
}

// NewDispatcher builds the dispatcher and its routing table. Required-field
// lists come from the catalog so validation and extraction stay in sync.
func NewDispatcher(
	catalog *intent.Catalog,
	customerRepo *repository.CustomerRepository,
	contactRepo *repository.ContactRepository,
	noteRepo *repository.NoteRepository,
	profileRepo *repository.ProfileRepository,
	opportunityRepo *repository.OpportunityRepository,
	productRepo *repository.ProductRepository,
	partnerRepo *repository.PartnerRepository,
	pipe *pipeline.Pipeline,
	logger *zap.Logger,
) *Dispatcher {
	d := &Dispatcher{
		customerRepo:    customerRepo,
		contactRepo:     contactRepo,
		noteRepo:        noteRepo,
		profileRepo:     profileRepo,
		opportunityRepo: opportunityRepo,
		productRepo:     productRepo,
		partnerRepo:     partnerRepo,
		pipeline:        pipe,
		logger:          logger,
		table:           make(map[tableKey]HandlerFunc),
		entities:        make(map[string]bool),
		required:        make(map[tableKey][]string),
	}

	d.register("customer", "create", d.createCustomer)
	d.register("customer", "update", d.updateCustomer)
	d.register("customer", "delete", d.deleteCustomer)
	d.register("customer", "search", d.searchCustomers)
	d.register("customer", "list", d.listCustomers)
	d.register("note", "create", d.createNote)
	d.register("note", "update", d.updateNote)
	d.register("note", "list", d.listNotes)
	d.register("profile", "create", d.createProfile)
	d.register("profile", "update", d.updateProfile)
	d.register("opportunity", "create", d.createOpportunity)
	d.register("opportunity", "update", d.updateOpportunity)
	d.register("opportunity", "special", d.changeOpportunityStage)
	d.register("opportunity", "list", d.listOpportunities)
	d.register("product", "create", d.createProduct)
	d.register("partner", "create", d.createPartner)
	d.register("contact", "create", d.createContact)

	for _, tmpl := range catalog.Templates() {
		key := tableKey{entity: tmpl.Entity, operation: tmpl.Operation}
		if _, ok := d.table[key]; ok {
			d.required[key] = tmpl.Required
		}
	}

	return d
}

func (d *Dispatcher) register(entity, operation string, handler HandlerFunc) {
	d.table[tableKey{entity: entity, operation: operation}] = handler
	d.entities[entity] = true
}

// Dispatch validates the command and invokes its handler. Unknown entities
// and unknown operations fail with distinct kinds; a missing required field
// fails before the handler runs, so no partial side effects occur.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	entity string,
	operation string,
	data map[string]interface{},
	user auth.UserContext,
) (*Result, error) {
	if !d.entities[entity] {
		return nil, NewUnknownEntity(entity)
	}

	key := tableKey{entity: entity, operation: operation}
	handler, ok := d.table[key]
	if !ok {
		return nil, NewUnknownOperation(entity, operation)
	}

	fields := Fields(data)
	for _, field := range d.required[key] {
		if !fields.Has(field) {
			return nil, NewMissingRequiredField(field)
		}
	}

	d.logger.Info("Dispatching command",
		zap.String("entity", entity),
		zap.String("operation", operation),
		zap.String("user_id", user.UserID),
	)
	return handler(ctx, fields, user)
}
