package library

// Module binds a Schema to its routing table without copying either.
type Module struct {
	schema Schema
	routes Route
}

// NewModule constructs a Module.
func NewModule(schema Schema, routes Route) Module {
	return Module{schema: schema, routes: routes}
}

// Schema returns the module's schema, returned by /lib.
func (m Module) Schema() Schema { return m.schema }

// Routes returns the module's root routing table.
func (m Module) Routes() Route { return m.routes }
