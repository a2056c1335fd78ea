package stockpile

type factory struct{}

// Factory is the public constructor namespace.
var Factory factory

func (f factory) NewRegistry(opts ...Option) *Registry {
	return newRegistry(opts...)
}

func (f factory) NewSchedule(systems ...System) *Schedule {
	return newSchedule(systems...)
}

func (f factory) NewEntityBuilder(r *Registry) *EntityBuilder {
	return NewEntityBuilder(r)
}
