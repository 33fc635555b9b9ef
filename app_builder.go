package studio

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: newApp()}
}

// UseStates makes the app stateful. States run from initialState to
// finalState; reaching finalState ends the run.
func (b *AppBuilder) UseStates(initialState State, finalState State) *AppBuilder {
	b.app.stateful = true
	b.app.initialState = initialState
	b.app.finalState = finalState
	b.app.state = initialState

	return b
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) Build() *App {
	app := b.app
	for _, stage := range app.stages {
		app.initStage(stage)
	}

	commands := app.Commands()
	for _, module := range b.modules {
		module.Install(app, commands)
	}

	return app
}
