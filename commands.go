package studio

// Commands is handed to modules and systems that need to change the app
// rather than read a resource.
type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

func (cmd *Commands) State() State { return cmd.app.state }

func (cmd *Commands) Logger() Logger { return cmd.app.Logger() }

func (cmd *Commands) Quit() { cmd.app.Quit() }
