package studio

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module adds resources and systems to an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	stateful           bool
	stateTransitioning bool
	initialState       State
	finalState         State
	nextState          State
	state              State
	started            bool
	finished           bool
	quitRequested      bool
	stages             []Stage
	systems            map[string]map[State]map[statePhase][]systemFn
	systemsStateless   map[string][]systemFn
	resources          map[reflect.Type]any
	closers            []func()
}

func newApp() *App {
	return &App{
		stages:           defaultStages(),
		systems:          make(map[string]map[State]map[statePhase][]systemFn),
		systemsStateless: make(map[string][]systemFn),
		resources:        make(map[reflect.Type]any),
	}
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

func (app *App) State() State { return app.state }

func (app *App) Finished() bool { return app.finished }

// Step runs one frame: every stage in order, then any pending state change.
// It reports whether the app is still running afterwards.
func (app *App) Step() bool {
	if app.finished {
		return false
	}
	if !app.started {
		app.started = true
		if app.stateful {
			app.state = app.initialState
			app.callSystems(app.state, enter)
		}
	}

	app.callSystems(app.state, execute)

	if app.stateful {
		if app.stateTransitioning {
			app.stateTransitioning = false
			app.executeChangeState(app.nextState)
		}
		if app.state == app.finalState {
			app.callSystems(app.state, exit)
			app.finish()
		}
	} else if app.quitRequested {
		app.finish()
	}
	return !app.finished
}

func (app *App) Run() {
	app.Logger().Debugf("running with %d stages", len(app.stages))
	for app.Step() {
	}
}

// Quit ends the run after the current frame. A stateful app moves to its
// final state first so exit systems get to run.
func (app *App) Quit() {
	if app.stateful {
		app.changeState(app.finalState)
		return
	}
	app.quitRequested = true
}

// OnClose registers fn to run once when the app finishes, last registered
// first.
func (app *App) OnClose(fn func()) {
	app.closers = append(app.closers, fn)
}

func (app *App) finish() {
	app.finished = true
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
	app.closers = nil
}

func (app *App) callSystems(state State, phase statePhase) {
	for _, stage := range app.stages {
		// On execute, call stateless/always run systems first
		if execute == phase {
			for _, system := range app.systemsStateless[stage.Name] {
				app.callSystem(system)
			}
		}

		if app.stateful {
			for _, system := range app.systems[stage.Name][state][phase] {
				app.callSystem(system)
			}
		}
	}
}

func (app *App) changeState(newState State) {
	app.nextState = newState
	app.stateTransitioning = true
}

func (app *App) executeChangeState(newState State) {
	if newState == app.state {
		return
	}
	app.Logger().Debugf("state %d -> %d", app.state, newState)
	app.callSystems(app.state, exit)
	app.state = newState
	app.callSystems(app.state, enter)
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the resource of type *T if one was added.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.unresolved(systemValue, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			app.unresolved(systemValue, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(system reflect.Value, dependency reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(system.Pointer()).Name(),
		system.Type(),
		dependency,
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
