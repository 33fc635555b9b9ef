package studio

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

type callLog struct {
	calls []string
}

func (l *callLog) system(name string) func(*callLog) {
	return func(log *callLog) { log.calls = append(log.calls, name) }
}

func TestApp_changeState(t *testing.T) {
	app := &App{
		stateful:     true,
		initialState: 1,
		state:        1,
		finalState:   2,
	}

	app.changeState(2)
	if app.nextState != State(2) {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	app.executeChangeState(2)
	if app.state != State(2) {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)
	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_addResourcesRejectsValues(t *testing.T) {
	app := newApp()
	assert.Panics(t, func() { app.addResources(MockResource1{}) })
}

func TestApp_StatelessStepAndQuit(t *testing.T) {
	app := NewAppBuilder().Build()
	log := &callLog{}
	app.addResources(log)
	app.UseSystem(System(log.system("update")))
	app.UseSystem(System(log.system("pre")).InStage(PreUpdate))
	app.UseSystem(System(log.system("post")).InStage(PostUpdate))

	assert.True(t, app.Step())
	assert.Equal(t, []string{"pre", "update", "post"}, log.calls)

	app.Quit()
	assert.False(t, app.Step())
	assert.True(t, app.Finished())
	assert.False(t, app.Step(), "a finished app does not run again")
	assert.Len(t, log.calls, 6)
}

func TestApp_StatefulLifecycle(t *testing.T) {
	app := NewAppBuilder().UseStates(ViewGallery, ViewClosed).Build()
	log := &callLog{}
	app.addResources(log)
	app.UseSystem(System(log.system("enter gallery")).InState(OnEnter(ViewGallery)))
	app.UseSystem(System(log.system("exit gallery")).InState(OnExit(ViewGallery)))
	app.UseSystem(System(log.system("enter editor")).InState(OnEnter(ViewEditor)))
	app.UseSystem(System(log.system("editor")).InState(OnExecute(ViewEditor)))
	app.UseSystem(System(log.system("exit editor")).InState(OnExit(ViewEditor)))
	app.UseSystem(System(log.system("always")).RunAlways())

	app.Step()
	assert.Equal(t, []string{"enter gallery", "always"}, log.calls)

	log.calls = nil
	app.Commands().ChangeState(ViewEditor)
	app.Step()
	assert.Equal(t, []string{"always", "exit gallery", "enter editor"}, log.calls)
	assert.Equal(t, ViewEditor, app.State())

	log.calls = nil
	app.Step()
	assert.Equal(t, []string{"always", "editor"}, log.calls)

	log.calls = nil
	app.Quit()
	assert.False(t, app.Step())
	assert.Equal(t, []string{"always", "editor", "exit editor"}, log.calls)
	assert.Equal(t, ViewClosed, app.State())
}

func TestApp_OnCloseRunsInReverseOnce(t *testing.T) {
	app := NewAppBuilder().Build()
	var order []int
	app.OnClose(func() { order = append(order, 1) })
	app.OnClose(func() { order = append(order, 2) })

	app.Quit()
	app.Step()
	app.Step()
	assert.Equal(t, []int{2, 1}, order)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource1) {}))
	assert.Panics(t, func() { app.Step() })
}

func TestApp_UseStage(t *testing.T) {
	app := NewAppBuilder().Build()
	first := Stage{Name: "First"}
	app.UseStage(first, BeforeStage(PreUpdate))
	log := &callLog{}
	app.addResources(log)
	app.UseSystem(System(log.system("pre")).InStage(PreUpdate))
	app.UseSystem(System(log.system("first")).InStage(first))

	app.Step()
	assert.Equal(t, []string{"first", "pre"}, log.calls)

	assert.Panics(t, func() { app.UseStage(Stage{Name: "X"}, AfterStage(Stage{Name: "missing"})) })
	assert.Panics(t, func() { app.UseSystem(System(log.system("x")).InStage(Stage{Name: "missing"})) })
}

func TestApp_StatefulSystemInStatelessAppPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.Panics(t, func() {
		app.UseSystem(System(func() {}).InState(OnEnter(ViewEditor)))
	})
}
