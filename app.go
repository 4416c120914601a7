package gridmesh

import (
	"fmt"
	"reflect"
	"runtime"
)

// A Module wires a feature into the app: it registers resources, spawns
// entities and schedules systems.
type Module interface {
	Install(app *App, cmd *Commands)
}

type systemFn any

// App owns the entity store, the shared resources and the staged system
// schedule. Systems are plain functions; their parameters are resolved by
// reflection when the system runs (pointer to a registered resource, or
// *Commands).
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	ecs       *Ecs
	quit      bool

	// Structural changes buffered by Commands, applied between stages.
	pendingAdditions []pendingAdd
	pendingRemovals  []EntityId
	pendingCompAdds  []pendingCompAdd
}

type pendingAdd struct {
	eid        EntityId
	components []any
}

type pendingCompAdd struct {
	eid        EntityId
	components []any
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Run executes the schedule until a system requests an exit via
// Commands.Exit.
func (app *App) Run() {
	for !app.quit {
		app.RunFrame()
	}
}

// RunFrame executes one pass over all stages, flushing buffered commands
// after each stage.
func (app *App) RunFrame() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
}

// UseSystem schedules a system. Typically called from Module.Install.
func (app *App) UseSystem(sched systemScheduleBuilder) *App {
	if _, ok := app.systems[sched.inStage.Name]; !ok {
		panic(fmt.Sprintf("stage %v does not exist", sched.inStage.Name))
	}
	app.systems[sched.inStage.Name] = append(app.systems[sched.inStage.Name], sched.system)
	return app
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("resources must be pointers, got %s", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())
	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("system %s: parameter %d must be a pointer", systemName(systemValue), i))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			panic(fmt.Sprintf("unable to resolve dependency %s of system %s",
				argType, systemName(systemValue)))
		}
	}
	systemValue.Call(args)
}

func systemName(v reflect.Value) string {
	return runtime.FuncForPC(v.Pointer()).Name()
}

// FlushCommands applies buffered entity additions and removals. Removals run
// first so nothing is added to a dead entity.
func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 && len(app.pendingCompAdds) == 0 {
		return
	}

	for _, eid := range app.pendingRemovals {
		app.ecs.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.ecs.insertEntity(add.eid, add.components...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, add := range app.pendingCompAdds {
		app.ecs.addComponents(add.eid, add.components...)
	}
	app.pendingCompAdds = app.pendingCompAdds[:0]
}
