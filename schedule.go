package gridmesh

// Stages run in a fixed order every frame; systems within a stage run in
// registration order.
type Stage struct {
	Name string
}

var (
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
)

var defaultStages = []Stage{PreUpdate, Update, PostUpdate, PreRender, Render, PostRender}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

// System starts a schedule entry for the given function, defaulting to the
// Update stage.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}
