package constants

// Module and Action are closed sets; permission checks go through the typed
// matrix below instead of comparing free-form strings.

type Module string

const (
	ModuleSchoolSetup   Module = "school_setup"
	ModuleStudents      Module = "students"
	ModuleTeachers      Module = "teachers"
	ModuleAcademics     Module = "academics"
	ModuleFees          Module = "fees"
	ModuleCommunication Module = "communication"
	ModuleReports       Module = "reports"
	ModuleUsers         Module = "users"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

var AllModules = []Module{
	ModuleSchoolSetup,
	ModuleStudents,
	ModuleTeachers,
	ModuleAcademics,
	ModuleFees,
	ModuleCommunication,
	ModuleReports,
	ModuleUsers,
}

var AllActions = []Action{
	ActionView,
	ActionCreate,
	ActionUpdate,
	ActionDelete,
	ActionExport,
}

// ValidModule reports whether m belongs to the closed module set.
func ValidModule(m Module) bool {
	for _, known := range AllModules {
		if m == known {
			return true
		}
	}
	return false
}

func ValidAction(a Action) bool {
	for _, known := range AllActions {
		if a == known {
			return true
		}
	}
	return false
}

// PermissionGrant is one stored grant: a module plus the actions allowed on it.
type PermissionGrant struct {
	Module  Module   `json:"module"`
	Actions []Action `json:"actions"`
}

// PermissionMatrix answers Can(module, action) in O(1).
type PermissionMatrix map[Module]map[Action]bool

func BuildPermissionMatrix(grants []PermissionGrant) PermissionMatrix {
	m := make(PermissionMatrix, len(grants))
	for _, g := range grants {
		if !ValidModule(g.Module) {
			continue
		}
		set := m[g.Module]
		if set == nil {
			set = make(map[Action]bool, len(g.Actions))
			m[g.Module] = set
		}
		for _, a := range g.Actions {
			if ValidAction(a) {
				set[a] = true
			}
		}
	}
	return m
}

func (m PermissionMatrix) Can(module Module, action Action) bool {
	return m[module][action]
}
