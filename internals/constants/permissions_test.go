package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPermissionMatrix(t *testing.T) {
	grants := []PermissionGrant{
		{Module: ModuleStudents, Actions: []Action{ActionView, ActionCreate}},
		{Module: ModuleFees, Actions: []Action{ActionView}},
	}

	m := BuildPermissionMatrix(grants)

	assert.True(t, m.Can(ModuleStudents, ActionView))
	assert.True(t, m.Can(ModuleStudents, ActionCreate))
	assert.False(t, m.Can(ModuleStudents, ActionDelete))
	assert.True(t, m.Can(ModuleFees, ActionView))
	assert.False(t, m.Can(ModuleReports, ActionView))
}

func TestBuildPermissionMatrixSkipsUnknown(t *testing.T) {
	grants := []PermissionGrant{
		{Module: Module("billing"), Actions: []Action{ActionView}},
		{Module: ModuleStudents, Actions: []Action{Action("approve"), ActionView}},
	}

	m := BuildPermissionMatrix(grants)

	assert.False(t, m.Can(Module("billing"), ActionView))
	assert.False(t, m.Can(ModuleStudents, Action("approve")))
	assert.True(t, m.Can(ModuleStudents, ActionView))
}

func TestBuildPermissionMatrixMergesDuplicateModules(t *testing.T) {
	grants := []PermissionGrant{
		{Module: ModuleFees, Actions: []Action{ActionView}},
		{Module: ModuleFees, Actions: []Action{ActionCreate}},
	}

	m := BuildPermissionMatrix(grants)

	assert.True(t, m.Can(ModuleFees, ActionView))
	assert.True(t, m.Can(ModuleFees, ActionCreate))
}

func TestEmptyMatrixDeniesEverything(t *testing.T) {
	var m PermissionMatrix
	for _, module := range AllModules {
		for _, action := range AllActions {
			assert.False(t, m.Can(module, action))
		}
	}
}

func TestValidModuleAndAction(t *testing.T) {
	assert.True(t, ValidModule(ModuleSchoolSetup))
	assert.False(t, ValidModule(Module("payroll")))
	assert.True(t, ValidAction(ActionExport))
	assert.False(t, ValidAction(Action("archive")))
}
