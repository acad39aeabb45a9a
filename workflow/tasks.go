package workflow

import "sort"

// TaskCleanOldApks is the housekeeping task that runs before packaging.
const TaskCleanOldApks = "cleanOldApks"

// Task is an entry in the build's task table.
type Task struct {
	Name        string
	Description string
	DependsOn   []string
}

var taskTable = map[string]Task{
	TaskCleanOldApks: {
		Name:        TaskCleanOldApks,
		Description: "Delete old APK and checksum files before building",
	},
	VariantDebug.TaskName(): {
		Name:        VariantDebug.TaskName(),
		Description: "Package the debug APK",
		DependsOn:   []string{TaskCleanOldApks},
	},
	VariantRelease.TaskName(): {
		Name:        VariantRelease.TaskName(),
		Description: "Package the release APK",
		DependsOn:   []string{TaskCleanOldApks},
	},
}

// Tasks returns the task table sorted by name.
func Tasks() []Task {
	out := make([]Task, 0, len(taskTable))
	for _, t := range taskTable {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupTask returns the named task.
func LookupTask(name string) (Task, bool) {
	t, ok := taskTable[name]
	return t, ok
}

// Prerequisites returns every task that must finish before name, in
// execution order. Unknown tasks have none.
func Prerequisites(name string) []string {
	var order []string
	seen := make(map[string]bool)

	var visit func(string)
	visit = func(n string) {
		for _, dep := range taskTable[n].DependsOn {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			visit(dep)
			order = append(order, dep)
		}
	}
	visit(name)
	return order
}
