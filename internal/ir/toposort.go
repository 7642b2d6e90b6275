package ir

// topoSort produces a stable topological order over resources: for any
// resource R, every resource named in R.References ∪ R.Dependencies appears
// earlier (spec.md §3's invariant, §4.2 step 5). Ties are broken by
// original document order, matching "among resources with no remaining
// dependencies, emit them in their source order."
func topoSort(resources []ResourceInstruction) ([]ResourceInstruction, error) {
	byName := make(map[string]int, len(resources))
	for i, r := range resources {
		byName[r.Name] = i
	}

	deps := make([][]string, len(resources))
	for i, r := range resources {
		seen := map[string]struct{}{}
		var d []string
		add := func(name string) {
			if name == r.Name {
				return
			}
			if _, ok := byName[name]; !ok {
				return
			}
			if _, dup := seen[name]; dup {
				return
			}
			seen[name] = struct{}{}
			d = append(d, name)
		}
		for name := range r.References {
			add(name)
		}
		for _, name := range r.Dependencies {
			add(name)
		}
		deps[i] = d
	}

	done := make([]bool, len(resources))
	out := make([]ResourceInstruction, 0, len(resources))

	for len(out) < len(resources) {
		progressed := false
		for i, r := range resources {
			if done[i] {
				continue
			}
			if allDone(deps[i], byName, done) {
				out = append(out, r)
				done[i] = true
				progressed = true
				break
			}
		}
		if !progressed {
			return nil, newLowerError(CyclicDependency, "Resources", "cycle detected among: %v", remainingNames(resources, done))
		}
	}
	return out, nil
}

func allDone(deps []string, byName map[string]int, done []bool) bool {
	for _, d := range deps {
		if !done[byName[d]] {
			return false
		}
	}
	return true
}

func remainingNames(resources []ResourceInstruction, done []bool) []string {
	var names []string
	for i, r := range resources {
		if !done[i] {
			names = append(names, r.Name)
		}
	}
	return names
}
