package config

import "sort"

// detectCycle returns the themes participating in an extends cycle, or nil
// if the inheritance graph is acyclic.
func detectCycle(parents map[string]string) []string {
	visiting := make(map[string]bool, len(parents))
	visited := make(map[string]bool, len(parents))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		if parent, ok := parents[node]; ok && parent != "" && !visited[parent] {
			if visiting[parent] {
				idx := indexOf(stack, parent)
				if idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, parent)
				}
				return true
			}
			if dfs(parent) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(parents))
	for name := range parents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
