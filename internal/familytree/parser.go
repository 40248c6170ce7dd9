package familytree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat mirrors the on-disk YAML structure.
type fileFormat struct {
	People []Person `yaml:"people"`
	Links  []Link   `yaml:"links"`
}

// LoadGraph parses a family data YAML file and returns the indexed graph.
//
// Parameters:
//   - path: File path to the family YAML file
//
// Returns:
//   - *Graph: Parsed graph with adjacency indexes built
//   - error: Any error encountered during reading, parsing or validation
//
// Example usage:
//
//	graph, err := familytree.LoadGraph("data/family.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read family file %s: %w", path, err)
	}

	graph, err := ParseGraph(data)
	if err != nil {
		return nil, fmt.Errorf("invalid family data in %s: %w", path, err)
	}
	return graph, nil
}

// ParseGraph parses family YAML bytes and returns the indexed graph.
// 供加载层在磁盘文件和嵌入资源之间复用同一套解析逻辑。
func ParseGraph(data []byte) (*Graph, error) {
	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse family YAML: %w", err)
	}
	return BuildGraph(file.People, file.Links)
}

// BuildGraph validates people/links and builds the adjacency indexes.
//
// 校验规则：
//   - 人物 ID 非空且不重复
//   - 连线两端的 ID 都必须存在
//   - 不允许自环（parent == child）
func BuildGraph(people []Person, links []Link) (*Graph, error) {
	g := &Graph{
		People:     people,
		personByID: make(map[string]*Person, len(people)),
		neighbors:  make(map[string][]string),
		parents:    make(map[string][]string),
		children:   make(map[string][]string),
	}

	for i := range g.People {
		p := &g.People[i]
		if p.ID == "" {
			return nil, fmt.Errorf("person at index %d has empty id", i)
		}
		if _, exists := g.personByID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate person id %q", p.ID)
		}
		g.personByID[p.ID] = p
	}

	for _, link := range links {
		if g.personByID[link.Parent] == nil {
			return nil, fmt.Errorf("link references unknown parent %q", link.Parent)
		}
		if g.personByID[link.Child] == nil {
			return nil, fmt.Errorf("link references unknown child %q", link.Child)
		}
		if link.Parent == link.Child {
			return nil, fmt.Errorf("self link on %q", link.Parent)
		}

		g.children[link.Parent] = append(g.children[link.Parent], link.Child)
		g.parents[link.Child] = append(g.parents[link.Child], link.Parent)
		g.neighbors[link.Parent] = append(g.neighbors[link.Parent], link.Child)
		g.neighbors[link.Child] = append(g.neighbors[link.Child], link.Parent)
	}

	return g, nil
}
