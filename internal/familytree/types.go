// Package familytree provides data structures and parsing functionality for
// the constellation's family graph.
//
// This package handles YAML-based family data files that define people and
// parent/child relations, plus graph queries used to build lineage paths for
// the pulse animation.
package familytree

// Person represents a single person in the family graph.
type Person struct {
	// ID is the unique identifier (节点 ID，脉冲路径由这些 ID 组成)
	ID string `yaml:"id"`

	// Name is the display name
	Name string `yaml:"name"`

	// Born is the optional birth year (0 = unknown)
	Born int `yaml:"born,omitempty"`
}

// Link represents a directed parent→child relation.
type Link struct {
	Parent string `yaml:"parent"`
	Child  string `yaml:"child"`
}

// Graph is the parsed family graph with adjacency indexes.
type Graph struct {
	// People 按文件顺序保存所有人物
	People []Person

	// personByID 按 ID 索引人物
	personByID map[string]*Person

	// neighbors 无向邻接表（父母和子女都算相邻）
	neighbors map[string][]string

	// parents / children 有向邻接表，用于世代划分
	parents  map[string][]string
	children map[string][]string
}

// Person returns the person with the given id, or nil.
func (g *Graph) Person(id string) *Person {
	return g.personByID[id]
}

// Neighbors returns the ids directly related to id (parents and children).
func (g *Graph) Neighbors(id string) []string {
	return g.neighbors[id]
}

// Parents returns the parent ids of id.
func (g *Graph) Parents(id string) []string {
	return g.parents[id]
}

// Children returns the child ids of id.
func (g *Graph) Children(id string) []string {
	return g.children[id]
}

// Links returns all parent→child relations in a deterministic order.
func (g *Graph) Links() []Link {
	var links []Link
	for _, p := range g.People {
		for _, child := range g.children[p.ID] {
			links = append(links, Link{Parent: p.ID, Child: child})
		}
	}
	return links
}
