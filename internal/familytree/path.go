package familytree

// FindPath returns the shortest relation path between two people as an
// ordered list of person ids (inclusive of both endpoints).
//
// 血缘连线按无向处理：父母和子女都算一步。找不到路径或任一端点
// 不存在时返回 nil。from == to 时返回单元素路径（对脉冲动画而言
// 是退化路径，会立即完成）。
func (g *Graph) FindPath(from, to string) []string {
	if g.personByID[from] == nil || g.personByID[to] == nil {
		return nil
	}
	if from == to {
		return []string{from}
	}

	// 广度优先搜索，记录每个节点的前驱
	previous := map[string]string{from: ""}
	queue := []string{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.neighbors[current] {
			if _, visited := previous[next]; visited {
				continue
			}
			previous[next] = current

			if next == to {
				return g.reconstruct(previous, to)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// reconstruct 沿前驱链回溯并反转出正向路径
func (g *Graph) reconstruct(previous map[string]string, to string) []string {
	var reversed []string
	for id := to; id != ""; id = previous[id] {
		reversed = append(reversed, id)
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

// Generations assigns each person a generation row: people with no parents
// are generation 0, every child is one deeper than its deepest parent.
//
// 返回 ID → 世代号的映射，供星座布局按行摆放。循环血缘数据会被
// 解析器接受（校验不检测环），这里用迭代松弛并限制轮数防止死循环。
func (g *Graph) Generations() map[string]int {
	generations := make(map[string]int, len(g.People))
	for _, p := range g.People {
		generations[p.ID] = 0
	}

	// 最多 len(People) 轮即可收敛；超过说明存在环，保持当前近似值
	for round := 0; round < len(g.People); round++ {
		changed := false
		for _, p := range g.People {
			for _, parent := range g.parents[p.ID] {
				if generations[p.ID] < generations[parent]+1 {
					generations[p.ID] = generations[parent] + 1
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return generations
}
