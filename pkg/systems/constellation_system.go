package systems

import (
	"log"
	"math"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/animators"
	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/ecs"
)

// ConstellationSystem 负责把家谱图构建为星座实体
//
// 每个人物生成一颗星（StarComponent + PositionComponent + GlowComponent），
// 每条血缘关系生成一条连线（LinkComponent + GlowComponent）。
// 布局按世代分行：最早一代在最上方，同代人物水平均匀排布。
type ConstellationSystem struct {
	entityManager *ecs.EntityManager
	graph         *familytree.Graph

	// starEntities 人物 ID → 星实体
	starEntities map[string]ecs.EntityID
}

// NewConstellationSystem 创建星座构建系统并立即生成实体
func NewConstellationSystem(em *ecs.EntityManager, graph *familytree.Graph) *ConstellationSystem {
	cs := &ConstellationSystem{
		entityManager: em,
		graph:         graph,
		starEntities:  make(map[string]ecs.EntityID),
	}
	cs.build()
	return cs
}

// build 生成星点和连线实体
func (cs *ConstellationSystem) build() {
	generations := cs.graph.Generations()

	// 统计每个世代的人数，用于水平均匀排布
	rowCounts := make(map[int]int)
	rowIndex := make(map[string]int)
	for _, p := range cs.graph.People {
		gen := generations[p.ID]
		rowIndex[p.ID] = rowCounts[gen]
		rowCounts[gen]++
	}

	for _, p := range cs.graph.People {
		gen := generations[p.ID]
		count := rowCounts[gen]

		// 该行整体居中：第 i 个节点相对行中心偏移
		offset := (float64(rowIndex[p.ID]) - float64(count-1)/2) * config.SiblingSpacingX

		id := cs.entityManager.CreateEntity()
		ecs.AddComponent(cs.entityManager, id, &components.StarComponent{
			PersonID:   p.ID,
			Name:       p.Name,
			Generation: gen,
			Radius:     config.StarRadius,
		})
		ecs.AddComponent(cs.entityManager, id, &components.PositionComponent{
			X: float64(config.ScreenWidth)/2 + offset,
			Y: config.ConstellationMarginTop + float64(gen)*config.GenerationSpacingY,
		})
		ecs.AddComponent(cs.entityManager, id, &components.GlowComponent{})

		cs.starEntities[p.ID] = id
	}

	for _, link := range cs.graph.Links() {
		id := cs.entityManager.CreateEntity()
		ecs.AddComponent(cs.entityManager, id, &components.LinkComponent{
			ParentID: link.Parent,
			ChildID:  link.Child,
			Key:      animators.EdgeKey(link.Parent, link.Child),
		})
		ecs.AddComponent(cs.entityManager, id, &components.GlowComponent{})
	}

	log.Printf("[ConstellationSystem] 构建完成: %d 人，%d 条血缘连线",
		len(cs.graph.People), len(cs.graph.Links()))
}

// Graph 返回底层家谱图
func (cs *ConstellationSystem) Graph() *familytree.Graph {
	return cs.graph
}

// StarEntity 返回人物对应的星实体 ID，不存在时返回 0
func (cs *ConstellationSystem) StarEntity(personID string) ecs.EntityID {
	return cs.starEntities[personID]
}

// PositionOf 返回人物节点的世界坐标
// 人物不存在时返回 (0, 0) 和 false。
func (cs *ConstellationSystem) PositionOf(personID string) (x, y float64, ok bool) {
	id, exists := cs.starEntities[personID]
	if !exists {
		return 0, 0, false
	}
	pos, found := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
	if !found {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}

// StarAt 返回屏幕坐标命中的人物 ID（点击拾取）
// 命中判定半径为节点半径的光晕倍数，未命中返回空字符串。
func (cs *ConstellationSystem) StarAt(x, y float64) string {
	for personID, id := range cs.starEntities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
		if !ok {
			continue
		}
		star, ok := ecs.GetComponent[*components.StarComponent](cs.entityManager, id)
		if !ok {
			continue
		}

		hitRadius := star.Radius * config.StarGlowRadiusScale
		if math.Hypot(x-pos.X, y-pos.Y) <= hitRadius {
			return personID
		}
	}
	return ""
}
