package systems

import (
	"testing"

	"github.com/gonewx/constellation/internal/familytree"
	"github.com/gonewx/constellation/pkg/components"
	"github.com/gonewx/constellation/pkg/config"
	"github.com/gonewx/constellation/pkg/ecs"
)

// newTestGraph 构建三代测试家谱：grandpa → {father, aunt}，father → child
func newTestGraph(t *testing.T) *familytree.Graph {
	t.Helper()

	graph, err := familytree.BuildGraph(
		[]familytree.Person{
			{ID: "grandpa", Name: "祖父"},
			{ID: "father", Name: "父亲"},
			{ID: "aunt", Name: "姑姑"},
			{ID: "child", Name: "孩子"},
		},
		[]familytree.Link{
			{Parent: "grandpa", Child: "father"},
			{Parent: "grandpa", Child: "aunt"},
			{Parent: "father", Child: "child"},
		},
	)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	return graph
}

// newTestConstellation 创建实体管理器和星座系统
func newTestConstellation(t *testing.T) (*ecs.EntityManager, *ConstellationSystem) {
	t.Helper()

	em := ecs.NewEntityManager()
	cs := NewConstellationSystem(em, newTestGraph(t))
	return em, cs
}

// TestConstellationSystem_Build 测试实体构建：每人一颗星，每条关系一条连线
func TestConstellationSystem_Build(t *testing.T) {
	em, _ := newTestConstellation(t)

	stars := ecs.EntitiesWith[*components.StarComponent](em)
	if len(stars) != 4 {
		t.Errorf("星实体数 = %d，期望 4", len(stars))
	}

	links := ecs.EntitiesWith[*components.LinkComponent](em)
	if len(links) != 3 {
		t.Errorf("连线实体数 = %d，期望 3", len(links))
	}

	// 所有星和连线都带光晕组件
	for _, id := range stars {
		if !ecs.HasComponent[*components.GlowComponent](em, id) {
			t.Error("星实体缺少 GlowComponent")
		}
	}
	for _, id := range links {
		if !ecs.HasComponent[*components.GlowComponent](em, id) {
			t.Error("连线实体缺少 GlowComponent")
		}
	}
}

// TestConstellationSystem_GenerationLayout 测试世代分行布局
func TestConstellationSystem_GenerationLayout(t *testing.T) {
	_, cs := newTestConstellation(t)

	_, grandpaY, ok := cs.PositionOf("grandpa")
	if !ok {
		t.Fatal("grandpa 应有位置")
	}
	_, fatherY, _ := cs.PositionOf("father")
	_, auntY, _ := cs.PositionOf("aunt")
	_, childY, _ := cs.PositionOf("child")

	if grandpaY != config.ConstellationMarginTop {
		t.Errorf("第 0 代 Y = %v，期望 %v", grandpaY, float64(config.ConstellationMarginTop))
	}
	if fatherY != auntY {
		t.Errorf("同代人物应在同一行: father=%v aunt=%v", fatherY, auntY)
	}
	if !(grandpaY < fatherY && fatherY < childY) {
		t.Errorf("世代行应从上到下递增: %v %v %v", grandpaY, fatherY, childY)
	}
}

// TestConstellationSystem_PositionOf 测试未知人物的查询
func TestConstellationSystem_PositionOf(t *testing.T) {
	_, cs := newTestConstellation(t)

	if _, _, ok := cs.PositionOf("nobody"); ok {
		t.Error("未知人物不应返回位置")
	}
}

// TestConstellationSystem_StarAt 测试点击拾取
func TestConstellationSystem_StarAt(t *testing.T) {
	_, cs := newTestConstellation(t)

	x, y, _ := cs.PositionOf("child")

	if got := cs.StarAt(x, y); got != "child" {
		t.Errorf("星点中心点击 = %q，期望 child", got)
	}

	// 光晕半径内也算命中
	if got := cs.StarAt(x+config.StarRadius*config.StarGlowRadiusScale-1, y); got != "child" {
		t.Errorf("光晕边缘内点击 = %q，期望 child", got)
	}

	// 远离所有星点
	if got := cs.StarAt(-1000, -1000); got != "" {
		t.Errorf("空白处点击 = %q，期望空字符串", got)
	}
}
