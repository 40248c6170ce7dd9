// Package ecs 提供星座视图使用的轻量实体-组件管理器。
//
// 星座中的星点、连线、虚影和迸发粒子都是实体；
// 动画系统每帧把动画器的数值状态写入对应组件，渲染系统再读取绘制。
package ecs

import "reflect"

// EntityID 实体的唯一标识符
// 0 保留为无效 ID。
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64

	// 实体-组件映射: EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]interface{}

	// 待删除的实体ID列表（延迟到 RemoveMarkedEntities 统一清理）
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除（不立即删除，避免遍历时修改映射）
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 应在每帧所有系统更新完毕后调用一次。
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// HasEntity 检查实体是否存在
func (em *EntityManager) HasEntity(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// AddComponent 为实体添加组件（泛型辅助函数）
// 同类型组件重复添加时后者覆盖前者。
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// GetComponent 获取实体的特定类型组件（泛型辅助函数）
//
// 用法：
//
//	glow, ok := ecs.GetComponent[*components.GlowComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型辅助函数）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// RemoveComponent 从实体移除指定类型的组件（泛型辅助函数）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	if compMap, exists := em.components[id]; exists {
		delete(compMap, reflect.TypeOf(zero))
	}
}

// EntitiesWith 查询拥有指定组件类型的所有实体（泛型辅助函数）
func EntitiesWith[T any](em *EntityManager) []EntityID {
	var zero T
	return em.GetEntitiesWith(reflect.TypeOf(zero))
}
