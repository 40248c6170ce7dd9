// Package events 提供一个极简的进程内发布/订阅总线。
//
// 用于解耦动画系统之间的触发关系（例如脉冲到达 → 启动传记变形动画），
// 避免用进程级可变变量做跨系统协调。总线为单线程设计，
// 与动画器一样由渲染循环驱动，不做任何并发保护。
package events

import "log"

// EventType 事件类型标识
type EventType string

const (
	// EventPulseArrived 脉冲前沿到达路径终点
	EventPulseArrived EventType = "pulse:arrived"

	// EventPulseCompleted 脉冲动画（含呼吸阶段）完全结束
	EventPulseCompleted EventType = "pulse:completed"

	// EventTransitionRequested 请求对某个人物节点播放传记变形动画
	EventTransitionRequested EventType = "transition:requested"

	// EventTransitionCompleted 传记变形动画播放完毕
	EventTransitionCompleted EventType = "transition:completed"
)

// Event 一条事件及其负载
type Event struct {
	Type EventType

	// PersonID 相关人物节点 ID（可为空）
	PersonID string
}

// Handler 事件处理函数
type Handler func(Event)

// Bus 事件总线
// 零值不可用，必须通过 NewBus 创建。
type Bus struct {
	handlers map[EventType][]Handler
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe 订阅指定类型的事件
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish 同步分发事件给所有订阅者
//
// 与动画器的回调不同，总线会隔离订阅者的 panic：
// 单个订阅者出错只记录日志，不影响其余订阅者和发布方。
func (b *Bus) Publish(event Event) {
	for _, handler := range b.handlers[event.Type] {
		b.safeCall(handler, event)
	}
}

// safeCall 调用单个订阅者并吞掉 panic
func (b *Bus) safeCall(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EventBus] 订阅者处理 %s 时 panic: %v", event.Type, r)
		}
	}()
	handler(event)
}
