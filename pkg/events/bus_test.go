package events

import "testing"

// TestBus_PublishSubscribe 测试基本的发布订阅
func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus()

	received := 0
	var lastPersonID string
	bus.Subscribe(EventPulseArrived, func(e Event) {
		received++
		lastPersonID = e.PersonID
	})

	bus.Publish(Event{Type: EventPulseArrived, PersonID: "p1"})

	if received != 1 {
		t.Errorf("订阅者收到 %d 次事件，期望 1 次", received)
	}
	if lastPersonID != "p1" {
		t.Errorf("PersonID = %q，期望 p1", lastPersonID)
	}

	// 其他类型的事件不应派发给本订阅者
	bus.Publish(Event{Type: EventTransitionCompleted})
	if received != 1 {
		t.Errorf("订阅者收到 %d 次事件，期望仍为 1 次", received)
	}
}

// TestBus_MultipleSubscribers 测试多订阅者按注册顺序收到事件
func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(EventPulseCompleted, func(Event) { order = append(order, "first") })
	bus.Subscribe(EventPulseCompleted, func(Event) { order = append(order, "second") })

	bus.Publish(Event{Type: EventPulseCompleted})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("派发顺序 = %v，期望 [first second]", order)
	}
}

// TestBus_PanicIsolation 测试单个订阅者 panic 不影响其余订阅者
func TestBus_PanicIsolation(t *testing.T) {
	bus := NewBus()

	survived := false
	bus.Subscribe(EventTransitionRequested, func(Event) { panic("订阅者出错") })
	bus.Subscribe(EventTransitionRequested, func(Event) { survived = true })

	// 不应向发布方传播 panic
	bus.Publish(Event{Type: EventTransitionRequested})

	if !survived {
		t.Error("panic 之后的订阅者未收到事件")
	}
}

// TestBus_NoSubscribers 测试无订阅者时发布是安全空操作
func TestBus_NoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Type: EventPulseArrived})
}
