// Package animators 提供星座视图的纯计算动画内核。
//
// 包内的动画器都是单线程、由外部逐帧驱动的状态机：
//   - PathPulseAnimator：光脉冲沿血缘路径逐跳行进
//   - BiographyTransitionAnimator：人物节点的五阶段变形动画
//
// 动画器不做任何 I/O，不持有计时器，也不感知渲染层。
// 调用方（场景适配系统）每帧调用 Update(dt) 推进时间，
// 再通过查询方法读取纯数值状态映射到可渲染对象上。
package animators
