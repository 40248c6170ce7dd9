package embedded

import (
	"embed"
	"testing"
)

// 真正的资源嵌入在项目根目录的 embed.go 中，
// 这里用空的 embed.FS 测试接口行为（前缀路由、初始化检查）。

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Init() 之前 IsInitialized() 应为 false")
	}

	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	if !IsInitialized() {
		t.Error("Init() 之后 IsInitialized() 应为 true")
	}

	initialized = false
}

// TestNotInitialized 测试未初始化时的错误返回
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("assets/config/animation.yaml"); err == nil {
		t.Error("未初始化时 Open 应返回错误")
	}
	if _, err := ReadFile("data/family.yaml"); err == nil {
		t.Error("未初始化时 ReadFile 应返回错误")
	}
	if Exists("data/family.yaml") {
		t.Error("未初始化时 Exists 应为 false")
	}
}

// TestUnknownPrefix 测试非法路径前缀的拒绝
func TestUnknownPrefix(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	if _, err := ReadFile("config/animation.yaml"); err == nil {
		t.Error("未知前缀应返回错误")
	}
	if _, err := Open("/etc/passwd"); err == nil {
		t.Error("绝对路径应返回错误")
	}
}

// TestPathNormalization 测试 "./" 前缀和反斜杠的标准化
func TestPathNormalization(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS, emptyFS)
	defer func() { initialized = false }()

	// 标准化后前缀合法，空 FS 中文件不存在，错误应来自 FS 而非前缀路由
	_, err := ReadFile("./data/family.yaml")
	if err == nil {
		t.Fatal("空 FS 中读取应失败")
	}
	if got := err.Error(); got == "unknown resource path prefix: ./data/family.yaml (must start with 'assets/' or 'data/')" {
		t.Error("\"./\" 前缀应在路由前被剥离")
	}
}
