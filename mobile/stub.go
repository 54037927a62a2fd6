//go:build !mobile

// Package mobile 的桌面端占位
//
// ebitenmobile 绑定代码在 mobile.go 和 embed.go 中，仅在 -tags mobile 时编译。
package mobile

// Dummy 与移动端保持一致的导出函数
func Dummy() {}
