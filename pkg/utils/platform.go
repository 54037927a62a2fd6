//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端方式运行（本地调试触摸布局）
const MobileEmulateEnv = "SOLAR_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时只受 MobileEmulateEnv 控制
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
