//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 1 时桌面端按移动端界面运行（用于本地调试触摸提示）
const MobileEmulateEnv = "FLOWNAV_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时只看 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
