//go:build !android

package utils

// EnsureStorageDir 确保偏好存储目录存在（非 Android 平台无需处理）
// gdata 在非 Android 平台上会自动创建存储目录，无需额外处理
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 返回偏好存储路径，非 Android 平台由 gdata 决定，返回空字符串
func GetStoragePath() string {
	return ""
}
