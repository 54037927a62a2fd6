//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 初始化前创建并检查 Android 上的设置目录
//
// gdata 使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录。
func EnsureStorageDir(appName string) error {
	dir := StoragePath(appName)
	if dir == "" {
		return fmt.Errorf("android package name unavailable")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoragePath 返回设置目录，无法识别包名时返回空字符串
func StoragePath(appName string) string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg, appName)
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
