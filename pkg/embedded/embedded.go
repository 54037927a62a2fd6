// Package embedded 提供嵌入资源的统一访问接口
//
// Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 因此 embed.FS 变量声明在项目根目录（embed.go）与 mobile/embed.go，
// 本包负责按路径前缀把请求分发到对应的文件系统。
//
// 未调用 Init() 时，*OrDisk 系列函数直接读取磁盘，便于测试和命令行工具使用。
package embedded

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 表示在 Init() 之前访问了嵌入资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置嵌入的文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// Reset 清除初始化状态（测试使用）
func Reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// fsFor 根据路径前缀选择文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func fsFor(path string) (fs.FS, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	path = normalize(path)
	fsys, err := fsFor(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(path)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	path = normalize(path)
	fsys, err := fsFor(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, path)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// OpenOrDisk 优先从嵌入文件系统打开，找不到时回退到磁盘
func OpenOrDisk(path string) (io.ReadCloser, error) {
	if Exists(path) {
		return Open(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ReadFileOrDisk 优先从嵌入文件系统读取，找不到时回退到磁盘
func ReadFileOrDisk(path string) ([]byte, error) {
	if Exists(path) {
		return ReadFile(path)
	}
	return os.ReadFile(path)
}
