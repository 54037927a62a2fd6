// Package texture 异步加载天体纹理
//
// 图片解码在后台 goroutine 中完成（由 errgroup 限制并发数），
// 解码结果通过 Handle 发布；上传为 *ebiten.Image 的步骤延迟到游戏线程
// 第一次调用 Handle.Image() 时执行。
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// State 纹理加载状态
type State int

const (
	// StatePending 正在加载
	StatePending State = iota
	// StateLoaded 已解码，可以使用
	StateLoaded
	// StateFailed 加载失败，调用方应使用占位材质
	StateFailed
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Handle 单个纹理的加载句柄
type Handle struct {
	path string
	done chan struct{}

	mu      sync.Mutex
	state   State
	decoded image.Image
	img     *ebiten.Image
	err     error
}

func newHandle(path string) *Handle {
	return &Handle{
		path:  path,
		done:  make(chan struct{}),
		state: StatePending,
	}
}

// Path 返回纹理路径
func (h *Handle) Path() string {
	return h.path
}

// State 返回当前加载状态
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Err 返回加载失败的原因，未失败时为 nil
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Done 返回在加载结束（成功或失败）时关闭的 channel
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Image 返回可用于绘制的纹理
//
// 仅在 StateLoaded 时返回 true。首次调用会把解码结果上传为 ebiten.Image，
// 因此必须在游戏线程（Update/Draw）中调用。
func (h *Handle) Image() (*ebiten.Image, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateLoaded {
		return nil, false
	}
	if h.img == nil && h.decoded != nil {
		h.img = ebiten.NewImageFromImage(h.decoded)
		h.decoded = nil
	}
	return h.img, h.img != nil
}

// Size 返回已解码纹理的像素尺寸，未加载时返回 0, 0
func (h *Handle) Size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case h.img != nil:
		b := h.img.Bounds()
		return b.Dx(), b.Dy()
	case h.decoded != nil:
		b := h.decoded.Bounds()
		return b.Dx(), b.Dy()
	}
	return 0, 0
}

func (h *Handle) complete(img image.Image, err error) {
	h.mu.Lock()
	if err != nil {
		h.state = StateFailed
		h.err = err
	} else {
		h.state = StateLoaded
		h.decoded = img
	}
	h.mu.Unlock()
	close(h.done)
}

// OpenFunc 打开纹理文件
type OpenFunc func(path string) (io.ReadCloser, error)

// Loader 纹理加载器，按路径缓存句柄
//
// 并发数达到上限时新的请求进入队列，由 Poll 在后续帧中派发，
// 调用 Load 的游戏线程永远不会阻塞。
type Loader struct {
	open  OpenFunc
	group errgroup.Group

	mu      sync.Mutex
	handles map[string]*Handle
	queue   []*Handle
}

// NewLoader 创建纹理加载器
//
// 参数：
//   - open: 打开纹理文件的函数
//   - limit: 同时解码的最大数量，<= 0 表示不限制
func NewLoader(open OpenFunc, limit int) *Loader {
	l := &Loader{
		open:    open,
		handles: make(map[string]*Handle),
	}
	if limit > 0 {
		l.group.SetLimit(limit)
	}
	return l
}

// Load 开始异步加载纹理并立即返回句柄
// 同一路径重复调用返回同一个句柄
func (l *Loader) Load(path string) *Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.handles[path]; ok {
		return h
	}

	h := newHandle(path)
	l.handles[path] = h
	if !l.group.TryGo(l.task(h)) {
		l.queue = append(l.queue, h)
	}
	return h
}

// Poll 派发排队中的加载请求，返回仍在排队的数量
// 每帧由游戏线程调用
func (l *Loader) Poll() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for len(l.queue) > 0 {
		if !l.group.TryGo(l.task(l.queue[0])) {
			break
		}
		l.queue = l.queue[1:]
	}
	return len(l.queue)
}

// Wait 等待所有已派发的加载结束，返回第一个失败的错误
//
// 仍在排队的请求不会被等待；关闭前应先调用 Poll 直到返回 0。
func (l *Loader) Wait() error {
	return l.group.Wait()
}

// Handles 返回所有句柄的快照
func (l *Loader) Handles() []*Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Handle, 0, len(l.handles))
	for _, h := range l.handles {
		out = append(out, h)
	}
	return out
}

func (l *Loader) task(h *Handle) func() error {
	return func() error {
		img, err := l.decode(h.path)
		h.complete(img, err)
		return err
	}
}

func (l *Loader) decode(path string) (image.Image, error) {
	r, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}
