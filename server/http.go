package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
)

// HTTP HTTP 服务器.
type HTTP struct {
	opts    *httpOptions
	handler http.Handler

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	closed   bool
}

// NewHTTP 创建 HTTP 服务器.
//
// 示例:
//
//	mux := http.NewServeMux()
//	mux.Handle(collector.GetPath(), collector.GetHandler())
//
//	srv, err := server.NewHTTP(mux, server.WithHTTPAddr(":9100"))
func NewHTTP(handler http.Handler, opts ...HTTPOption) (*HTTP, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	o := defaultHTTPOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &HTTP{
		opts:    o,
		handler: handler,
	}, nil
}

// Start 监听并处理请求，阻塞直到 Stop 被调用或监听失败.
func (s *HTTP) Start(_ context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServerClosed
	}

	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
	}
	srv := s.server
	s.mu.Unlock()

	s.opts.logger.Infof("[HTTP] 服务器启动 [addr:%s]", ln.Addr())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅关闭服务器，之后 Start 返回 ErrServerClosed.
func (s *HTTP) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.opts.logger.Debug("[HTTP] 服务器停止中")
	return srv.Shutdown(ctx)
}

// Name 返回服务器名称.
func (s *HTTP) Name() string {
	return "http"
}

// Addr 返回实际监听地址，未启动时返回配置的地址.
func (s *HTTP) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.opts.addr
}

// Handler 返回 HTTP Handler.
func (s *HTTP) Handler() http.Handler {
	return s.handler
}
