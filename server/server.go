// Package server 管理辅助服务器（如指标 HTTP 服务）的生命周期.
//
// 示例：
//
//	httpSrv, _ := server.NewHTTP(mux, server.WithHTTPAddr(":9100"))
//
//	app := server.NewApp(
//	    server.WithName("ringdemo"),
//	    server.WithLogger(log),
//	)
//	app.Use(httpSrv)
//	err := app.Run(ctx)
package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
)

// Server 服务器接口.
type Server interface {
	// Start 启动服务器（阻塞）.
	Start(ctx context.Context) error

	// Stop 停止服务器.
	Stop(ctx context.Context) error

	// Name 服务器名称.
	Name() string

	// Addr 服务器地址.
	Addr() string
}

// App 应用程序，管理多个服务器的生命周期.
type App struct {
	opts    *appOptions
	servers []Server
	mu      sync.Mutex
	running bool
}

// NewApp 创建应用程序.
func NewApp(opts ...AppOption) *App {
	o := defaultAppOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &App{opts: o}
}

// Use 注册服务器.
//
// 支持链式调用.
func (a *App) Use(servers ...Server) *App {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.servers = append(a.servers, servers...)
	return a
}

// Run 启动全部服务器并阻塞.
//
// ctx 取消、收到关闭信号或任一服务器启动失败时优雅关闭全部服务器，
// 返回第一个启动失败的错误.
func (a *App) Run(ctx context.Context) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrServerRunning
	}
	if len(a.servers) == 0 {
		a.mu.Unlock()
		return ErrNoServers
	}
	a.running = true
	servers := append([]Server(nil), a.servers...)
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	ctx, stop := signal.NotifyContext(ctx, a.opts.signals...)
	defer stop()

	log := a.opts.logger
	log.Infof("[App] 应用启动 [name:%s]", a.opts.name)

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(s Server) {
			if err := s.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Debug("[App] 收到关闭信号")
	case runErr = <-errCh:
		log.Errorf("[App] 服务器启动失败: %v", runErr)
	}

	a.shutdown(servers)
	return runErr
}

// shutdown 并发停止全部服务器，超过 gracefulTimeout 后放弃等待.
func (a *App) shutdown(servers []Server) {
	log := a.opts.logger

	ctx, cancel := context.WithTimeout(context.Background(), a.opts.gracefulTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(s Server) {
			defer wg.Done()
			if err := s.Stop(ctx); err != nil {
				log.Errorf("[App] 服务器停止失败 [name:%s] [error:%v]", s.Name(), err)
			}
		}(srv)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Infof("[App] 应用已关闭 [name:%s]", a.opts.name)
	case <-ctx.Done():
		log.Warn("[App] 关闭超时")
	}
}
