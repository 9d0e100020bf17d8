package server

import "errors"

// 预定义错误.
var (
	// ErrServerClosed 服务器已关闭.
	ErrServerClosed = errors.New("server: 服务器已关闭")

	// ErrServerRunning 应用正在运行.
	ErrServerRunning = errors.New("server: 应用正在运行")

	// ErrNoServers 没有注册任何服务器.
	ErrNoServers = errors.New("server: 没有注册任何服务器")

	// ErrNilHandler 处理器为空.
	ErrNilHandler = errors.New("server: handler 不能为空")
)
