// Package autoload initializes the global logger from the LOG_* environment
// on import:
//
//	import _ "github.com/hostbridge/support-agent/pkg/logger/autoload"
package autoload

import (
	configx "github.com/hostbridge/support-agent/pkg/config"
	logx "github.com/hostbridge/support-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
