// Package staticlog 进程级日志
// 核心计算不打日志, 只有命令行入口和配置加载会用到
package staticlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 包级 logger, 默认 stderr + info
var Log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Init 按配置重设级别与输出, file 非空时写滚动文件
func Init(level, file string, maxSizeMB int) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lv)

	var out io.Writer = os.Stderr
	if file != "" {
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		}
	}
	Log.SetOutput(out)
	return nil
}
