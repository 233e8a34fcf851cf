// Package logger 全局 zap 日志。
//
// 库代码只记录非敏感元数据 (曲线、KDF、路径、Keystore ID)；
// 私钥、种子、助记词和密码只能通过 Redacted 记录长度。
package logger

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// Init 按环境构建全局 logger。production 输出 JSON，其余输出带颜色的控制台格式。
func Init(env string) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	Log = l.With(zap.String("app", "wallet-keycore"))
	zap.ReplaceGlobals(Log)
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Log.Sync()
}

// Component 返回带 component 字段的子 logger，每次调用时读取当前的全局 logger
func Component(name string) *zap.Logger {
	return Log.WithOptions(zap.AddCallerSkip(-1)).With(zap.String("component", name))
}

// Redacted 只记录敏感数据的长度
func Redacted(key string, secret []byte) zap.Field {
	return zap.String(key, fmt.Sprintf("<redacted %d bytes>", len(secret)))
}

// PubKey 记录公钥的前 8 字节 (Hex)，足够在日志中区分密钥
func PubKey(key string, pub []byte) zap.Field {
	if len(pub) > 8 {
		return zap.String(key, hex.EncodeToString(pub[:8])+"…")
	}
	return zap.String(key, hex.EncodeToString(pub))
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}
