package deps

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/rootcmd"
)

func ProvideLogFactory(streams rootcmd.IOStreams) LogFactory {
	return &ZapLogFactory{
		streams: streams,
	}
}

type LogFactory interface {
	Logger() logr.Logger
}

type ZapLogFactory struct {
	streams rootcmd.IOStreams
}

func (f *ZapLogFactory) Logger() logr.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(f.streams.ErrOut),
		zapcore.InfoLevel,
	)

	return zapr.NewLogger(zap.New(core))
}
