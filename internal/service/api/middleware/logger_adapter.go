package middleware

import (
	"io"

	applog "github.com/darkkaiser/waitlist-api/pkg/log"
	"github.com/labstack/gommon/log"
)

// Logger Echo의 Logger 인터페이스를 애플리케이션 로거(logrus)로 연결하는 어댑터입니다.
//
// Print, Debug, Info 등 가변 인자 메서드는 임베딩된 로거의 메서드가 그대로 사용되며,
// logrus에 대응 개념이 없는 메서드(Prefix, Header, JSON 출력, 레벨 변환)만 이곳에서 구현합니다.
type Logger struct {
	*applog.Logger
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) Prefix() string {
	return ""
}

// SetPrefix Echo의 Prefix 기능은 사용하지 않는다.
func (l Logger) SetPrefix(string) {}

// SetHeader Echo의 Header 기능은 사용하지 않는다.
func (l Logger) SetHeader(string) {}

// Level 로거의 레벨을 Echo의 로그 레벨로 변환합니다.
// Trace는 Debug로 취급하며, 대응하는 레벨이 없는 Fatal/Panic은 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	default:
		return log.OFF
	}
}

// SetLevel Echo의 로그 레벨을 로거의 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l Logger) Printj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Print()
}

func (l Logger) Debugj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Debug()
}

func (l Logger) Infoj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Info()
}

func (l Logger) Warnj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Warn()
}

func (l Logger) Errorj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Error()
}

func (l Logger) Fatalj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Fatal()
}

func (l Logger) Panicj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Panic()
}
