package util

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// LogErr logs err at error level on logger with the formatted message and reports whether err was non-nil.
func LogErr(logger logrus.FieldLogger, err error, msg string, args ...interface{}) bool {
	if err == nil {
		return false
	}

	logger.WithError(err).Errorf(msg, args...)
	return true
}

// WarnFirstLogger logs the first `threshold` events of each window as warnings
// and escalates the rest to errors.
type WarnFirstLogger struct {
	logger      logrus.FieldLogger
	warnLimiter *rate.Limiter
}

func NewWarnFirstLogger(threshold int, window time.Duration, logger logrus.FieldLogger) *WarnFirstLogger {
	return &WarnFirstLogger{
		logger:      logger,
		warnLimiter: rate.NewLimiter(rate.Every(window), threshold),
	}
}

func (w *WarnFirstLogger) WarnOrError(err error, msg string, args ...interface{}) {
	log := w.logger
	if err != nil {
		log = log.WithError(err)
	}

	if w.warnLimiter.Allow() {
		log.Warnf(msg, args...)
	} else {
		log.Errorf(msg, args...)
	}
}
