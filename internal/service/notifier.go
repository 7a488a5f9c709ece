package service

import (
	"context"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
	"go.uber.org/zap"
)

// LogNotifier writes notices to the log. It serves sessions that have no
// interactive channel, like API clients.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notice models.Notice) {
	if notice.Kind == models.NoticeError {
		n.log.Warn(notice.Text, zap.String("notice", string(notice.Kind)))
		return
	}
	n.log.Info(notice.Text, zap.String("notice", string(notice.Kind)))
}
