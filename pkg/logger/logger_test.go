package logger_test

import (
	"testing"

	"github.com/Egor213/LogHandler/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	defer logger.SetupLogger("info", logger.FormatJSON)

	logger.SetupLogger("debug", logger.FormatText)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	_, ok := log.StandardLogger().Formatter.(*log.TextFormatter)
	assert.True(t, ok)

	logger.SetupLogger("nonsense", logger.FormatJSON)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	_, ok = log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, ok)
}
