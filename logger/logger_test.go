package logger

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite logger 测试套件.
type LoggerTestSuite struct {
	suite.Suite
	tmpDir string
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.tmpDir = s.T().TempDir()
}

// readEntries 读取 JSON 日志文件的全部记录.
func (s *LoggerTestSuite) readEntries(path string) []map[string]any {
	file, err := os.Open(path)
	s.Require().NoError(err)
	defer file.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry := map[string]any{}
		s.Require().NoError(json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	s.Require().NoError(scanner.Err())
	return entries
}

func (s *LoggerTestSuite) newFileLogger(level string) (Logger, string) {
	path := filepath.Join(s.tmpDir, "logs", "ringkit.log")
	log, err := NewLogger(&Config{
		Level:   level,
		Output:  OutputFile,
		LogFile: path,
	})
	s.Require().NoError(err)
	return log, path
}

func (s *LoggerTestSuite) TestNewLogger_NilConfig() {
	log, err := NewLogger(nil)
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestNewLogger_DefaultConfig() {
	log, err := NewLogger(DefaultConfig())
	s.NoError(err)
	s.NotNil(log)
	defer log.Close()
}

func (s *LoggerTestSuite) TestNewLogger_DevConfig() {
	log, err := NewLogger(NewDevConfig())
	s.NoError(err)
	s.NotNil(log)
	defer log.Close()
}

func (s *LoggerTestSuite) TestNewLogger_InvalidLevel() {
	log, err := NewLogger(&Config{Level: "invalid"})
	s.Error(err)
	s.Nil(log)

	var cfgErr *ConfigError
	s.True(errors.As(err, &cfgErr))
	s.Equal("level", cfgErr.Field)
}

func (s *LoggerTestSuite) TestNewLogger_InvalidFormat() {
	log, err := NewLogger(&Config{Format: "xml"})
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestNewLogger_InvalidOutput() {
	log, err := NewLogger(&Config{Output: "syslog"})
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestNewLogger_FileWithoutPath() {
	log, err := NewLogger(&Config{Output: OutputFile})
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestNewLogger_UnsupportedType() {
	log, err := NewLogger(&Config{Type: "logrus"})
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestMustNewLogger() {
	s.NotPanics(func() {
		log := MustNewLogger(DefaultConfig())
		log.Close()
	})
	s.Panics(func() {
		MustNewLogger(&Config{Level: "invalid"})
	})
}

func (s *LoggerTestSuite) TestApplyDefaults() {
	config := &Config{}
	config.ApplyDefaults()

	s.Equal(TypeZap, config.Type)
	s.Equal(LevelInfo, config.Level)
	s.Equal(FormatJSON, config.Format)
	s.Equal(OutputConsole, config.Output)
	s.Equal("ringkit", config.ServiceName)
	s.Equal(TimeFormatDateTime, config.TimeFormat)
}

func (s *LoggerTestSuite) TestFileOutput() {
	log, path := s.newFileLogger(LevelInfo)

	log.Debug("hidden")
	log.Info("push_back")
	log.Warnf("pop_front on %s", "empty")
	s.Require().NoError(log.Close())

	entries := s.readEntries(path)
	s.Require().Len(entries, 2)
	s.Equal("push_back", entries[0]["msg"])
	s.Equal("INFO", entries[0]["level"])
	s.Equal("ringkit", entries[0]["service"])
	s.Equal("pop_front on empty", entries[1]["msg"])
	s.Equal("WARN", entries[1]["level"])
}

func (s *LoggerTestSuite) TestWithFields() {
	log, path := s.newFileLogger(LevelDebug)

	log.With(
		String("op", "insert"),
		Int("pos", 3),
		Bool("parted", true),
		Err(errors.New("ringbuffer: 索引越界")),
	).Debug("step")
	s.Require().NoError(log.Close())

	entries := s.readEntries(path)
	s.Require().Len(entries, 1)
	s.Equal("insert", entries[0]["op"])
	s.Equal(float64(3), entries[0]["pos"])
	s.Equal(true, entries[0]["parted"])
	s.Equal("ringbuffer: 索引越界", entries[0]["error"])
}

func (s *LoggerTestSuite) TestWithContext() {
	log, path := s.newFileLogger(LevelInfo)

	ctx := ContextWithRunID(context.Background(), "run-1")
	log.WithContext(ctx).Info("with run")
	log.WithContext(context.Background()).Info("without run")
	s.Require().NoError(log.Close())

	entries := s.readEntries(path)
	s.Require().Len(entries, 2)
	s.Equal("run-1", entries[0]["runId"])
	s.NotContains(entries[1], "runId")
}

func (s *LoggerTestSuite) TestNop() {
	log := NewNop()
	s.NotPanics(func() {
		log.With(Any("k", []int{1})).Error("ignored")
		log.WithContext(context.Background()).Info("ignored")
	})
	s.NoError(log.Close())
}
