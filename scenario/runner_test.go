package scenario

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Tsukikage7/ringkit/collections/ringbuffer"
	"github.com/Tsukikage7/ringkit/config"
	"github.com/Tsukikage7/ringkit/logger"
	"github.com/Tsukikage7/ringkit/metrics"
)

// RunnerTestSuite 场景执行器测试套件.
type RunnerTestSuite struct {
	suite.Suite
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) run(cfg *Config, opts ...Option) *Report {
	r, err := NewRunner(cfg, opts...)
	s.Require().NoError(err)

	report, err := r.Run(context.Background())
	s.Require().NoError(err)
	return report
}

func (s *RunnerTestSuite) TestBuffer() {
	report := s.run(&Config{
		Name:      "buffer",
		Separator: ",",
		Steps: []Step{
			{Op: OpPushBack, Value: 5},
			{Op: OpPushBack, Value: 3},
			{Op: OpPushBack, Value: 1},
			{Op: OpPushFront, Value: 4},
			{Op: OpInsert, Pos: 2, Value: 9},
			{Op: OpAt, Pos: 2},
			{Op: OpSort},
			{Op: OpReverse},
			{Op: OpPopBack},
		},
	})

	s.NotEmpty(report.RunID)
	s.Equal(TargetBuffer, report.Target)
	s.Equal(9, report.Executed)
	s.Equal(0, report.Failed)
	s.Equal("9,5,4,3,", report.Output)
	s.False(report.Sorted)
	s.True(report.Parted)
	s.Equal(4, report.Len)
	s.Equal(10, report.Cap)

	s.True(report.Results[5].HasValue)
	s.Equal(9, report.Results[5].Value)
	s.True(report.Results[8].HasValue)
	s.Equal(1, report.Results[8].Value)
	s.False(report.Results[0].HasValue)
}

func (s *RunnerTestSuite) TestBufferCapacityOps() {
	report := s.run(&Config{
		Capacity: 3,
		Steps: []Step{
			{Op: OpPushBack, Value: 2},
			{Op: OpPushBack, Value: 1},
			{Op: OpGrow},
			{Op: OpReserve, Value: 32},
			{Op: OpSort},
			{Op: OpClear},
			{Op: OpPushFront, Value: 7},
		},
	})

	s.Equal("7 ", report.Output)
	s.Equal(32, report.Cap)
	s.Equal(1, report.Len)
	s.True(report.Sorted)
}

func (s *RunnerTestSuite) TestFailuresAreRecorded() {
	report := s.run(&Config{
		Steps: []Step{
			{Op: OpPopFront},
			{Op: OpAt, Pos: 5},
			{Op: OpPushBack, Value: 1},
			{Op: OpInsert, Pos: 3, Value: 2},
		},
	})

	s.Equal(4, report.Executed)
	s.Equal(3, report.Failed)
	s.ErrorIs(report.Results[0].Err, ringbuffer.ErrEmpty)
	s.ErrorIs(report.Results[1].Err, ringbuffer.ErrIndexOutOfRange)
	s.NoError(report.Results[2].Err)
	s.ErrorIs(report.Results[3].Err, ringbuffer.ErrIndexOutOfRange)
	s.Equal("1 ", report.Output)
}

func (s *RunnerTestSuite) TestQueue() {
	report := s.run(&Config{
		Target:   TargetQueue,
		Capacity: 4,
		Steps: []Step{
			{Op: OpEnqueue, Value: 1},
			{Op: OpEnqueue, Value: 2},
			{Op: OpEnqueue, Value: 3},
			{Op: OpEnqueue, Value: 4},
			{Op: OpDequeue},
			{Op: OpDequeue},
			{Op: OpEnqueue, Value: 5},
			{Op: OpEnqueue, Value: 6},
		},
	})

	s.Equal(1, report.Results[4].Value)
	s.Equal(2, report.Results[5].Value)
	s.Equal("3 4 5 6 ", report.Output)
	s.True(report.Sorted)
	s.True(report.Parted)
	s.Equal(4, report.Cap)
}

func (s *RunnerTestSuite) TestStack() {
	report := s.run(&Config{
		Target: TargetStack,
		Steps: []Step{
			{Op: OpPush, Value: 3},
			{Op: OpPush, Value: 2},
			{Op: OpPush, Value: 1},
			{Op: OpPop},
			{Op: OpPop},
			{Op: OpPop},
			{Op: OpPop},
		},
	})

	s.Equal(1, report.Results[3].Value)
	s.Equal(3, report.Results[5].Value)
	s.ErrorIs(report.Results[6].Err, ringbuffer.ErrEmpty)
	s.Equal(1, report.Failed)
	s.Equal("", report.Output)
	s.Equal(0, report.Len)
}

func (s *RunnerTestSuite) TestUniqueRunID() {
	r, err := NewRunner(&Config{Steps: []Step{{Op: OpPushBack}}})
	s.Require().NoError(err)

	first, err := r.Run(context.Background())
	s.Require().NoError(err)
	second, err := r.Run(context.Background())
	s.Require().NoError(err)

	s.NotEqual(first.RunID, second.RunID)
	s.Equal(first.Output, second.Output)
}

func (s *RunnerTestSuite) TestCanceled() {
	r, err := NewRunner(&Config{Steps: []Step{{Op: OpPushBack, Value: 1}}})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Require().NotNil(report)
	s.Equal(0, report.Executed)
	s.Equal("", report.Output)
}

func (s *RunnerTestSuite) TestMetrics() {
	collector := metrics.MustNewMetrics(metrics.DefaultConfig())
	s.run(&Config{
		Name:     "demo",
		Capacity: 2,
		Steps: []Step{
			{Op: OpPushBack, Value: 1},
			{Op: OpPushBack, Value: 2},
			{Op: OpPushBack, Value: 3},
			{Op: OpPopFront},
			{Op: OpPopFront},
			{Op: OpPopFront},
			{Op: OpPopFront},
		},
	}, WithMetrics(collector))

	rec := httptest.NewRecorder()
	collector.GetHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Contains(body, `ringkit_ring_operations_total{buffer="demo",op="pop_front",result="ok"} 3`)
	s.Contains(body, `ringkit_ring_operations_total{buffer="demo",op="pop_front",result="error"} 1`)
	s.Contains(body, `ringkit_ring_operations_total{buffer="demo",op="push_back",result="ok"} 3`)
	s.Contains(body, `ringkit_ring_grows_total{buffer="demo"} 1`)
	s.Contains(body, `ringkit_ring_capacity{buffer="demo"} 10`)
	s.Contains(body, `ringkit_ring_length{buffer="demo"} 0`)
}

func (s *RunnerTestSuite) TestLogging() {
	path := filepath.Join(s.T().TempDir(), "run.log")
	log, err := logger.NewLogger(&logger.Config{
		Level:   logger.LevelDebug,
		Output:  logger.OutputFile,
		LogFile: path,
	})
	s.Require().NoError(err)

	report := s.run(&Config{
		Name:  "logged",
		Steps: []Step{{Op: OpPopBack}, {Op: OpPushBack, Value: 4}},
	}, WithLogger(log))
	s.Require().NoError(log.Close())

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

	// 开始、两个步骤、结束
	s.Require().Len(entries, 4)
	for _, entry := range entries {
		s.Equal(report.RunID, entry["runId"])
		s.Equal("logged", entry["scenario"])
		s.Equal(TargetBuffer, entry["target"])
	}
	s.Equal("WARN", entries[1]["level"])
	s.Equal(OpPopBack, entries[1]["op"])
	s.Equal(ringbuffer.ErrEmpty.Error(), entries[1]["error"])
	s.Equal("DEBUG", entries[2]["level"])
	s.Equal(float64(1), entries[3]["failed"])
}

func (s *RunnerTestSuite) TestLoadFromConfig() {
	cfg, err := config.LoadFromBytes[Config]([]byte(`
name: yaml
target: queue
capacity: 2
separator: "|"
steps:
  - op: enqueue
    value: 10
  - op: enqueue
    value: 20
  - op: dequeue
log:
  level: debug
`), "yaml")
	s.Require().NoError(err)
	s.Len(cfg.Steps, 3)
	s.Equal(logger.LevelDebug, cfg.Log.Level)

	report := s.run(cfg)
	s.Equal("20|", report.Output)
	s.Equal(10, report.Results[2].Value)
}

func (s *RunnerTestSuite) TestLoadFromConfig_Invalid() {
	_, err := config.LoadFromBytes[Config]([]byte(`
target: stack
steps:
  - op: enqueue
`), "yaml")
	s.ErrorIs(err, config.ErrValidation)
	s.ErrorIs(err, ErrUnknownOp)
}
