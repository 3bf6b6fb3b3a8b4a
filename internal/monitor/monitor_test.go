package monitor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nevisdale/nescore/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type machineMock struct {
	mock.Mock
}

func (m *machineMock) Step() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *machineMock) ExecuteCycles(budget int) (int, error) {
	args := m.Called(budget)
	return args.Int(0), args.Error(1)
}

func (m *machineMock) RunFrame() error {
	return m.Called().Error(0)
}

func (m *machineMock) Reset() {
	m.Called()
}

func (m *machineMock) Trace() trace.Line {
	return m.Called().Get(0).(trace.Line)
}

var testLine = trace.Line{PC: 0xc000, Bytes: []uint8{0xea}, Text: "NOP", P: 0x24, SP: 0xfd, Scanline: 241}

func newMachineMock() *machineMock {
	m := &machineMock{}
	m.On("Trace").Return(testLine)
	return m
}

func runMonitor(t *testing.T, m Machine, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(m, strings.NewReader(input), &out).Run())
	return out.String()
}

func TestMonitor_Commands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		setup func(m *machineMock)
	}{
		{"step", "s", func(m *machineMock) { m.On("Step").Return(2, nil).Once() }},
		{"frame", "f", func(m *machineMock) { m.On("RunFrame").Return(nil).Once() }},
		{"continue", "c", func(m *machineMock) { m.On("ExecuteCycles", RunCycles).Return(1, nil).Once() }},
		{"reset", "r", func(m *machineMock) { m.On("Reset").Return().Once() }},
		{"upper case", "S", func(m *machineMock) { m.On("Step").Return(2, nil).Once() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachineMock()
			tt.setup(m)

			out := runMonitor(t, m, tt.input+"\nq")

			m.AssertExpectations(t)
			assert.Contains(t, out, trace.Format(testLine))
		})
	}
}

func TestMonitor_QuitStopsReading(t *testing.T) {
	m := newMachineMock()

	runMonitor(t, m, "qs")

	m.AssertNotCalled(t, "Step")
}

func TestMonitor_EndOfInput(t *testing.T) {
	m := newMachineMock()
	m.On("Step").Return(2, nil).Twice()

	runMonitor(t, m, "ss")

	m.AssertExpectations(t)
}

func TestMonitor_TraceRun(t *testing.T) {
	m := newMachineMock()
	m.On("Step").Return(400, nil).Times(3)

	out := runMonitor(t, m, "tcq")

	m.AssertExpectations(t)
	m.AssertNotCalled(t, "ExecuteCycles", mock.Anything)
	assert.Contains(t, out, "trace: true")
	// help status, three traced steps and the final status
	assert.Equal(t, 5, strings.Count(out, trace.Format(testLine)))
}

func TestMonitor_PrintsErrors(t *testing.T) {
	m := newMachineMock()
	m.On("Step").Return(0, errors.New("undefined opcode 02 at $C000")).Once()

	out := runMonitor(t, m, "sq")

	assert.Contains(t, out, "halted: undefined opcode 02 at $C000")
}

func TestMonitor_RawNewlines(t *testing.T) {
	m := newMachineMock()
	var out bytes.Buffer
	mon := New(m, strings.NewReader("q"), &out)
	mon.Raw = true

	require.NoError(t, mon.Run())

	assert.Contains(t, out.String(), "(q)uit\r\n")
	assert.NotContains(t, strings.ReplaceAll(out.String(), "\r\n", ""), "\n")
}
